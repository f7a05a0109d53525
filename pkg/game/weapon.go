package game

// WeaponType 武器类型分类器
//
// 敌人的弱点（Weakness）也使用该类型：武器类型与敌人弱点相同时，
// 攻击伤害翻倍。
type WeaponType string

const (
	// WeaponTypeBrush 牙刷类
	WeaponTypeBrush WeaponType = "brush"
	// WeaponTypeFloss 牙线类
	WeaponTypeFloss WeaponType = "floss"
	// WeaponTypeNone 无类型（不触发弱点加成）
	WeaponTypeNone WeaponType = ""
)

// BaseAttackDamage 玩家攻击的基础伤害
// 命中敌人弱点时翻倍（见 Enemy.TakeDamage）
const BaseAttackDamage = 2

// Weapon 武器描述符
//
// 从资源目录的 data.json 加载一次，之后不可变。
// Player 和菜单只持有引用，不拥有。
type Weapon struct {
	Name   string
	Damage int        // 展示用数值，战斗公式见 Enemy.TakeDamage
	Type   WeaponType // 与敌人弱点匹配时伤害翻倍
}

// Item 道具描述符
//
// Magnitude 为作用量：治疗道具按该值恢复玩家 HP。
type Item struct {
	Name      string
	Magnitude int
}
