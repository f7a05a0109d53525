package game

// Player 玩家状态
//
// HP 在每次变化时立即夹取到 [0, MaxHP] 区间，
// 渲染层永远不需要再做边界处理。
type Player struct {
	MaxHP   int
	HP      int
	Defence int // 受到攻击时减免的伤害
	Level   int

	Weapons []*Weapon // 引用对象目录中的武器，不拥有
	Items   []*Item   // 拥有的道具，使用后消耗
}

// NewPlayer 创建一个满血玩家
func NewPlayer(maxHP, defence, level int) *Player {
	return &Player{
		MaxHP:   maxHP,
		HP:      maxHP,
		Defence: defence,
		Level:   level,
	}
}

// TakeDamage 玩家受到 raw 点攻击
//
// 实际伤害为 max(1, raw-Defence)，HP 立即夹取到 0。
// 返回实际受到的伤害值。
func (p *Player) TakeDamage(raw int) int {
	damage := raw - p.Defence
	if damage < 1 {
		damage = 1
	}

	p.HP -= damage
	if p.HP < 0 {
		p.HP = 0
	}
	return damage
}

// UseItem 使用道具，按 Magnitude 恢复 HP 并从背包移除该道具
//
// 返回实际恢复量（受 MaxHP 上限影响可能小于 Magnitude）。
// item 不在背包中时不产生任何效果，返回 0。
func (p *Player) UseItem(item *Item) int {
	if item == nil {
		return 0
	}

	// 先确认道具确实在背包里
	index := -1
	for i, owned := range p.Items {
		if owned == item {
			index = i
			break
		}
	}
	if index < 0 {
		return 0
	}

	before := p.HP
	p.HP += item.Magnitude
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}

	p.Items = append(p.Items[:index], p.Items[index+1:]...)
	return p.HP - before
}

// Restore 恢复满血，用于战斗结束回到标题画面时重置
func (p *Player) Restore() {
	p.HP = p.MaxHP
}

// IsDefeated 返回玩家是否已经倒下
func (p *Player) IsDefeated() bool {
	return p.HP <= 0
}
