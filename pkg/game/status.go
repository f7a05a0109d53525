// Package game 包含游戏的核心领域模型
//
// 该包定义游戏状态枚举、玩家、敌人、武器和道具等实体，
// 以及从资源目录加载它们的对象目录（Catalog）。
// 本包不依赖任何场景或 UI 代码，便于单元测试。
package game

// Status 标识游戏当前所处的阶段
//
// 状态之间的切换只有两种来源：菜单选择和定时器。
// Director（pkg/scenes）持有状态转移表。
type Status int

const (
	// StatusTitleScreen 标题画面（初始状态）
	StatusTitleScreen Status = iota
	// StatusCredits 制作人员画面
	StatusCredits
	// StatusExit 退出（终止主循环）
	StatusExit

	// 战斗阶段
	StatusBattleStart // 战斗开始（宣告敌人，定时进入战斗菜单）
	StatusBattleMenu  // 战斗主菜单
	StatusItemMenu    // 道具选择菜单
	StatusWeaponMenu  // 武器选择菜单
	StatusPlayerAttack
	StatusEnemyAttack
	StatusUseItem

	// 战斗结算
	StatusVictory
	StatusDefeat
)

// String 返回状态的可读名称，用于日志和调试叠加层
func (s Status) String() string {
	switch s {
	case StatusTitleScreen:
		return "TitleScreen"
	case StatusCredits:
		return "Credits"
	case StatusExit:
		return "Exit"
	case StatusBattleStart:
		return "BattleStart"
	case StatusBattleMenu:
		return "BattleMenu"
	case StatusItemMenu:
		return "ItemMenu"
	case StatusWeaponMenu:
		return "WeaponMenu"
	case StatusPlayerAttack:
		return "PlayerAttack"
	case StatusEnemyAttack:
		return "EnemyAttack"
	case StatusUseItem:
		return "UseItem"
	case StatusVictory:
		return "Victory"
	case StatusDefeat:
		return "Defeat"
	default:
		return "Unknown"
	}
}

// IsBattlePhase 返回该状态是否属于战斗阶段
// 战斗阶段的场景共享同一个敌人引用和血条
func (s Status) IsBattlePhase() bool {
	switch s {
	case StatusBattleStart, StatusBattleMenu, StatusItemMenu, StatusWeaponMenu,
		StatusPlayerAttack, StatusEnemyAttack, StatusUseItem,
		StatusVictory, StatusDefeat:
		return true
	default:
		return false
	}
}
