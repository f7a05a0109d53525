package scenes

import (
	"errors"
	"io"
	"log"
	"os"
	"testing"

	"github.com/decker502/dental-guardians/pkg/config"
	"github.com/decker502/dental-guardians/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestMain(m *testing.M) {
	// 状态机日志在测试输出里只是噪音
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// newTestDirector 构建一个用于逻辑测试的状态机
//
// 只有一个敌人，随机挑选是确定性的；字体和背景图全部为 nil，
// 测试不触碰任何 GPU 资源（Render 路径不在此覆盖）。
func newTestDirector(t *testing.T) *Director {
	t.Helper()

	catalog := &game.Catalog{
		Enemies: []*game.Enemy{
			game.NewEnemy("Plaque Monster", 40, 256, 256, game.WeaponTypeBrush, 3),
		},
		Weapons: []*game.Weapon{
			{Name: "Toothbrush", Damage: 2, Type: game.WeaponTypeBrush},
			{Name: "Floss", Damage: 2, Type: game.WeaponTypeFloss},
		},
		Items: []*game.Item{
			{Name: "Toothpaste", Magnitude: 5},
		},
	}

	d, err := NewDirector(config.Default(), &Assets{Catalog: catalog})
	if err != nil {
		t.Fatal(err)
	}
	return d
}

// press 输入一个逻辑事件（不推进时间）
func press(t *testing.T, d *Director, event game.InputEvent) {
	t.Helper()
	if err := d.Update(0, []game.InputEvent{event}); err != nil {
		t.Fatalf("unexpected error on %v: %v", event, err)
	}
}

// wait 推进一个完整的阶段延迟
func wait(t *testing.T, d *Director) {
	t.Helper()
	if err := d.Update(d.cfg.Battle.PhaseDelay, nil); err != nil {
		t.Fatalf("unexpected error while waiting: %v", err)
	}
}

// enterBattleMenu 从标题画面走到战斗菜单
func enterBattleMenu(t *testing.T, d *Director) {
	t.Helper()
	press(t, d, game.InputConfirm) // Start
	if d.Status() != game.StatusBattleStart {
		t.Fatalf("expected BattleStart, got %s", d.Status())
	}
	wait(t, d)
	if d.Status() != game.StatusBattleMenu {
		t.Fatalf("expected BattleMenu, got %s", d.Status())
	}
}

// TestDirector_MenuBackgroundApplied 菜单底图应用到每个菜单
func TestDirector_MenuBackgroundApplied(t *testing.T) {
	catalog := &game.Catalog{
		Enemies: []*game.Enemy{
			game.NewEnemy("Plaque Monster", 40, 256, 256, game.WeaponTypeBrush, 3),
		},
	}

	// 零值图不经渲染，仅验证装配
	menuBackground := new(ebiten.Image)
	d, err := NewDirector(config.Default(), &Assets{
		Catalog:        catalog,
		MenuBackground: menuBackground,
	})
	if err != nil {
		t.Fatal(err)
	}

	for status, menu := range d.menus {
		if menu.Background() != menuBackground {
			t.Errorf("menu for %s missing the shared background", status)
		}
	}
}

// TestDirector_StartsAtTitle 启动时处于标题画面，没有活动敌人
func TestDirector_StartsAtTitle(t *testing.T) {
	d := newTestDirector(t)

	if d.Status() != game.StatusTitleScreen {
		t.Errorf("expected TitleScreen, got %s", d.Status())
	}
	if d.Enemy() != nil {
		t.Error("expected no enemy before battle")
	}
}

// TestDirector_BattleStart 开战挑选敌人并在延迟后进入战斗菜单
func TestDirector_BattleStart(t *testing.T) {
	d := newTestDirector(t)

	press(t, d, game.InputConfirm)
	if d.Status() != game.StatusBattleStart {
		t.Fatalf("expected BattleStart, got %s", d.Status())
	}
	if d.Enemy() == nil {
		t.Fatal("expected enemy to be chosen on battle start")
	}
	if d.Enemy().Name != "Plaque Monster" {
		t.Errorf("unexpected enemy %q", d.Enemy().Name)
	}

	// 阶段延迟之前停留在宣告画面
	if err := d.Update(d.cfg.Battle.PhaseDelay/2, nil); err != nil {
		t.Fatal(err)
	}
	if d.Status() != game.StatusBattleStart {
		t.Errorf("expected to stay in BattleStart before delay, got %s", d.Status())
	}

	wait(t, d)
	if d.Status() != game.StatusBattleMenu {
		t.Errorf("expected BattleMenu after delay, got %s", d.Status())
	}
}

// TestDirector_WeaponAttackCycle 武器菜单 → 玩家攻击 → 敌人反击 → 战斗菜单
func TestDirector_WeaponAttackCycle(t *testing.T) {
	d := newTestDirector(t)
	enterBattleMenu(t, d)

	// 战斗菜单第一项是 Weapon
	press(t, d, game.InputConfirm)
	if d.Status() != game.StatusWeaponMenu {
		t.Fatalf("expected WeaponMenu, got %s", d.Status())
	}

	// 背包里的两把武器 + Back
	if got := d.weaponMenu.Len(); got != 3 {
		t.Fatalf("expected 3 weapon options, got %d", got)
	}
	labels := d.weaponMenu.Labels()
	if labels[len(labels)-1] != "Back" {
		t.Errorf("expected Back as last option, got %q", labels[len(labels)-1])
	}

	// 选第一把武器：牙刷命中弱点，双倍伤害
	enemyHP := d.Enemy().HP
	press(t, d, game.InputConfirm)
	if d.Status() != game.StatusPlayerAttack {
		t.Fatalf("expected PlayerAttack, got %s", d.Status())
	}
	if d.ChosenWeapon() == nil || d.ChosenWeapon().Name != "Toothbrush" {
		t.Fatalf("expected Toothbrush chosen, got %v", d.ChosenWeapon())
	}
	if d.Enemy().HP != enemyHP-game.BaseAttackDamage*2 {
		t.Errorf("expected weakness hit for %d, enemy HP %d -> %d",
			game.BaseAttackDamage*2, enemyHP, d.Enemy().HP)
	}

	// 敌人存活：反击
	playerHP := d.Player().HP
	wait(t, d)
	if d.Status() != game.StatusEnemyAttack {
		t.Fatalf("expected EnemyAttack, got %s", d.Status())
	}
	wantDamage := d.Enemy().Damage - d.Player().Defence
	if d.Player().HP != playerHP-wantDamage {
		t.Errorf("expected player HP %d, got %d", playerHP-wantDamage, d.Player().HP)
	}

	// 双方存活：回到战斗菜单
	wait(t, d)
	if d.Status() != game.StatusBattleMenu {
		t.Errorf("expected BattleMenu, got %s", d.Status())
	}
}

// TestDirector_WeaponMenuBack Back 选项回到战斗菜单而不攻击
func TestDirector_WeaponMenuBack(t *testing.T) {
	d := newTestDirector(t)
	enterBattleMenu(t, d)

	press(t, d, game.InputConfirm) // Weapon
	enemyHP := d.Enemy().HP

	// 移动到最后一项（Back）
	press(t, d, game.InputUp)
	press(t, d, game.InputConfirm)

	if d.Status() != game.StatusBattleMenu {
		t.Errorf("expected BattleMenu after Back, got %s", d.Status())
	}
	if d.Enemy().HP != enemyHP {
		t.Errorf("Back must not attack: enemy HP %d -> %d", enemyHP, d.Enemy().HP)
	}
}

// TestDirector_Victory 敌人倒下后进入胜利画面，返回标题时战斗重置
func TestDirector_Victory(t *testing.T) {
	d := newTestDirector(t)
	enterBattleMenu(t, d)

	// 把敌人打到一击之内
	enemy := d.Enemy()
	enemy.Hurt(enemy.HP - 1)

	press(t, d, game.InputConfirm) // Weapon
	press(t, d, game.InputConfirm) // Toothbrush

	if !enemy.IsDefeated() {
		t.Fatalf("expected enemy defeated, HP %d", enemy.HP)
	}
	wait(t, d)
	if d.Status() != game.StatusVictory {
		t.Fatalf("expected Victory, got %s", d.Status())
	}

	// 胜利菜单第一项：Back to Title
	press(t, d, game.InputConfirm)
	if d.Status() != game.StatusTitleScreen {
		t.Fatalf("expected TitleScreen, got %s", d.Status())
	}

	// 战斗状态全部重置：敌人解绑且复活，玩家满血
	if d.Enemy() != nil {
		t.Error("expected enemy cleared after reset")
	}
	if enemy.HP != enemy.MaxHP {
		t.Errorf("expected enemy revived, HP %d/%d", enemy.HP, enemy.MaxHP)
	}
	if d.Player().HP != d.Player().MaxHP {
		t.Errorf("expected player restored, HP %d/%d", d.Player().HP, d.Player().MaxHP)
	}
	if d.ChosenWeapon() != nil {
		t.Error("expected chosen weapon cleared")
	}
}

// TestDirector_Defeat 玩家倒下后进入失败画面
func TestDirector_Defeat(t *testing.T) {
	d := newTestDirector(t)
	enterBattleMenu(t, d)

	// 玩家只剩 1 HP，敌人的下一次反击必然击倒
	d.Player().HP = 1

	press(t, d, game.InputConfirm) // Weapon
	press(t, d, game.InputConfirm) // Toothbrush
	wait(t, d)                     // PlayerAttack -> EnemyAttack

	if d.Status() != game.StatusEnemyAttack {
		t.Fatalf("expected EnemyAttack, got %s", d.Status())
	}
	if !d.Player().IsDefeated() {
		t.Fatalf("expected player defeated, HP %d", d.Player().HP)
	}

	wait(t, d)
	if d.Status() != game.StatusDefeat {
		t.Errorf("expected Defeat, got %s", d.Status())
	}
}

// TestDirector_UseItem 道具恢复 HP、被消耗并引来敌人反击
func TestDirector_UseItem(t *testing.T) {
	d := newTestDirector(t)
	enterBattleMenu(t, d)

	d.Player().HP = 10

	press(t, d, game.InputDown) // Item
	press(t, d, game.InputConfirm)
	if d.Status() != game.StatusItemMenu {
		t.Fatalf("expected ItemMenu, got %s", d.Status())
	}
	if got := d.itemMenu.Len(); got != 2 { // Toothpaste + Back
		t.Fatalf("expected 2 item options, got %d", got)
	}

	press(t, d, game.InputConfirm) // Toothpaste
	if d.Status() != game.StatusUseItem {
		t.Fatalf("expected UseItem, got %s", d.Status())
	}
	if d.Player().HP != 15 {
		t.Errorf("expected HP 15 after toothpaste, got %d", d.Player().HP)
	}
	if len(d.Player().Items) != 0 {
		t.Errorf("expected item consumed, %d left", len(d.Player().Items))
	}

	// 使用道具不结束回合：敌人照常反击
	wait(t, d)
	if d.Status() != game.StatusEnemyAttack {
		t.Fatalf("expected EnemyAttack after item, got %s", d.Status())
	}
	wait(t, d)
	if d.Status() != game.StatusBattleMenu {
		t.Fatalf("expected BattleMenu, got %s", d.Status())
	}

	// 战斗菜单的光标仍停在 Item 上；道具菜单按剩余背包重新填充：只剩 Back
	press(t, d, game.InputConfirm)
	if d.Status() != game.StatusItemMenu {
		t.Fatalf("expected ItemMenu, got %s", d.Status())
	}
	if got := d.itemMenu.Len(); got != 1 {
		t.Errorf("expected only Back after consuming the item, got %d options", got)
	}
}

// TestDirector_RunResets 逃跑回到标题并重置战斗
func TestDirector_RunResets(t *testing.T) {
	d := newTestDirector(t)
	enterBattleMenu(t, d)

	enemy := d.Enemy()
	enemy.Hurt(5)

	press(t, d, game.InputDown) // Item
	press(t, d, game.InputDown) // Run
	press(t, d, game.InputConfirm)

	if d.Status() != game.StatusTitleScreen {
		t.Fatalf("expected TitleScreen after Run, got %s", d.Status())
	}
	if d.Enemy() != nil {
		t.Error("expected enemy cleared after running")
	}
	if enemy.HP != enemy.MaxHP {
		t.Errorf("expected enemy revived, HP %d", enemy.HP)
	}
}

// TestDirector_Exit 退出选项让主循环终止
func TestDirector_Exit(t *testing.T) {
	d := newTestDirector(t)

	press(t, d, game.InputDown) // Credits
	press(t, d, game.InputDown) // Exit
	err := d.Update(0, []game.InputEvent{game.InputConfirm})

	if !errors.Is(err, ebiten.Termination) {
		t.Fatalf("expected ebiten.Termination, got %v", err)
	}
	if d.Status() != game.StatusExit {
		t.Errorf("expected Exit status, got %s", d.Status())
	}

	// 之后的每一帧都继续返回终止信号
	if err := d.Update(0, nil); !errors.Is(err, ebiten.Termination) {
		t.Errorf("expected termination to persist, got %v", err)
	}
}

// TestDirector_Credits 制作人员画面可以往返
func TestDirector_Credits(t *testing.T) {
	d := newTestDirector(t)

	press(t, d, game.InputDown)
	press(t, d, game.InputConfirm)
	if d.Status() != game.StatusCredits {
		t.Fatalf("expected Credits, got %s", d.Status())
	}

	press(t, d, game.InputConfirm) // Back
	if d.Status() != game.StatusTitleScreen {
		t.Errorf("expected TitleScreen, got %s", d.Status())
	}
}

// TestDirector_ConfirmWithoutMenu 没有菜单的状态忽略确认键
func TestDirector_ConfirmWithoutMenu(t *testing.T) {
	d := newTestDirector(t)

	press(t, d, game.InputConfirm) // Start -> BattleStart（无菜单）
	press(t, d, game.InputConfirm)
	press(t, d, game.InputUp)

	if d.Status() != game.StatusBattleStart {
		t.Errorf("expected input to be ignored in BattleStart, got %s", d.Status())
	}
}

// TestDirector_DebugKey 调试键只在战斗阶段扣敌人 HP
func TestDirector_DebugKey(t *testing.T) {
	d := newTestDirector(t)

	// 标题画面没有敌人，调试键是空操作
	press(t, d, game.InputDebug)

	enterBattleMenu(t, d)
	enemyHP := d.Enemy().HP

	press(t, d, game.InputDebug)
	if d.Enemy().HP != enemyHP-1 {
		t.Errorf("expected enemy HP %d, got %d", enemyHP-1, d.Enemy().HP)
	}
}
