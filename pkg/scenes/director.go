package scenes

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/dental-guardians/pkg/config"
	"github.com/decker502/dental-guardians/pkg/game"
	"github.com/decker502/dental-guardians/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Faces 各用途的字体面
type Faces struct {
	Title     *text.GoTextFace
	Menu      *text.GoTextFace
	HealthBar *text.GoTextFace
	Default   *text.GoTextFace
}

// Assets 构建场景所需的启动期资源
type Assets struct {
	Catalog         *game.Catalog
	Faces           Faces
	TitleBackground *ebiten.Image // 可为 nil（纯色标题画面）
	MenuBackground  *ebiten.Image // 可为 nil（纯色菜单面板）
}

// scene 是 Director 眼中的场景：只需要会把自己合成到帧上
type scene interface {
	Draw(dst *ebiten.Image)
}

// Director 状态驱动的游戏状态机
//
// 持有状态到场景的映射、跨状态共享的数据（玩家、敌人、选中的
// 武器/道具、信息框）和阶段计时器。输入事件按到达顺序同步处理，
// 可能改变活动菜单的选择或触发状态转移。
type Director struct {
	cfg    *config.Config
	status game.Status

	scenes map[game.Status]scene
	menus  map[game.Status]*ui.Menu // 各状态的活动菜单（没有菜单的状态不在表里）

	player  *game.Player
	catalog *game.Catalog

	// 战斗期共享状态
	enemy        *game.Enemy
	chosenWeapon *game.Weapon
	chosenItem   *game.Item

	infoBox    *ui.TextBox
	healthBar  *ui.HealthBar
	weaponMenu *ui.Menu
	itemMenu   *ui.Menu

	// phaseElapsed 当前状态已经停留的时长（秒）
	// 定时转移每帧重新检查该值，没有调度器
	phaseElapsed float64

	rng *rand.Rand
}

// NewDirector 构建全部场景并把状态机置于标题画面
func NewDirector(cfg *config.Config, assets *Assets) (*Director, error) {
	if len(assets.Catalog.Enemies) == 0 {
		return nil, fmt.Errorf("cannot start without enemies in the catalog")
	}

	player := game.NewPlayer(cfg.Battle.PlayerMaxHP, cfg.Battle.PlayerDefence, cfg.Battle.PlayerLevel)
	player.Weapons = append([]*game.Weapon(nil), assets.Catalog.Weapons...)
	player.Items = append([]*game.Item(nil), assets.Catalog.Items...)

	d := &Director{
		cfg:     cfg,
		status:  game.StatusTitleScreen,
		player:  player,
		catalog: assets.Catalog,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	d.buildScenes(assets)

	return d, nil
}

// Status 返回当前状态
func (d *Director) Status() game.Status {
	return d.status
}

// Player 返回玩家（调试叠加层使用）
func (d *Director) Player() *game.Player {
	return d.player
}

// Enemy 返回当前战斗的敌人，可能为 nil
func (d *Director) Enemy() *game.Enemy {
	return d.enemy
}

// ChosenWeapon 返回最近一次选中的武器，可能为 nil
func (d *Director) ChosenWeapon() *game.Weapon {
	return d.chosenWeapon
}

// Update 推进一个逻辑帧
//
// deltaTime 为固定步长（秒）；events 是本帧翻译好的逻辑输入，
// 按到达顺序处理。状态到达 Exit 时返回 ebiten.Termination
// 结束主循环。
func (d *Director) Update(deltaTime float64, events []game.InputEvent) error {
	if d.status == game.StatusExit {
		return ebiten.Termination
	}

	d.phaseElapsed += deltaTime
	d.updateTimedTransitions()

	for _, event := range events {
		d.handleEvent(event)
	}

	if d.status == game.StatusExit {
		return ebiten.Termination
	}
	return nil
}

// updateTimedTransitions 检查定时推进的阶段
func (d *Director) updateTimedTransitions() {
	if d.phaseElapsed < d.cfg.Battle.PhaseDelay {
		return
	}

	switch d.status {
	case game.StatusBattleStart:
		// 敌人已宣告，进入战斗菜单
		if d.enemy != nil {
			d.setStatus(game.StatusBattleMenu)
		}
	case game.StatusPlayerAttack:
		if d.enemy != nil && d.enemy.IsDefeated() {
			d.setStatus(game.StatusVictory)
		} else {
			d.setStatus(game.StatusEnemyAttack)
		}
	case game.StatusUseItem:
		d.setStatus(game.StatusEnemyAttack)
	case game.StatusEnemyAttack:
		if d.player.IsDefeated() {
			d.setStatus(game.StatusDefeat)
		} else {
			d.setStatus(game.StatusBattleMenu)
		}
	}
}

// handleEvent 处理单个逻辑输入事件
func (d *Director) handleEvent(event game.InputEvent) {
	menu := d.menus[d.status]

	switch event {
	case game.InputUp:
		if menu != nil {
			menu.UpdateOption(-1)
		}
	case game.InputDown:
		if menu != nil {
			menu.UpdateOption(1)
		}
	case game.InputConfirm:
		if menu != nil {
			d.confirm(menu.GetOption())
		}
	case game.InputDebug:
		// 调试键：敌人 HP -1，仅在战斗阶段生效
		if d.status.IsBattlePhase() && d.enemy != nil {
			d.enemy.Hurt(1)
		}
	}
}

// confirm 按载荷类型分发菜单选择
// 空载荷（空菜单或未定义项）被忽略，状态机停在当前状态。
func (d *Director) confirm(payload game.MenuPayload) {
	switch payload.Kind {
	case game.PayloadStatus:
		d.setStatus(payload.Status)
	case game.PayloadWeapon:
		d.chosenWeapon = payload.Weapon
		d.setStatus(game.StatusPlayerAttack)
	case game.PayloadItem:
		d.chosenItem = payload.Item
		d.setStatus(game.StatusUseItem)
	case game.PayloadNone:
		log.Printf("[Director] ignoring empty selection in %s", d.status)
	}
}

// setStatus 切换状态并执行入场副作用
func (d *Director) setStatus(next game.Status) {
	log.Printf("[Director] %s -> %s", d.status, next)
	d.status = next
	d.phaseElapsed = 0

	switch next {
	case game.StatusBattleStart:
		d.enterBattleStart()

	case game.StatusBattleMenu:
		d.infoBox.SetText(fmt.Sprintf(
			"Level %d  HP %d/%d\nChoose your next move!",
			d.player.Level, d.player.HP, d.player.MaxHP))

	case game.StatusWeaponMenu:
		// 懒填充：只在菜单为空时生成，保持同状态内的选择索引
		d.weaponMenu.SetOptionsIfEmpty(d.weaponOptions())

	case game.StatusItemMenu:
		d.itemMenu.SetOptionsIfEmpty(d.itemOptions())

	case game.StatusPlayerAttack:
		damage := d.enemy.TakeDamage(d.chosenWeapon)
		d.infoBox.SetText(fmt.Sprintf(
			"You attack with the %s!\n%s takes %d damage.",
			d.chosenWeapon.Name, d.enemy.Name, damage))

	case game.StatusUseItem:
		healed := d.player.UseItem(d.chosenItem)
		d.infoBox.SetText(fmt.Sprintf(
			"You use the %s and recover %d HP.",
			d.chosenItem.Name, healed))
		// 道具已消耗，清空菜单让下次进入时按剩余背包重新填充
		d.itemMenu.Clear()
		d.chosenItem = nil

	case game.StatusEnemyAttack:
		damage := d.player.TakeDamage(d.enemy.Damage)
		d.infoBox.SetText(fmt.Sprintf(
			"%s strikes back!\nYou take %d damage.",
			d.enemy.Name, damage))

	case game.StatusVictory:
		d.infoBox.SetText(fmt.Sprintf(
			"You defeated the %s!\nYour teeth are safe... for now.",
			d.enemy.Name))

	case game.StatusDefeat:
		d.infoBox.SetText(
			"You were overwhelmed...\nBrush up and try again!")

	case game.StatusTitleScreen:
		d.resetBattle()
	}
}

// enterBattleStart 战斗开始的入场副作用：
// 还没有活动敌人时随机挑选一个并在信息框里宣告。
func (d *Director) enterBattleStart() {
	if d.enemy == nil {
		d.enemy = d.catalog.Enemies[d.rng.Intn(len(d.catalog.Enemies))]
		d.healthBar.SetEnemy(d.enemy)
		log.Printf("[Director] enemy chosen: %s (%d HP)", d.enemy.Name, d.enemy.HP)
	}

	d.infoBox.SetText(fmt.Sprintf(
		"A wild %s appears!\nDefend your teeth!", d.enemy.Name))
}

// resetBattle 回到标题画面时重置战斗共享状态
func (d *Director) resetBattle() {
	if d.enemy != nil {
		d.enemy.Revive()
	}
	d.enemy = nil
	d.healthBar.SetEnemy(nil)
	d.player.Restore()

	d.weaponMenu.Clear()
	d.itemMenu.Clear()
	d.chosenWeapon = nil
	d.chosenItem = nil
}

// weaponOptions 从玩家背包生成武器菜单项，末尾附加 Back
func (d *Director) weaponOptions() []ui.Option {
	options := make([]ui.Option, 0, len(d.player.Weapons)+1)
	for _, weapon := range d.player.Weapons {
		options = append(options, ui.Option{
			Label:   weapon.Name,
			Payload: game.WeaponPayload(weapon),
		})
	}
	return append(options, ui.Option{
		Label:   "Back",
		Payload: game.StatusPayload(game.StatusBattleMenu),
	})
}

// itemOptions 从玩家背包生成道具菜单项，末尾附加 Back
func (d *Director) itemOptions() []ui.Option {
	options := make([]ui.Option, 0, len(d.player.Items)+1)
	for _, item := range d.player.Items {
		options = append(options, ui.Option{
			Label:   item.Name,
			Payload: game.ItemPayload(item),
		})
	}
	return append(options, ui.Option{
		Label:   "Back",
		Payload: game.StatusPayload(game.StatusBattleMenu),
	})
}

// Draw 把当前状态的场景合成到 screen
// 没有场景的状态（Exit）什么都不画。
func (d *Director) Draw(screen *ebiten.Image) {
	if s := d.scenes[d.status]; s != nil {
		s.Draw(screen)
	}
}
