package scenes

import (
	"github.com/decker502/dental-guardians/pkg/config"
	"github.com/decker502/dental-guardians/pkg/game"
	"github.com/decker502/dental-guardians/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// enemySpriteView 把当前敌人以当前状态对应的动画呈现出来
//
// 视图只持有 Director 引用：敌人切换、状态切换都即时生效，
// 没有敌人时返回 nil（Printable 会静默跳过）。
type enemySpriteView struct {
	d *Director
}

// Render 实现 ui.Renderable
func (v *enemySpriteView) Render() *ebiten.Image {
	if v.d.enemy == nil {
		return nil
	}
	return v.d.enemy.GetSprite(v.d.status)
}

// buildScenes 构建状态到场景的完整映射
//
// 标题/制作人员是普通场景；全部战斗阶段共享同一组敌人视图、
// 血条和信息框元件，但各自持有自己的菜单（或没有菜单）。
func (d *Director) buildScenes(assets *Assets) {
	theme := d.cfg.Theme
	layout := d.cfg.Layout

	menuStyle := ui.PanelStyle{
		Face:            assets.Faces.Menu,
		Theme:           theme,
		Padding:         layout.PanelPadding,
		BorderThickness: layout.BorderThickness,
	}
	textStyle := ui.PanelStyle{
		Face:            assets.Faces.Default,
		Theme:           theme,
		Padding:         layout.PanelPadding,
		BorderThickness: layout.BorderThickness,
	}
	healthBarStyle := ui.PanelStyle{
		Face:            assets.Faces.HealthBar,
		Theme:           theme,
		Padding:         layout.PanelPadding * 2,
		BorderThickness: layout.BorderThickness,
	}
	titleStyle := ui.PanelStyle{
		Face:    assets.Faces.Title,
		Theme:   theme,
		Padding: layout.PanelPadding,
		// 标题文字不带边框
	}

	// 跨战斗阶段共享的元件
	d.infoBox = ui.NewTextBox("",
		layout.InfoBoxSize.Width, layout.InfoBoxSize.Height, textStyle)
	d.healthBar = ui.NewHealthBar(
		layout.HealthBarSize.Width, layout.HealthBarSize.Height, healthBarStyle)

	enemyPrintable := &ui.Printable{
		Object: &enemySpriteView{d: d},
		X:      layout.EnemyPos.X, Y: layout.EnemyPos.Y,
	}
	healthBarPrintable := &ui.Printable{
		Object: d.healthBar,
		X:      layout.HealthBarPos.X, Y: layout.HealthBarPos.Y,
	}
	infoBoxPrintable := &ui.Printable{
		Object: d.infoBox,
		X:      layout.InfoBoxPos.X, Y: layout.InfoBoxPos.Y,
	}

	// 菜单
	titleMenu := ui.NewMenu(
		layout.TitleMenuSize.Width, layout.TitleMenuSize.Height,
		layout.MenuLineOffset, menuStyle)
	titleMenu.SetOptions([]ui.Option{
		{Label: "Start", Payload: game.StatusPayload(game.StatusBattleStart)},
		{Label: "Credits", Payload: game.StatusPayload(game.StatusCredits)},
		{Label: "Exit", Payload: game.StatusPayload(game.StatusExit)},
	})

	creditsMenu := ui.NewMenu(
		layout.CreditsMenuSize.Width, layout.CreditsMenuSize.Height,
		layout.MenuLineOffset, menuStyle)
	creditsMenu.SetOptions([]ui.Option{
		{Label: "Back", Payload: game.StatusPayload(game.StatusTitleScreen)},
	})

	battleMenu := ui.NewMenu(
		layout.BattleMenuSize.Width, layout.BattleMenuSize.Height,
		layout.MenuLineOffset, menuStyle)
	battleMenu.SetOptions([]ui.Option{
		{Label: "Weapon", Payload: game.StatusPayload(game.StatusWeaponMenu)},
		{Label: "Item", Payload: game.StatusPayload(game.StatusItemMenu)},
		{Label: "Run", Payload: game.StatusPayload(game.StatusTitleScreen)},
	})

	// 武器/道具菜单在进入对应状态时懒填充
	d.weaponMenu = ui.NewMenu(
		layout.BattleMenuSize.Width, layout.BattleMenuSize.Height,
		layout.MenuLineOffset, menuStyle)
	d.itemMenu = ui.NewMenu(
		layout.BattleMenuSize.Width, layout.BattleMenuSize.Height,
		layout.MenuLineOffset, menuStyle)

	resultMenu := ui.NewMenu(
		layout.BattleMenuSize.Width, layout.BattleMenuSize.Height,
		layout.MenuLineOffset, menuStyle)
	resultMenu.SetOptions([]ui.Option{
		{Label: "Back to Title", Payload: game.StatusPayload(game.StatusTitleScreen)},
		{Label: "Exit", Payload: game.StatusPayload(game.StatusExit)},
	})

	// 可选的菜单面板底图，所有菜单共用同一张
	if assets.MenuBackground != nil {
		for _, menu := range []*ui.Menu{
			titleMenu, creditsMenu, battleMenu, d.weaponMenu, d.itemMenu, resultMenu,
		} {
			menu.SetBackground(assets.MenuBackground)
		}
	}

	// 标题场景
	titleScene := NewScene(theme.ScreenBackground.RGBA())
	if assets.TitleBackground != nil {
		titleScene.SetBackground(fitBackground(assets.TitleBackground))
	}
	titleText := ui.NewTextBox("Dental Guardians",
		config.GameWindowWidth-2*layout.TitleTextPos.X, int(assets.Faces.titleLineHeight()), titleStyle)
	titleScene.AddStatic("title", &ui.Printable{
		Object: titleText,
		X:      layout.TitleTextPos.X, Y: layout.TitleTextPos.Y,
	})
	titleScene.SetMenu(&ui.Printable{
		Object: titleMenu,
		X:      layout.TitleMenuPos.X, Y: layout.TitleMenuPos.Y,
	})

	// 制作人员场景
	creditsScene := NewScene(theme.ScreenBackground.RGBA())
	// 制作人员文字量固定，面板按内容自适应尺寸
	creditsText := ui.NewAutoTextBox(
		"Dental Guardians\n"+
			"A game about keeping your teeth safe.\n"+
			"Art, code and cavities by the Dental Guardians team.",
		textStyle)
	creditsScene.AddStatic("credits", &ui.Printable{
		Object: creditsText,
		X:      layout.CreditsTextPos.X, Y: layout.CreditsTextPos.Y,
	})
	creditsScene.SetMenu(&ui.Printable{
		Object: creditsMenu,
		X:      layout.CreditsMenuPos.X, Y: layout.CreditsMenuPos.Y,
	})

	// 战斗阶段场景：共享敌人/血条/信息框，各自挂不同的菜单
	battleScene := func(menu *ui.Menu) *BattleScene {
		s := NewBattleScene(theme.ScreenBackground.RGBA(), enemyPrintable, healthBarPrintable)
		s.AddStatic("info", infoBoxPrintable)
		if menu != nil {
			s.SetMenu(&ui.Printable{
				Object: menu,
				X:      layout.BattleMenuPos.X, Y: layout.BattleMenuPos.Y,
			})
		}
		return s
	}

	d.scenes = map[game.Status]scene{
		game.StatusTitleScreen:  titleScene,
		game.StatusCredits:      creditsScene,
		game.StatusBattleStart:  battleScene(nil),
		game.StatusBattleMenu:   battleScene(battleMenu),
		game.StatusWeaponMenu:   battleScene(d.weaponMenu),
		game.StatusItemMenu:     battleScene(d.itemMenu),
		game.StatusPlayerAttack: battleScene(nil),
		game.StatusEnemyAttack:  battleScene(nil),
		game.StatusUseItem:      battleScene(nil),
		game.StatusVictory:      battleScene(resultMenu),
		game.StatusDefeat:       battleScene(resultMenu),
	}

	d.menus = map[game.Status]*ui.Menu{
		game.StatusTitleScreen: titleMenu,
		game.StatusCredits:     creditsMenu,
		game.StatusBattleMenu:  battleMenu,
		game.StatusWeaponMenu:  d.weaponMenu,
		game.StatusItemMenu:    d.itemMenu,
		game.StatusVictory:     resultMenu,
		game.StatusDefeat:      resultMenu,
	}
}

// titleLineHeight 标题文本框的高度估算
// 字体未加载（测试环境）时退回一个固定高度。
func (f Faces) titleLineHeight() float64 {
	if f.Title == nil {
		return 80
	}
	return f.Title.Size * 1.4
}

// fitBackground 把背景图等比缩放到铺满逻辑屏幕
//
// 取较小的一边贴合屏幕，另一边按同一比例缩放（可能溢出裁掉），
// 与原型标题画面的缩放规则一致。
func fitBackground(img *ebiten.Image) *ebiten.Image {
	bounds := img.Bounds()
	srcW, srcH := float64(bounds.Dx()), float64(bounds.Dy())
	if srcW <= 0 || srcH <= 0 {
		return img
	}

	scaleX := float64(config.GameWindowWidth) / srcW
	scaleY := float64(config.GameWindowHeight) / srcH
	scale := scaleX
	if scaleY > scaleX {
		scale = scaleY
	}

	dst := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	dst.DrawImage(img, op)
	return dst
}
