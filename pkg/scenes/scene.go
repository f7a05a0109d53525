// Package scenes 负责场景合成与状态机
//
// 每个游戏状态对应一个启动时构建好的场景；Director 按当前状态
// 选择活动场景、驱动输入与定时转移。场景之间共享可变的子对象
// （敌人视图、血条、信息框），同一个对象的状态变化会同时体现在
// 所有引用它的场景里。
package scenes

import (
	"image/color"

	"github.com/decker502/dental-guardians/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// namedStatic 命名的静态元件，切片保持插入顺序
type namedStatic struct {
	name      string
	printable *ui.Printable
}

// Scene 有序的可渲染组合：背景 + 静态元件 + 菜单
//
// 合成顺序决定 Z 层次：背景色、背景图、静态元件按插入顺序、
// 菜单永远最后绘制（不会被遮挡）。
type Scene struct {
	backgroundColor color.RGBA
	background      *ebiten.Image

	statics []namedStatic
	menu    *ui.Printable
}

// NewScene 创建空场景
func NewScene(backgroundColor color.RGBA) *Scene {
	return &Scene{backgroundColor: backgroundColor}
}

// SetBackground 设置整屏背景图（可为 nil）
func (s *Scene) SetBackground(img *ebiten.Image) {
	s.background = img
}

// AddStatic 追加或替换命名静态元件
//
// 名字已存在时原地替换对象、保持原有层次；否则追加到最上层
// （菜单之下）。
func (s *Scene) AddStatic(name string, p *ui.Printable) {
	for i := range s.statics {
		if s.statics[i].name == name {
			s.statics[i].printable = p
			return
		}
	}
	s.statics = append(s.statics, namedStatic{name: name, printable: p})
}

// Static 按名字查找静态元件，不存在时返回 nil
func (s *Scene) Static(name string) *ui.Printable {
	for i := range s.statics {
		if s.statics[i].name == name {
			return s.statics[i].printable
		}
	}
	return nil
}

// SetMenu 设置场景的菜单元件（可为 nil 表示该状态没有菜单）
func (s *Scene) SetMenu(p *ui.Printable) {
	s.menu = p
}

// drawOrder 返回全部元件的绘制顺序：静态元件在前、菜单最后
// nil 元件保留在序列里，绘制时被跳过
func (s *Scene) drawOrder() []*ui.Printable {
	order := make([]*ui.Printable, 0, len(s.statics)+1)
	for i := range s.statics {
		order = append(order, s.statics[i].printable)
	}
	return append(order, s.menu)
}

// Draw 把场景合成到 dst
func (s *Scene) Draw(dst *ebiten.Image) {
	dst.Fill(s.backgroundColor)

	if s.background != nil {
		dst.DrawImage(s.background, nil)
	}

	for _, p := range s.drawOrder() {
		p.Draw(dst)
	}
}

// BattleScene 在普通场景之上增加敌人精灵和血条
//
// 敌人和血条元件在所有战斗阶段的场景实例之间共享，指向同一个
// 底层 Enemy，血量变化跨阶段保持一致。
type BattleScene struct {
	Scene

	enemy     *ui.Printable
	healthBar *ui.Printable
}

// NewBattleScene 创建战斗场景
func NewBattleScene(backgroundColor color.RGBA, enemy, healthBar *ui.Printable) *BattleScene {
	return &BattleScene{
		Scene:     Scene{backgroundColor: backgroundColor},
		enemy:     enemy,
		healthBar: healthBar,
	}
}

// drawOrder 战斗场景的层次：静态元件、敌人、血条、菜单
func (b *BattleScene) drawOrder() []*ui.Printable {
	order := make([]*ui.Printable, 0, len(b.statics)+3)
	for i := range b.statics {
		order = append(order, b.statics[i].printable)
	}
	return append(order, b.enemy, b.healthBar, b.menu)
}

// Draw 把战斗场景合成到 dst
func (b *BattleScene) Draw(dst *ebiten.Image) {
	dst.Fill(b.backgroundColor)

	if b.background != nil {
		dst.DrawImage(b.background, nil)
	}

	for _, p := range b.drawOrder() {
		p.Draw(dst)
	}
}
