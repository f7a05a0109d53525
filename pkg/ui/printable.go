// Package ui 提供保留模式的可渲染元件
//
// 每个元件（菜单、文本框、血条）根据自身状态产出一张 *ebiten.Image，
// 场景层把这些图按 Printable 记录的位置合成到帧里。
package ui

import "github.com/hajimehoshi/ebiten/v2"

// Renderable 统一的可渲染能力
//
// 菜单、文本框、血条以及战斗场景中的敌人精灵视图都实现该接口，
// 场景合成代码对所有元件一视同仁，不做类型判断。
type Renderable interface {
	// Render 根据元件当前状态产出一张可绘制图像
	Render() *ebiten.Image
}

// Printable 把一个可渲染对象和它在屏幕上的位置配对
//
// Printable 不拥有对象：同一个对象可以被多个场景的 Printable
// 引用（例如所有战斗阶段共享同一个敌人视图），对象状态的变化
// 会同时反映在每个引用它的场景里。Object 为 nil 的 Printable
// 在合成时被静默跳过。
type Printable struct {
	Object Renderable
	X, Y   int
}

// Draw 把对象渲染结果绘制到 dst 的指定位置
// Object 为 nil 时什么都不做
func (p *Printable) Draw(dst *ebiten.Image) {
	if p == nil || p.Object == nil {
		return
	}

	img := p.Object.Render()
	if img == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(p.X), float64(p.Y))
	dst.DrawImage(img, op)
}
