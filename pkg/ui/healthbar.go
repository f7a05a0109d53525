package ui

import (
	"fmt"
	"math"

	"github.com/decker502/dental-guardians/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BarFillWidth 计算血条前景矩形的宽度
//
// 按 hp/maxHP 的比例四舍五入：hp=0 时宽度为 0，
// hp=maxHP 时恰好等于 barWidth。
func BarFillWidth(barWidth, hp, maxHP int) int {
	if maxHP <= 0 || hp <= 0 {
		return 0
	}
	if hp >= maxHP {
		return barWidth
	}
	return int(math.Round(float64(barWidth) * float64(hp) / float64(maxHP)))
}

// HealthBar 敌人血条面板
//
// 显示敌人名字、"HP/Max" 数值和双矩形血条（全宽底槽 +
// 按血量比例的前景条）。渲染结果按敌人引用和 HP 缓存：
// 只有血量变化或换了敌人时才重新合成，视觉输出不变。
type HealthBar struct {
	width, height int
	style         PanelStyle

	enemy *game.Enemy

	// 缓存键：上次渲染时的敌人引用与 HP
	cached    *ebiten.Image
	cachedHP  int
	cachedFor *game.Enemy
}

// NewHealthBar 创建血条面板，enemy 可以稍后再绑定
func NewHealthBar(width, height int, style PanelStyle) *HealthBar {
	return &HealthBar{
		width:  width,
		height: height,
		style:  style,
	}
}

// SetEnemy 绑定要展示的敌人（战斗开始时由状态机调用）
func (h *HealthBar) SetEnemy(enemy *game.Enemy) {
	h.enemy = enemy
}

// Render 产出血条图像，必要时重新合成
func (h *HealthBar) Render() *ebiten.Image {
	if h.enemy == nil {
		return nil
	}

	if h.cached != nil && h.cachedFor == h.enemy && h.cachedHP == h.enemy.HP {
		return h.cached
	}

	h.cached = h.compose()
	h.cachedFor = h.enemy
	h.cachedHP = h.enemy.HP
	return h.cached
}

// compose 实际绘制血条面板
func (h *HealthBar) compose() *ebiten.Image {
	img := ebiten.NewImage(h.width, h.height)
	img.Fill(h.style.Theme.HealthBarBackground.RGBA())

	inset := h.style.Padding + h.style.BorderThickness
	lineHeight := h.style.lineHeight()

	// 第一行：敌人名字
	nameOp := &text.DrawOptions{}
	nameOp.GeoM.Translate(float64(inset), float64(inset))
	nameOp.ColorScale.ScaleWithColor(h.style.Theme.TextColor.RGBA())
	text.Draw(img, h.enemy.Name, h.style.Face, nameOp)

	// 第二行：HP/Max
	hpText := fmt.Sprintf("%d/%d HP", h.enemy.HP, h.enemy.MaxHP)
	hpOp := &text.DrawOptions{}
	hpOp.GeoM.Translate(float64(inset), float64(inset+lineHeight))
	hpOp.ColorScale.ScaleWithColor(h.style.Theme.TextColor.RGBA())
	text.Draw(img, hpText, h.style.Face, hpOp)

	// 第三行：底槽矩形 + 按比例的前景矩形
	barWidth := h.width - 2*inset
	barHeight := lineHeight
	barY := inset + 2*lineHeight

	vector.DrawFilledRect(img,
		float32(inset), float32(barY),
		float32(barWidth), float32(barHeight),
		h.style.Theme.HealthBarTrack.RGBA(), false)

	if fill := BarFillWidth(barWidth, h.enemy.HP, h.enemy.MaxHP); fill > 0 {
		vector.DrawFilledRect(img,
			float32(inset), float32(barY),
			float32(fill), float32(barHeight),
			h.style.Theme.HealthBarFill.RGBA(), false)
	}

	DrawBorder(img, h.style.BorderThickness, h.style.Theme.BorderColor.RGBA())
	return img
}
