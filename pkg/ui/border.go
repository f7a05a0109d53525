package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawBorder 沿 dst 四边绘制实心边框
//
// 顺时针画四个矩形（上、右、下、左），与面板内容互不影响。
// thickness 为 0 或负数时不绘制。
func DrawBorder(dst *ebiten.Image, thickness int, clr color.Color) {
	if dst == nil || thickness <= 0 {
		return
	}

	bounds := dst.Bounds()
	w := float32(bounds.Dx())
	h := float32(bounds.Dy())
	t := float32(thickness)

	vector.DrawFilledRect(dst, 0, 0, w, t, clr, false)
	vector.DrawFilledRect(dst, w-t, 0, t, h, clr, false)
	vector.DrawFilledRect(dst, 0, h-t, w, t, clr, false)
	vector.DrawFilledRect(dst, 0, 0, t, h, clr, false)
}
