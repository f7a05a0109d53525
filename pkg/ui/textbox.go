package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TextBox 带边框的文本面板
//
// 尺寸策略在构造时决定一次：显式给定尺寸，或按初始文本
// 量体裁衣（测量宽高加内边距）。之后 SetText 只重新换行、
// 不再改变面板尺寸；超出面板高度的行被裁掉。
type TextBox struct {
	width, height int
	cols          int // 构造时根据内容宽度固定的列预算
	style         PanelStyle

	text  string
	lines []string
}

// NewTextBox 创建固定尺寸的文本框
func NewTextBox(content string, width, height int, style PanelStyle) *TextBox {
	inset := 2 * (style.Padding + style.BorderThickness)
	box := &TextBox{
		width:  width,
		height: height,
		cols:   ColumnsForWidth(width-inset, style.fontSize()),
		style:  style,
	}
	box.SetText(content)
	return box
}

// NewAutoTextBox 创建按初始文本自适应尺寸的文本框
//
// 尺寸只在这里计算一次：以后更换更长的文本不会让面板变大，
// 多出来的行会被裁掉。
func NewAutoTextBox(content string, style PanelStyle) *TextBox {
	inset := 2 * (style.Padding + style.BorderThickness)

	// 逐行测量初始文本，取最宽行
	var maxWidth float64
	lines := WrapText(content, 1<<30)
	for _, line := range lines {
		if w := measureLineWidth(line, style); w > maxWidth {
			maxWidth = w
		}
	}

	width := int(maxWidth) + inset
	height := len(lines)*style.lineHeight() + inset

	box := &TextBox{
		width:  width,
		height: height,
		cols:   ColumnsForWidth(width-inset, style.fontSize()),
		style:  style,
	}
	box.SetText(content)
	return box
}

// measureLineWidth 测量一行文本的像素宽
// Face 未加载时按假定的平均字形宽度估算，与列预算使用同一系数
func measureLineWidth(line string, style PanelStyle) float64 {
	if style.Face == nil {
		return float64(len([]rune(line))) * style.fontSize() * avgGlyphWidthRatio
	}
	w, _ := text.Measure(line, style.Face, 0)
	return w
}

// SetText 替换内容并按构造时固定的列预算重新换行
func (t *TextBox) SetText(content string) {
	t.text = content
	t.lines = WrapText(content, t.cols)
}

// Text 返回当前原始文本
func (t *TextBox) Text() string {
	return t.text
}

// Lines 返回当前换行结果
func (t *TextBox) Lines() []string {
	return t.lines
}

// Size 返回面板尺寸（构造后不变）
func (t *TextBox) Size() (int, int) {
	return t.width, t.height
}

// Render 产出文本框图像：背景填充、逐行文本、边框
func (t *TextBox) Render() *ebiten.Image {
	img := ebiten.NewImage(t.width, t.height)
	img.Fill(t.style.Theme.TextBoxBackground.RGBA())

	inset := t.style.Padding + t.style.BorderThickness
	lineHeight := t.style.lineHeight()
	y := inset

	for _, line := range t.lines {
		// 裁剪策略：画不下的行直接丢弃，面板尺寸保持不变
		if y+lineHeight > t.height-inset {
			break
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(inset), float64(y))
		op.ColorScale.ScaleWithColor(t.style.Theme.TextColor.RGBA())
		text.Draw(img, line, t.style.Face, op)

		y += lineHeight
	}

	DrawBorder(img, t.style.BorderThickness, t.style.Theme.BorderColor.RGBA())
	return img
}
