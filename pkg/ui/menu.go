package ui

import (
	"github.com/decker502/dental-guardians/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Option 一条菜单项：显示标签加载荷
// 标签在同一菜单内唯一，插入顺序即显示顺序。
type Option struct {
	Label   string
	Payload game.MenuPayload
}

// Menu 键盘驱动的可选项列表
//
// 固定尺寸的面板，按插入顺序从上到下绘制每个标签，
// 当前选中项用高亮背景标出。选择索引循环回绕，
// 空菜单上的任何导航都是受保护的空操作。
type Menu struct {
	width, height int
	lineOffset    int // 行与行之间的附加垂直间距
	style         PanelStyle

	background *ebiten.Image // 可选的背景图，铺在背景色之上

	options []Option
	current int
}

// NewMenu 创建一个空菜单
func NewMenu(width, height, lineOffset int, style PanelStyle) *Menu {
	return &Menu{
		width:      width,
		height:     height,
		lineOffset: lineOffset,
		style:      style,
	}
}

// SetBackground 设置背景图（可为 nil）
func (m *Menu) SetBackground(img *ebiten.Image) {
	m.background = img
}

// Background 返回当前背景图，未设置时为 nil
func (m *Menu) Background() *ebiten.Image {
	return m.background
}

// SetOptions 替换全部选项并把选择重置到第一项
func (m *Menu) SetOptions(options []Option) {
	m.options = options
	m.current = 0
}

// SetOptionsIfEmpty 仅在菜单为空时填充选项
//
// 武器/道具菜单在进入对应状态时懒填充；同一状态的后续帧
// 重复调用该方法不会重置玩家已经移动过的选择索引。
// 返回是否真的发生了填充。
func (m *Menu) SetOptionsIfEmpty(options []Option) bool {
	if len(m.options) > 0 {
		return false
	}
	m.SetOptions(options)
	return true
}

// Clear 清空选项（离开战斗时调用，让下一场战斗重新填充）
func (m *Menu) Clear() {
	m.options = nil
	m.current = 0
}

// UpdateOption 把 delta 叠加到当前选择索引上并循环回绕
// 空菜单时为空操作（防止对零取模）。
func (m *Menu) UpdateOption(delta int) {
	n := len(m.options)
	if n == 0 {
		return
	}
	m.current = ((m.current+delta)%n + n) % n
}

// GetOption 返回当前选中项的载荷
// 空菜单返回零值载荷（Kind 为 PayloadNone）。
func (m *Menu) GetOption() game.MenuPayload {
	if len(m.options) == 0 {
		return game.MenuPayload{}
	}
	return m.options[m.current].Payload
}

// CurrentIndex 返回当前选择索引
func (m *Menu) CurrentIndex() int {
	return m.current
}

// Len 返回选项数量
func (m *Menu) Len() int {
	return len(m.options)
}

// Labels 按显示顺序返回全部标签
func (m *Menu) Labels() []string {
	labels := make([]string, len(m.options))
	for i, opt := range m.options {
		labels[i] = opt.Label
	}
	return labels
}

// Render 产出菜单面板图像
//
// 绘制顺序：背景色 → 背景图 → 每行标签（选中行先垫高亮底色）→ 边框。
func (m *Menu) Render() *ebiten.Image {
	img := ebiten.NewImage(m.width, m.height)
	img.Fill(m.style.Theme.MenuBackground.RGBA())

	if m.background != nil {
		img.DrawImage(m.background, nil)
	}

	lineHeight := m.style.lineHeight()
	y := m.style.Padding

	for i, opt := range m.options {
		if i == m.current {
			labelWidth, _ := text.Measure(opt.Label, m.style.Face, 0)
			vector.DrawFilledRect(img,
				float32(m.style.Padding), float32(y),
				float32(labelWidth), float32(lineHeight),
				m.style.Theme.MenuHighlight.RGBA(), false)
		}

		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(m.style.Padding), float64(y))
		op.ColorScale.ScaleWithColor(m.style.Theme.TextColor.RGBA())
		text.Draw(img, opt.Label, m.style.Face, op)

		y += lineHeight + m.lineOffset
	}

	DrawBorder(img, m.style.BorderThickness, m.style.Theme.BorderColor.RGBA())
	return img
}
