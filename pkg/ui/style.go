package ui

import (
	"github.com/decker502/dental-guardians/pkg/config"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// PanelStyle 面板元件共享的渲染参数
//
// Theme 与 Face 在启动时构造一次，所有元件以引用共享。
type PanelStyle struct {
	Face            *text.GoTextFace
	Theme           *config.Theme
	Padding         int // 内容到面板边缘的距离（像素）
	BorderThickness int // 0 表示无边框
}

// fontSize 返回用于行高与列预算估算的字号
// Face 未加载（无窗口环境）时回退到固定字号
func (s *PanelStyle) fontSize() float64 {
	if s.Face == nil {
		return 12
	}
	return s.Face.Size
}

// lineHeight 返回单行文本占用的像素高（含少量行距）
func (s *PanelStyle) lineHeight() int {
	return int(s.fontSize() * 1.2)
}
