package config

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// ColorValue 是 YAML 友好的 RGBA 颜色表示
type ColorValue struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// RGBA 转换为标准库颜色
func (c ColorValue) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Theme 游戏配色方案
//
// 启动时构造一次，之后只读。渲染代码通过引用接收 Theme，
// 不存在可被意外修改的全局颜色表。
type Theme struct {
	// ScreenBackground 每帧合成前的清屏颜色
	ScreenBackground ColorValue `yaml:"screenBackground"`

	// TextColor 普通文本颜色
	TextColor ColorValue `yaml:"textColor"`

	// MenuBackground 菜单面板背景（支持半透明）
	MenuBackground ColorValue `yaml:"menuBackground"`

	// MenuHighlight 当前选中项的高亮背景
	MenuHighlight ColorValue `yaml:"menuHighlight"`

	// TextBoxBackground 文本框背景
	TextBoxBackground ColorValue `yaml:"textBoxBackground"`

	// BorderColor 面板边框颜色
	BorderColor ColorValue `yaml:"borderColor"`

	// HealthBarBackground 血条面板背景
	HealthBarBackground ColorValue `yaml:"healthBarBackground"`

	// HealthBarFill 血条前景（剩余血量）
	HealthBarFill ColorValue `yaml:"healthBarFill"`

	// HealthBarTrack 血条底槽（血量背后的全宽矩形）
	HealthBarTrack ColorValue `yaml:"healthBarTrack"`
}

// DefaultTheme 返回默认配色（与原型的配色一致：白底黑字、
// 黄色高亮、浅蓝文本框、黄底绿条的血条）
func DefaultTheme() *Theme {
	return &Theme{
		ScreenBackground:    ColorValue{255, 255, 255, 255},
		TextColor:           ColorValue{0, 0, 0, 255},
		MenuBackground:      ColorValue{255, 255, 255, 180},
		MenuHighlight:       ColorValue{255, 255, 0, 255},
		TextBoxBackground:   ColorValue{173, 216, 230, 255},
		BorderColor:         ColorValue{0, 0, 0, 255},
		HealthBarBackground: ColorValue{255, 255, 0, 255},
		HealthBarFill:       ColorValue{0, 200, 0, 255},
		HealthBarTrack:      ColorValue{120, 120, 120, 255},
	}
}

// LoadTheme 从 YAML 文件加载配色
//
// 文件不存在时返回默认配色（这不是错误，配置文件是可选的）；
// 文件存在但解析失败时返回错误。
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultTheme(), nil
		}
		return nil, fmt.Errorf("failed to read theme config %s: %w", path, err)
	}

	theme := DefaultTheme()
	if err := yaml.Unmarshal(data, theme); err != nil {
		return nil, fmt.Errorf("failed to parse theme config %s: %w", path, err)
	}
	return theme, nil
}
