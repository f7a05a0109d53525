package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Point 屏幕坐标（像素，原点在左上角）
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Size 像素尺寸
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SceneLayout 各场景中可打印元素的位置与尺寸
//
// 默认值按 800×600 逻辑分辨率推导，保持与原型相同的画面布局：
// 标题菜单在左下、敌人在左上、血条在右上、信息框在右下。
type SceneLayout struct {
	// 标题画面
	TitleTextPos  Point `yaml:"titleTextPos"`
	TitleMenuPos  Point `yaml:"titleMenuPos"`
	TitleMenuSize Size  `yaml:"titleMenuSize"`

	// 制作人员画面
	CreditsTextPos  Point `yaml:"creditsTextPos"`
	CreditsMenuPos  Point `yaml:"creditsMenuPos"`
	CreditsMenuSize Size  `yaml:"creditsMenuSize"`

	// 战斗场景
	EnemyPos       Point `yaml:"enemyPos"`
	HealthBarPos   Point `yaml:"healthBarPos"`
	HealthBarSize  Size  `yaml:"healthBarSize"`
	InfoBoxPos     Point `yaml:"infoBoxPos"`
	InfoBoxSize    Size  `yaml:"infoBoxSize"`
	BattleMenuPos  Point `yaml:"battleMenuPos"`
	BattleMenuSize Size  `yaml:"battleMenuSize"`

	// 面板通用参数
	MenuLineOffset  int `yaml:"menuLineOffset"`  // 菜单行间距附加偏移（像素）
	PanelPadding    int `yaml:"panelPadding"`    // 面板内边距
	BorderThickness int `yaml:"borderThickness"` // 边框线宽
}

// DefaultSceneLayout 返回 800×600 下的默认布局
func DefaultSceneLayout() *SceneLayout {
	const w, h = GameWindowWidth, GameWindowHeight

	infoBox := Size{Width: w * 2 / 3, Height: h / 3}
	healthBar := Size{Width: w / 2, Height: h / 5}

	return &SceneLayout{
		TitleTextPos:  Point{X: 30, Y: h/2 - 40},
		TitleMenuPos:  Point{X: 30, Y: h - h/3},
		TitleMenuSize: Size{Width: 200, Height: 128},

		CreditsTextPos:  Point{X: 60, Y: 80},
		CreditsMenuPos:  Point{X: 30, Y: h - 120},
		CreditsMenuSize: Size{Width: 200, Height: 60},

		EnemyPos:       Point{X: w / 15, Y: h / 25},
		HealthBarPos:   Point{X: w - healthBar.Width - 50, Y: 50},
		HealthBarSize:  healthBar,
		InfoBoxPos:     Point{X: w - infoBox.Width - 20, Y: h - infoBox.Height - 10},
		InfoBoxSize:    infoBox,
		BattleMenuPos:  Point{X: 30, Y: h - 210},
		BattleMenuSize: Size{Width: 220, Height: 180},

		MenuLineOffset:  4,
		PanelPadding:    5,
		BorderThickness: 5,
	}
}

// LoadSceneLayout 从 YAML 文件加载布局，文件不存在时使用默认值
func LoadSceneLayout(path string) (*SceneLayout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSceneLayout(), nil
		}
		return nil, fmt.Errorf("failed to read layout config %s: %w", path, err)
	}

	layout := DefaultSceneLayout()
	if err := yaml.Unmarshal(data, layout); err != nil {
		return nil, fmt.Errorf("failed to parse layout config %s: %w", path, err)
	}

	if err := layout.validate(); err != nil {
		return nil, fmt.Errorf("invalid layout config %s: %w", path, err)
	}
	return layout, nil
}

// validate 检查布局参数是否自洽
// 配置错误属于快速失败：不可恢复，直接阻止启动
func (l *SceneLayout) validate() error {
	sizes := []struct {
		name string
		size Size
	}{
		{"titleMenuSize", l.TitleMenuSize},
		{"creditsMenuSize", l.CreditsMenuSize},
		{"healthBarSize", l.HealthBarSize},
		{"infoBoxSize", l.InfoBoxSize},
		{"battleMenuSize", l.BattleMenuSize},
	}
	for _, s := range sizes {
		if s.size.Width <= 0 || s.size.Height <= 0 {
			return fmt.Errorf("%s must be positive, got %dx%d", s.name, s.size.Width, s.size.Height)
		}
	}

	if l.PanelPadding < 0 {
		return fmt.Errorf("panelPadding must not be negative, got %d", l.PanelPadding)
	}
	if l.BorderThickness < 0 {
		return fmt.Errorf("borderThickness must not be negative, got %d", l.BorderThickness)
	}
	return nil
}
