package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FontConfig 字体文件与各用途的字号
//
// 字号沿用原型的取值：标题 64、菜单 34、血条 28、正文 24。
// 所有文本共用一个 TTF 字体文件。
type FontConfig struct {
	Path          string  `yaml:"path"`          // TTF/OTF 文件路径
	TitleSize     float64 `yaml:"titleSize"`     // 标题字号
	MenuSize      float64 `yaml:"menuSize"`      // 菜单字号
	HealthBarSize float64 `yaml:"healthBarSize"` // 血条文字字号
	DefaultSize   float64 `yaml:"defaultSize"`   // 正文字号
}

// DefaultFontConfig 返回默认字体配置
func DefaultFontConfig() *FontConfig {
	return &FontConfig{
		Path:          "assets/fonts/game.ttf",
		TitleSize:     64,
		MenuSize:      34,
		HealthBarSize: 28,
		DefaultSize:   24,
	}
}

// LoadFontConfig 从 YAML 文件加载字体配置，文件不存在时使用默认值
func LoadFontConfig(path string) (*FontConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultFontConfig(), nil
		}
		return nil, fmt.Errorf("failed to read font config %s: %w", path, err)
	}

	cfg := DefaultFontConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse font config %s: %w", path, err)
	}

	if cfg.Path == "" {
		return nil, fmt.Errorf("invalid font config %s: path must not be empty", path)
	}
	for _, size := range []float64{cfg.TitleSize, cfg.MenuSize, cfg.HealthBarSize, cfg.DefaultSize} {
		if size <= 0 {
			return nil, fmt.Errorf("invalid font config %s: sizes must be positive", path)
		}
	}
	return cfg, nil
}
