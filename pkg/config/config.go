package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings 全局游戏设置
//
// 与对象目录不同，设置只在启动时读取一次，运行期间不回写磁盘。
type Settings struct {
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏
	ShowDebug  bool `yaml:"showDebug"`  // 是否绘制调试叠加层（FPS、当前状态）
}

// DefaultSettings 返回默认设置
func DefaultSettings() *Settings {
	return &Settings{
		Fullscreen: false,
		ShowDebug:  false,
	}
}

// LoadSettings 从 YAML 文件加载设置，文件不存在时使用默认值
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	return settings, nil
}

// Config 聚合全部启动期配置
type Config struct {
	Theme    *Theme
	Layout   *SceneLayout
	Fonts    *FontConfig
	Battle   *BattleConfig
	Settings *Settings
}

// Default 返回全默认配置
func Default() *Config {
	return &Config{
		Theme:    DefaultTheme(),
		Layout:   DefaultSceneLayout(),
		Fonts:    DefaultFontConfig(),
		Battle:   DefaultBattleConfig(),
		Settings: DefaultSettings(),
	}
}

// Load 从配置目录加载全部配置
//
// dir 下的每个文件都是可选的：缺失的文件使用内置默认值，
// 存在但无法解析的文件是致命错误。
func Load(dir string) (*Config, error) {
	theme, err := LoadTheme(filepath.Join(dir, "theme.yaml"))
	if err != nil {
		return nil, err
	}

	layout, err := LoadSceneLayout(filepath.Join(dir, "layout.yaml"))
	if err != nil {
		return nil, err
	}

	fonts, err := LoadFontConfig(filepath.Join(dir, "fonts.yaml"))
	if err != nil {
		return nil, err
	}

	battle, err := LoadBattleConfig(filepath.Join(dir, "battle.yaml"))
	if err != nil {
		return nil, err
	}

	settings, err := LoadSettings(filepath.Join(dir, "settings.yaml"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Theme:    theme,
		Layout:   layout,
		Fonts:    fonts,
		Battle:   battle,
		Settings: settings,
	}, nil
}
