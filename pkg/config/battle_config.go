package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BattleConfig 战斗节奏与玩家初始属性
type BattleConfig struct {
	// PhaseDelay 定时阶段的停留时长（秒）
	// 战斗开始宣告、攻击结算等阶段在该时长后自动推进
	PhaseDelay float64 `yaml:"phaseDelay"`

	// 玩家初始属性
	PlayerMaxHP   int `yaml:"playerMaxHP"`
	PlayerDefence int `yaml:"playerDefence"`
	PlayerLevel   int `yaml:"playerLevel"`
}

// DefaultBattleConfig 返回默认战斗参数
func DefaultBattleConfig() *BattleConfig {
	return &BattleConfig{
		PhaseDelay:    1.5,
		PlayerMaxHP:   20,
		PlayerDefence: 1,
		PlayerLevel:   1,
	}
}

// LoadBattleConfig 从 YAML 文件加载战斗参数，文件不存在时使用默认值
func LoadBattleConfig(path string) (*BattleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultBattleConfig(), nil
		}
		return nil, fmt.Errorf("failed to read battle config %s: %w", path, err)
	}

	cfg := DefaultBattleConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse battle config %s: %w", path, err)
	}

	if cfg.PhaseDelay <= 0 {
		return nil, fmt.Errorf("invalid battle config %s: phaseDelay must be positive", path)
	}
	if cfg.PlayerMaxHP <= 0 {
		return nil, fmt.Errorf("invalid battle config %s: playerMaxHP must be positive", path)
	}
	if cfg.PlayerDefence < 0 {
		return nil, fmt.Errorf("invalid battle config %s: playerDefence must not be negative", path)
	}
	return cfg, nil
}
