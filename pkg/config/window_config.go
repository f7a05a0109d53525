// Package config 提供游戏的全部可调配置
//
// 颜色、布局、字体等参数在启动时构造为不可变的配置结构体，
// 由调用方以引用传递给渲染代码，不使用可变的包级单例。
// 每类配置都有内置默认值，assets/config/ 下的 YAML 文件可以覆盖。
package config

// 窗口与帧率常量
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// GameWindowTitle 窗口标题
	GameWindowTitle = "Dental Guardians"

	// TickDelta 每个逻辑帧的时长（秒）
	// Ebitengine 默认 60 TPS，Update 内所有计时都用该固定步长累加
	TickDelta = 1.0 / 60.0
)
