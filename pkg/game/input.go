package game

// InputEvent 是平台按键翻译后的逻辑输入事件
//
// pkg/app 每帧把 Ebitengine 的按键事件翻译成逻辑事件队列，
// Director 按到达顺序同步处理。核心逻辑不直接依赖键盘 API，
// 这样状态机可以在没有窗口的环境下测试。
type InputEvent int

const (
	// InputUp 菜单向上（选择索引 -1）
	InputUp InputEvent = iota
	// InputDown 菜单向下（选择索引 +1）
	InputDown
	// InputConfirm 确认当前菜单项
	InputConfirm
	// InputDebug 调试键：当前敌人 HP -1（仅战斗阶段生效）
	InputDebug
)
