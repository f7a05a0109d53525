// Package app 提供游戏应用的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来：加载配置与资源目录、
// 构建 Director，并实现 ebiten.Game 接口驱动主循环。
package app

import (
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/decker502/dental-guardians/pkg/config"
	"github.com/decker502/dental-guardians/pkg/game"
	"github.com/decker502/dental-guardians/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// AssetsDir 资源根目录（包含 objects/、fonts/、images/、config/）
	AssetsDir string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	director  *scenes.Director
	settings  *config.Settings
	showDebug bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 启动顺序：配置 → 资源管理器 → 对象目录 → 字体 → Director。
// 对象目录或字体加载失败是致命错误；标题背景图缺失只降级为
// 纯色背景。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 加载启动配置（所有文件可选，缺失用默认值）
	conf, err := config.Load(filepath.Join(cfg.AssetsDir, "config"))
	if err != nil {
		return nil, fmt.Errorf("config load failed: %w", err)
	}

	// 创建资源管理器并加载对象目录
	resourceManager := game.NewResourceManager()
	catalog, err := game.LoadCatalog(resourceManager, filepath.Join(cfg.AssetsDir, "objects"))
	if err != nil {
		return nil, fmt.Errorf("catalog load failed: %w", err)
	}

	// 加载各用途字体面
	faces, err := loadFaces(resourceManager, conf.Fonts)
	if err != nil {
		return nil, fmt.Errorf("font load failed: %w", err)
	}

	// 标题背景图和菜单底图都是可选资源
	titleBackground, err := resourceManager.LoadImage(
		filepath.Join(cfg.AssetsDir, "images", "titlescreen.png"))
	if err != nil {
		log.Printf("[App] title background not available: %v", err)
		titleBackground = nil
	}
	menuBackground, err := resourceManager.LoadImage(
		filepath.Join(cfg.AssetsDir, "images", "menu.png"))
	if err != nil {
		log.Printf("[App] menu background not available: %v", err)
		menuBackground = nil
	}

	director, err := scenes.NewDirector(conf, &scenes.Assets{
		Catalog:         catalog,
		Faces:           faces,
		TitleBackground: titleBackground,
		MenuBackground:  menuBackground,
	})
	if err != nil {
		return nil, fmt.Errorf("director init failed: %w", err)
	}

	log.Printf("[App] initialized, starting at %s", director.Status())

	return &App{
		director:  director,
		settings:  conf.Settings,
		showDebug: cfg.Verbose || conf.Settings.ShowDebug,
	}, nil
}

// loadFaces 按配置的字号加载全部字体面
func loadFaces(rm *game.ResourceManager, fonts *config.FontConfig) (scenes.Faces, error) {
	var faces scenes.Faces
	var err error

	if faces.Title, err = rm.LoadFont(fonts.Path, fonts.TitleSize); err != nil {
		return faces, err
	}
	if faces.Menu, err = rm.LoadFont(fonts.Path, fonts.MenuSize); err != nil {
		return faces, err
	}
	if faces.HealthBar, err = rm.LoadFont(fonts.Path, fonts.HealthBarSize); err != nil {
		return faces, err
	}
	if faces.Default, err = rm.LoadFont(fonts.Path, fonts.DefaultSize); err != nil {
		return faces, err
	}
	return faces, nil
}

// Settings 返回加载到的全局设置（main 用于窗口初始化）
func (a *App) Settings() *config.Settings {
	return a.settings
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧再恢复窗口大小，给窗口管理器处理时间
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	return a.director.Update(config.TickDelta, pollInput())
}

// pollInput 把本帧的按键翻译成逻辑输入事件队列
//
// 方向键控制菜单选择，回车确认，D 是调试键（敌人 HP -1）。
// 事件顺序与平台投递顺序一致，每帧排空一次。
func pollInput() []game.InputEvent {
	var events []game.InputEvent

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		events = append(events, game.InputUp)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		events = append(events, game.InputDown)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		events = append(events, game.InputConfirm)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		events = append(events, game.InputDebug)
	}

	return events
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.director.Draw(screen)

	if a.showDebug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS %0.0f  TPS %0.0f  %s",
			ebiten.ActualFPS(), ebiten.ActualTPS(), a.director.Status()))
	}
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}
