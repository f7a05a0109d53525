package game

import (
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

// 敌人动画槽位的键名，同时也是默认的精灵文件名（<key>.png）
const (
	SpriteIdle     = "idle"
	SpriteHurt     = "hurt"
	SpriteAttack   = "attack"
	SpriteDefeated = "defeated"
)

// spriteKeys 槽位的固定顺序，用于"第一个可用精灵"回退
var spriteKeys = []string{SpriteIdle, SpriteHurt, SpriteAttack, SpriteDefeated}

// Enemy 敌人实体
//
// 在启动时从资源目录加载，战斗中只有 HP 会变化，进程退出前不会销毁。
// 所有战斗阶段的场景共享同一个 Enemy 引用，HP 状态在阶段切换间保持一致。
type Enemy struct {
	Name     string
	HP       int
	MaxHP    int
	Width    int // 精灵固定尺寸（像素）
	Height   int
	Weakness WeaponType // 匹配武器类型时受到双倍伤害
	Damage   int        // 敌人攻击时对玩家造成的原始伤害

	sprites map[string]*ebiten.Image
	// fallback 在没有任何精灵可用时惰性创建的透明占位图
	fallback *ebiten.Image
}

// NewEnemy 创建一个满血敌人，精灵槽位为空
func NewEnemy(name string, hp, width, height int, weakness WeaponType, damage int) *Enemy {
	return &Enemy{
		Name:     name,
		HP:       hp,
		MaxHP:    hp,
		Width:    width,
		Height:   height,
		Weakness: weakness,
		Damage:   damage,
		sprites:  make(map[string]*ebiten.Image),
	}
}

// ImageLoader 加载图片资源的最小接口
// 由 ResourceManager 实现；测试中可以替换为桩实现。
type ImageLoader interface {
	LoadImage(path string) (*ebiten.Image, error)
}

// LoadSprites 从 folder 加载四个动画精灵
//
// mapping 可以把动画键重定向到自定义文件名（来自 data.json 的
// sprites 字段），为 nil 或缺项时使用默认文件名 <key>.png。
// 单个文件缺失只记录日志并留空槽位，不算错误；渲染时会回退。
func (e *Enemy) LoadSprites(loader ImageLoader, folder string, mapping map[string]string) {
	for _, key := range spriteKeys {
		filename := key + ".png"
		if mapping != nil {
			if name, ok := mapping[key]; ok && name != "" {
				filename = name
			}
		}

		img, err := loader.LoadImage(filepath.Join(folder, filename))
		if err != nil {
			log.Printf("[Enemy] %s: sprite %q not loaded: %v", e.Name, filename, err)
			continue
		}
		e.sprites[key] = img
	}
}

// SetSprite 直接放入一个精灵，主要用于测试
func (e *Enemy) SetSprite(key string, img *ebiten.Image) {
	e.sprites[key] = img
}

// SpriteKeyFor 返回某个游戏状态对应的动画槽位
//
// 固定查表：战斗开始/各菜单 → idle，玩家攻击 → hurt（敌人受击），
// 敌人攻击 → attack，胜利 → defeated。未覆盖的状态回退到 idle。
func SpriteKeyFor(status Status) string {
	switch status {
	case StatusPlayerAttack:
		return SpriteHurt
	case StatusEnemyAttack:
		return SpriteAttack
	case StatusVictory:
		return SpriteDefeated
	default:
		return SpriteIdle
	}
}

// GetSprite 返回与状态匹配的精灵图
//
// 对应槽位为空时回退到第一个已加载的精灵；一个都没有时
// 返回一张敌人尺寸的透明图，保证调用方始终拿到可绘制对象。
func (e *Enemy) GetSprite(status Status) *ebiten.Image {
	if img := e.sprites[SpriteKeyFor(status)]; img != nil {
		return img
	}

	for _, key := range spriteKeys {
		if img := e.sprites[key]; img != nil {
			return img
		}
	}

	if e.fallback == nil {
		e.fallback = ebiten.NewImage(e.Width, e.Height)
	}
	return e.fallback
}

// TakeDamage 敌人受到武器攻击
//
// 基础伤害为 BaseAttackDamage，武器类型命中弱点时翻倍。
// HP 立即夹取到 0（不会显示负数）。返回造成的伤害。
func (e *Enemy) TakeDamage(weapon *Weapon) int {
	damage := BaseAttackDamage
	if weapon != nil && weapon.Type != WeaponTypeNone && weapon.Type == e.Weakness {
		damage *= 2
	}
	e.Hurt(damage)
	return damage
}

// Hurt 直接扣除 amount 点 HP，夹取到 0
// 调试键（敌人 HP -1）也走这里
func (e *Enemy) Hurt(amount int) {
	e.HP -= amount
	if e.HP < 0 {
		e.HP = 0
	}
}

// Revive 恢复满血，回到标题画面重置战斗时调用
func (e *Enemy) Revive() {
	e.HP = e.MaxHP
}

// IsDefeated 返回敌人是否已被击败
func (e *Enemy) IsDefeated() bool {
	return e.HP <= 0
}
