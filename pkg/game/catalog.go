package game

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// descriptor mirrors the data.json file found in every object folder.
//
// The on-disk contract (fixed, JSON):
//
//	{
//	  "type": "enemy" | "weapon" | "item",
//	  "name": "plaque monster",
//	  "hp": 40,                      // enemy only
//	  "damage": 3,                   // enemy: attack power; weapon: display value
//	  "magnitude": 5,                // item only
//	  "size": [256, 256],            // enemy sprite size, defaults to 256x256
//	  "weakness": "brush",           // enemy only, optional
//	  "weapon_type": "floss",        // weapon only, optional
//	  "sprites": {"idle": "calm.png"} // optional filename overrides
//	}
type descriptor struct {
	Type       string            `json:"type"`
	Name       string            `json:"name"`
	HP         int               `json:"hp"`
	Damage     int               `json:"damage"`
	Magnitude  int               `json:"magnitude"`
	Size       []int             `json:"size"`
	Weakness   string            `json:"weakness"`
	WeaponType string            `json:"weapon_type"`
	Sprites    map[string]string `json:"sprites"`
}

// 描述符缺省值
const (
	defaultEnemyHP     = 40
	defaultEnemySize   = 256
	defaultEnemyDamage = 3
)

// Catalog 对象目录：启动时从资源目录加载的全部敌人、武器和道具
//
// 加载完成后目录本身不再变化，战斗中变化的只有 Enemy.HP。
type Catalog struct {
	Enemies []*Enemy
	Weapons []*Weapon
	Items   []*Item
}

// LoadCatalog 遍历 root 下的每个子目录并解析其中的 data.json
//
// root 的布局（固定的外部资源契约）：
//
//	assets/objects/
//	    plaque/
//	        data.json
//	        idle.png hurt.png attack.png defeated.png
//	    toothbrush/
//	        data.json
//
// 描述符损坏或 type 未知是致命错误：没有对象目录游戏无法开始。
// 精灵文件缺失只记录日志（Enemy.LoadSprites 负责回退）。
func LoadCatalog(loader ImageLoader, root string) (*Catalog, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read objects dir %q: %w", root, err)
	}

	catalog := &Catalog{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		folder := filepath.Join(root, entry.Name())
		if err := catalog.loadObject(loader, folder); err != nil {
			return nil, err
		}
	}

	log.Printf("[Catalog] loaded %d enemies, %d weapons, %d items from %s",
		len(catalog.Enemies), len(catalog.Weapons), len(catalog.Items), root)

	if len(catalog.Enemies) == 0 {
		return nil, fmt.Errorf("no enemies found under %q: the game cannot start", root)
	}
	return catalog, nil
}

// loadObject 解析单个对象目录
func (c *Catalog) loadObject(loader ImageLoader, folder string) error {
	path := filepath.Join(folder, "data.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read descriptor %q: %w", path, err)
	}

	var desc descriptor
	if err := json.Unmarshal(data, &desc); err != nil {
		return fmt.Errorf("malformed descriptor %q: %w", path, err)
	}
	if desc.Name == "" {
		// 与原始资源一致：目录名就是对象名
		desc.Name = filepath.Base(folder)
	}

	switch desc.Type {
	case "enemy":
		c.Enemies = append(c.Enemies, newEnemyFromDescriptor(loader, folder, &desc))
	case "weapon":
		c.Weapons = append(c.Weapons, &Weapon{
			Name:   desc.Name,
			Damage: desc.Damage,
			Type:   WeaponType(desc.WeaponType),
		})
	case "item":
		c.Items = append(c.Items, &Item{
			Name:      desc.Name,
			Magnitude: desc.Magnitude,
		})
	default:
		return fmt.Errorf("descriptor %q: unknown object type %q", path, desc.Type)
	}
	return nil
}

func newEnemyFromDescriptor(loader ImageLoader, folder string, desc *descriptor) *Enemy {
	hp := desc.HP
	if hp <= 0 {
		hp = defaultEnemyHP
	}
	damage := desc.Damage
	if damage <= 0 {
		damage = defaultEnemyDamage
	}

	width, height := defaultEnemySize, defaultEnemySize
	if len(desc.Size) == 2 && desc.Size[0] > 0 && desc.Size[1] > 0 {
		width, height = desc.Size[0], desc.Size[1]
	}

	enemy := NewEnemy(desc.Name, hp, width, height, WeaponType(desc.Weakness), damage)
	if loader != nil {
		enemy.LoadSprites(loader, folder, desc.Sprites)
	}
	return enemy
}
