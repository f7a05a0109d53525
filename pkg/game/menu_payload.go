package game

// PayloadKind 标记菜单载荷携带的具体内容
//
// 菜单项的载荷是一个带标签的联合：状态跳转、武器、道具或空。
// 用显式标签代替对字段做类型探测，状态机按 Kind 分发。
type PayloadKind int

const (
	// PayloadNone 空载荷：状态机忽略该选择，停留在当前状态
	PayloadNone PayloadKind = iota
	// PayloadStatus 选择后跳转到指定状态
	PayloadStatus
	// PayloadWeapon 选择一件武器（进入玩家攻击）
	PayloadWeapon
	// PayloadItem 选择一个道具（进入道具使用）
	PayloadItem
)

// MenuPayload 菜单项携带的载荷
// 只有 Kind 指向的字段有意义，其余字段为零值。
type MenuPayload struct {
	Kind   PayloadKind
	Status Status
	Weapon *Weapon
	Item   *Item
}

// StatusPayload 构造状态跳转载荷
func StatusPayload(s Status) MenuPayload {
	return MenuPayload{Kind: PayloadStatus, Status: s}
}

// WeaponPayload 构造武器载荷
func WeaponPayload(w *Weapon) MenuPayload {
	return MenuPayload{Kind: PayloadWeapon, Weapon: w}
}

// ItemPayload 构造道具载荷
func ItemPayload(i *Item) MenuPayload {
	return MenuPayload{Kind: PayloadItem, Item: i}
}
