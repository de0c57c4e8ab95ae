package dto

// MenuItem 前端路由/导航菜单节点
type MenuItem struct {
	Path      string     `json:"path,omitempty"`
	Name      string     `json:"name,omitempty"`
	Component string     `json:"component,omitempty"` // 视图路径，布局壳为 "Layout"
	Redirect  string     `json:"redirect,omitempty"`
	Meta      MenuMeta   `json:"meta"`
	Children  []MenuItem `json:"children,omitempty"`
}

// MenuMeta 菜单节点元信息
type MenuMeta struct {
	Title      string `json:"title"`
	Icon       string `json:"icon,omitempty"`
	Menu       *bool  `json:"menu,omitempty"`       // false 时不在导航中显示
	Breadcrumb *bool  `json:"breadcrumb,omitempty"` // false 时不显示面包屑
	ActiveMenu string `json:"activeMenu,omitempty"`
}
