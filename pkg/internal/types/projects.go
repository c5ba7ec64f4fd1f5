package types

// ProjectItem 项目下拉框的一项；ID 仅为该 owner 列表内的序号，不是持久标识.
type ProjectItem struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// UserProjects owner → 项目列表.
type UserProjects map[string][]ProjectItem
