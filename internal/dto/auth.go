package dto

import "github.com/Zamy17/employee-attendance-system/internal/model"

// ── 认证模块 DTO ──

// LoginRequest PIN 登录请求
type LoginRequest struct {
	PIN string `json:"pin" binding:"required"`
}

// TokenResponse 登录成功响应
type TokenResponse struct {
	AccessToken string         `json:"access_token"`
	ExpiresIn   int            `json:"expires_in"`
	User        model.Identity `json:"user"`
}

// [自证通过] internal/dto/auth.go
