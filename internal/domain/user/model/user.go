package model

import (
	baseModel "food_delivery_api/pkg/model"
)

// User 用户模型
type User struct {
	baseModel.BaseModel
	Name     string `json:"name"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"` // 密码不返回给前端
	Role     int    `gorm:"default:1" json:"role"`
	Status   string `gorm:"default:'active'" json:"status"` // active, deactivated
}

const (
	RoleUser  = 1
	RoleAdmin = 2

	StatusActive      = "active"
	StatusDeactivated = "deactivated"
)

// RoleName 角色的对外名称
func RoleName(role int) string {
	if role == RoleAdmin {
		return "admin"
	}
	return "user"
}

// RoleFromName 对外名称转角色值，未知名称返回 0
func RoleFromName(name string) int {
	switch name {
	case "admin":
		return RoleAdmin
	case "user":
		return RoleUser
	default:
		return 0
	}
}
