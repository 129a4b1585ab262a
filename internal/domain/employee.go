package domain

import (
	"time"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RolePartime  Role = "PARTIME"
	RoleFulltime Role = "FULLTIME"
)

// 角色与数字编码的双向映射表，所有需要序列化角色的地方都必须使用这张表，
// 避免各个 handler 各自维护一份映射导致不一致
var roleCodes = map[Role]int32{
	RoleAdmin:    1,
	RolePartime:  2,
	RoleFulltime: 3,
}

var codeRoles = map[int32]Role{}

func init() {
	for role, code := range roleCodes {
		codeRoles[code] = role
	}
}

func (r Role) Code() int32 {
	return roleCodes[r]
}

func (r Role) IsValid() bool {
	_, ok := roleCodes[r]
	return ok
}

func RoleFromCode(code int32) (Role, bool) {
	role, ok := codeRoles[code]
	return role, ok
}

type Employee struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}
