package models

import (
	"time"
)

// User 用户模型
// 没有密码和会话概念，"登录"即提供一个能解析到的 user_id
type User struct {
	ID        uint      `json:"user_id" gorm:"column:user_id;primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Email     string    `json:"email" gorm:"size:100;uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 设置表名
func (User) TableName() string {
	return "user"
}
