package models

import (
	"time"
)

// Category 消费类别
type Category struct {
	ID        uint      `json:"category_id" gorm:"column:category_id;primaryKey"`
	Name      string    `json:"category_name" gorm:"column:category_name;size:50;not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 设置表名
func (Category) TableName() string {
	return "category"
}
