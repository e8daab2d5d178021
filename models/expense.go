package models

import (
	"time"
)

// Expense 消费记录模型
// 每条记录必须引用已存在的用户和类别（插入前在应用层校验）
type Expense struct {
	ID          uint      `json:"expense_id" gorm:"column:expense_id;primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	CategoryID  uint      `json:"category_id" gorm:"index;not null"`
	Amount      float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	ExpenseDate Date      `json:"expense_date" gorm:"not null"`
	Description string    `json:"description" gorm:"size:255"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	User        User      `json:"-" gorm:"foreignKey:UserID"`
	Category    Category  `json:"-" gorm:"foreignKey:CategoryID"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expense"
}
