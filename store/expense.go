package store

import (
	"errors"
	"fmt"

	"tracker/database"
	"tracker/models"

	"gorm.io/gorm"
)

// ExpenseUpdate 消费记录的部分更新，nil 字段保持不变
type ExpenseUpdate struct {
	CategoryID  *uint
	Amount      *float64
	ExpenseDate *models.Date
	Description *string
}

// ExpenseFilter 消费记录列表筛选条件
type ExpenseFilter struct {
	CategoryID uint
	StartDate  *models.Date
	EndDate    *models.Date
}

// AddExpense 创建消费记录
// 插入前在应用层校验用户和类别存在，两项都通过后才写入
func AddExpense(userID, categoryID uint, amount float64, date models.Date, description string) (*models.Expense, error) {
	expense := &models.Expense{
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		ExpenseDate: date,
		Description: description,
	}
	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("查询用户失败: %w", err)
		}
		var cat models.Category
		if err := tx.First(&cat, categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}
			return fmt.Errorf("查询类别失败: %w", err)
		}
		if err := tx.Create(expense).Error; err != nil {
			return fmt.Errorf("创建消费记录失败: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// GetExpense 按主键查找消费记录
func GetExpense(expenseID uint) (*models.Expense, error) {
	var expense models.Expense
	if err := database.GetDB().First(&expense, expenseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("查询消费记录失败: %w", err)
	}
	return &expense, nil
}

// ListExpenses 获取指定用户的消费记录，按日期倒序，不分页
func ListExpenses(userID uint, filter ExpenseFilter) ([]models.Expense, error) {
	query := database.GetDB().Where("user_id = ?", userID)
	if filter.CategoryID > 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.StartDate != nil {
		query = query.Where("expense_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("expense_date <= ?", *filter.EndDate)
	}

	expenses := make([]models.Expense, 0)
	if err := query.Order("expense_date DESC").Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("查询消费记录失败: %w", err)
	}
	return expenses, nil
}

// UpdateExpense 部分更新消费记录，未指定的字段保持不变
func UpdateExpense(expenseID uint, upd ExpenseUpdate) (*models.Expense, error) {
	var expense models.Expense
	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&expense, expenseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrExpenseNotFound
			}
			return fmt.Errorf("查询消费记录失败: %w", err)
		}

		updates := map[string]interface{}{}
		if upd.CategoryID != nil {
			var cat models.Category
			if err := tx.First(&cat, *upd.CategoryID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrCategoryNotFound
				}
				return fmt.Errorf("查询类别失败: %w", err)
			}
			updates["category_id"] = *upd.CategoryID
		}
		if upd.Amount != nil {
			updates["amount"] = *upd.Amount
		}
		if upd.ExpenseDate != nil {
			updates["expense_date"] = *upd.ExpenseDate
		}
		if upd.Description != nil {
			updates["description"] = *upd.Description
		}
		if len(updates) == 0 {
			return nil
		}

		if err := tx.Model(&expense).Updates(updates).Error; err != nil {
			return fmt.Errorf("更新消费记录失败: %w", err)
		}
		return tx.First(&expense, expense.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// DeleteExpense 删除消费记录
func DeleteExpense(expenseID uint) error {
	return database.GetDB().Transaction(func(tx *gorm.DB) error {
		var expense models.Expense
		if err := tx.First(&expense, expenseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrExpenseNotFound
			}
			return fmt.Errorf("查询消费记录失败: %w", err)
		}
		if err := tx.Delete(&expense).Error; err != nil {
			return fmt.Errorf("删除消费记录失败: %w", err)
		}
		return nil
	})
}
