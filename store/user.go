package store

import (
	"errors"
	"fmt"

	"tracker/database"
	"tracker/models"

	"gorm.io/gorm"
)

// AddUser 创建用户，邮箱重复时整个事务回滚
func AddUser(name, email string) (*models.User, error) {
	user := &models.User{Name: name, Email: email}
	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return fmt.Errorf("查询邮箱失败: %w", err)
		}
		if count > 0 {
			return ErrDuplicateEmail
		}
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("创建用户失败: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser 按主键查找用户
func GetUser(userID uint) (*models.User, error) {
	var user models.User
	if err := database.GetDB().First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	return &user, nil
}

// UpdateUser 更新用户，空字符串表示该字段不变
func UpdateUser(userID uint, name, email string) (*models.User, error) {
	var user models.User
	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("查询用户失败: %w", err)
		}

		updates := map[string]interface{}{}
		if name != "" {
			updates["name"] = name
		}
		if email != "" && email != user.Email {
			var count int64
			if err := tx.Model(&models.User{}).
				Where("email = ? AND user_id != ?", email, user.ID).
				Count(&count).Error; err != nil {
				return fmt.Errorf("查询邮箱失败: %w", err)
			}
			if count > 0 {
				return ErrDuplicateEmail
			}
			updates["email"] = email
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&user).Updates(updates).Error; err != nil {
			return fmt.Errorf("更新用户失败: %w", err)
		}
		return tx.First(&user, user.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser 删除用户，仍有消费记录时拒绝
func DeleteUser(userID uint) error {
	return database.GetDB().Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("查询用户失败: %w", err)
		}

		var count int64
		if err := tx.Model(&models.Expense{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return fmt.Errorf("查询消费记录失败: %w", err)
		}
		if count > 0 {
			return ErrUserHasExpenses
		}

		if err := tx.Delete(&user).Error; err != nil {
			return fmt.Errorf("删除用户失败: %w", err)
		}
		return nil
	})
}
