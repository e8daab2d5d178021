package store

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"tracker/database"
	"tracker/models"

	"gorm.io/gorm"
)

// CategoryNameMaxLen 类别名称最大长度
const CategoryNameMaxLen = 50

// AddCategories 批量创建类别
// 输入为逗号分隔的名称串，每段去除首尾空格，空段跳过；
// 批次内或与已有数据重名时整批失败，不做部分插入
func AddCategories(categoryNames string) ([]models.Category, error) {
	seen := make(map[string]bool)
	var cats []models.Category
	for _, part := range strings.Split(categoryNames, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if utf8.RuneCountInString(name) > CategoryNameMaxLen {
			return nil, fmt.Errorf("类别名称过长（最多 %d 个字符）: %s", CategoryNameMaxLen, name)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCategory, name)
		}
		seen[name] = true
		cats = append(cats, models.Category{Name: name})
	}
	if len(cats) == 0 {
		return nil, errors.New("没有有效的类别名称")
	}

	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Name
	}

	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		var existing []models.Category
		if err := tx.Where("category_name IN ?", names).Find(&existing).Error; err != nil {
			return fmt.Errorf("查询类别失败: %w", err)
		}
		if len(existing) > 0 {
			return fmt.Errorf("%w: %s", ErrDuplicateCategory, existing[0].Name)
		}
		if err := tx.Create(&cats).Error; err != nil {
			return fmt.Errorf("创建类别失败: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cats, nil
}

// GetAllCategories 获取全部类别，不分页
func GetAllCategories() ([]models.Category, error) {
	cats := make([]models.Category, 0)
	if err := database.GetDB().Find(&cats).Error; err != nil {
		return nil, fmt.Errorf("查询类别失败: %w", err)
	}
	return cats, nil
}

// UpdateCategory 重命名类别
func UpdateCategory(categoryID uint, newName string) (*models.Category, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return nil, errors.New("类别名称不能为空")
	}
	if utf8.RuneCountInString(newName) > CategoryNameMaxLen {
		return nil, fmt.Errorf("类别名称过长（最多 %d 个字符）", CategoryNameMaxLen)
	}

	var cat models.Category
	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&cat, categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}
			return fmt.Errorf("查询类别失败: %w", err)
		}

		var count int64
		if err := tx.Model(&models.Category{}).
			Where("category_name = ? AND category_id != ?", newName, cat.ID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("查询类别失败: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("%w: %s", ErrDuplicateCategory, newName)
		}

		if err := tx.Model(&cat).Update("category_name", newName).Error; err != nil {
			return fmt.Errorf("更新类别失败: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// DeleteCategory 删除类别，仍被消费记录引用时拒绝
func DeleteCategory(categoryID uint) error {
	return database.GetDB().Transaction(func(tx *gorm.DB) error {
		var cat models.Category
		if err := tx.First(&cat, categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}
			return fmt.Errorf("查询类别失败: %w", err)
		}

		var count int64
		if err := tx.Model(&models.Expense{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
			return fmt.Errorf("查询消费记录失败: %w", err)
		}
		if count > 0 {
			return ErrCategoryInUse
		}

		if err := tx.Delete(&cat).Error; err != nil {
			return fmt.Errorf("删除类别失败: %w", err)
		}
		return nil
	})
}
