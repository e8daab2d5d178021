package store

import (
	"errors"
	"fmt"
	"time"

	"tracker/database"

	"gorm.io/gorm"
)

// CategoryWiseRow 按类别+月份汇总的一行
type CategoryWiseRow struct {
	CategoryID   uint    `json:"category_id"`
	CategoryName string  `json:"category_name"`
	MonthNumber  int     `json:"month_number"`
	Month        string  `json:"month"`
	TotalAmount  float64 `json:"total_amount"`
}

// MonthWiseRow 按月份汇总的一行
type MonthWiseRow struct {
	MonthNumber int     `json:"month_number"`
	Month       string  `json:"month"`
	TotalAmount float64 `json:"total_amount"`
}

// YearWiseRow 按年份汇总的一行
type YearWiseRow struct {
	Year        int     `json:"year"`
	TotalAmount float64 `json:"total_amount"`
}

// 日期部分提取没有跨方言的标准写法，按驱动选择表达式
func monthExpr(db *gorm.DB) string {
	if db.Dialector.Name() == "sqlite" {
		return "CAST(strftime('%m', expense.expense_date) AS INTEGER)"
	}
	return "MONTH(expense.expense_date)"
}

func yearExpr(db *gorm.DB) string {
	if db.Dialector.Name() == "sqlite" {
		return "CAST(strftime('%Y', expense.expense_date) AS INTEGER)"
	}
	return "YEAR(expense.expense_date)"
}

func monthName(n int) string {
	if n < 1 || n > 12 {
		return ""
	}
	return time.Month(n).String()
}

// userExists 报表查询的前置检查：用户不存在返回空结果而不是错误
func userExists(userID uint) (bool, error) {
	_, err := GetUser(userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CategoryWiseReport 按（类别, 月份）分组汇总指定用户的消费金额，月份升序
func CategoryWiseReport(userID uint) ([]CategoryWiseRow, error) {
	rows := make([]CategoryWiseRow, 0)
	ok, err := userExists(userID)
	if err != nil || !ok {
		return rows, err
	}

	db := database.GetDB()
	err = db.Table("expense").
		Select(fmt.Sprintf(
			"category.category_id AS category_id, category.category_name AS category_name, %s AS month_number, SUM(expense.amount) AS total_amount",
			monthExpr(db))).
		Joins("JOIN category ON category.category_id = expense.category_id").
		Where("expense.user_id = ?", userID).
		Group("category.category_id, category.category_name, month_number").
		Order("month_number ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("查询类别报表失败: %w", err)
	}
	for i := range rows {
		rows[i].Month = monthName(rows[i].MonthNumber)
	}
	return rows, nil
}

// MonthWiseReport 按月份分组汇总指定用户的消费金额，月份升序
func MonthWiseReport(userID uint) ([]MonthWiseRow, error) {
	rows := make([]MonthWiseRow, 0)
	ok, err := userExists(userID)
	if err != nil || !ok {
		return rows, err
	}

	db := database.GetDB()
	err = db.Table("expense").
		Select(fmt.Sprintf("%s AS month_number, SUM(expense.amount) AS total_amount", monthExpr(db))).
		Where("expense.user_id = ?", userID).
		Group("month_number").
		Order("month_number ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("查询月度报表失败: %w", err)
	}
	for i := range rows {
		rows[i].Month = monthName(rows[i].MonthNumber)
	}
	return rows, nil
}

// YearWiseReport 按年份分组汇总指定用户的消费金额，年份升序
func YearWiseReport(userID uint) ([]YearWiseRow, error) {
	rows := make([]YearWiseRow, 0)
	ok, err := userExists(userID)
	if err != nil || !ok {
		return rows, err
	}

	db := database.GetDB()
	err = db.Table("expense").
		Select(fmt.Sprintf("%s AS year, SUM(expense.amount) AS total_amount", yearExpr(db))).
		Where("expense.user_id = ?", userID).
		Group("year").
		Order("year ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("查询年度报表失败: %w", err)
	}
	return rows, nil
}
