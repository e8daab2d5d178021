package store

import "errors"

// 查找未命中
var (
	ErrUserNotFound     = errors.New("用户不存在")
	ErrCategoryNotFound = errors.New("类别不存在")
	ErrExpenseNotFound  = errors.New("消费记录不存在")
)

// 唯一性约束
var (
	ErrDuplicateEmail    = errors.New("邮箱已被使用")
	ErrDuplicateCategory = errors.New("类别名称已存在")
)

// 删除限制：存在引用的消费记录时拒绝删除，而不是级联
var (
	ErrUserHasExpenses = errors.New("该用户仍有消费记录，无法删除")
	ErrCategoryInUse   = errors.New("该类别仍被消费记录引用，无法删除")
)
