package api

import (
	"errors"
	"net/http"
	"strconv"

	"tracker/store"

	"github.com/gin-gonic/gin"
)

// Response 错误响应结构
// 成功响应直接返回实体或数组（仪表盘客户端按字段名消费）
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Confirmation 删除类操作的确认响应
type Confirmation struct {
	Message string `json:"message"`
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500 错误响应
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// ParseIDParam 解析路径中的正整数 ID，非法时返回 false 并已写入 400 响应
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id64 == 0 {
		BadRequest(c, "无效的ID")
		return 0, false
	}
	return uint(id64), true
}

// StoreError 把存储层错误映射为响应：
// 查找未命中和引用缺失为 404，其余（参数、唯一性、删除限制、事务失败）为 400
func StoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrCategoryNotFound),
		errors.Is(err, store.ErrExpenseNotFound):
		NotFound(c, err.Error())
	default:
		BadRequest(c, err.Error())
	}
}
