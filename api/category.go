package api

import (
	"net/http"

	"tracker/store"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 消费类别处理器
type CategoryHandler struct{}

// NewCategoryHandler 创建消费类别处理器
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// CreateCategoriesRequest 批量创建类别请求
// category_names 为逗号分隔的名称串，如 "餐饮,交通,娱乐"
type CreateCategoriesRequest struct {
	CategoryNames string `json:"category_names" binding:"required" example:"餐饮,交通,娱乐"`
}

// UpdateCategoryRequest 重命名类别请求
type UpdateCategoryRequest struct {
	CategoryName string `json:"category_name" binding:"required,min=1,max=50" example:"餐饮"`
}

// Create 批量创建类别
// @Summary 批量创建消费类别
// @Description 从逗号分隔的名称串批量创建类别，整批为一个事务，任一名称重复则全部失败
// @Tags 消费类别
// @Accept json
// @Produce json
// @Param request body CreateCategoriesRequest true "类别名称串"
// @Success 200 {array} models.Category "创建成功，返回新建的类别列表"
// @Failure 400 {object} Response "参数错误或类别名称已存在"
// @Router /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	cats, err := store.AddCategories(req.CategoryNames)
	if err != nil {
		StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

// List 获取类别列表
// @Summary 获取消费类别列表
// @Description 获取所有消费类别，不分页
// @Tags 消费类别
// @Produce json
// @Success 200 {array} models.Category "获取成功"
// @Failure 400 {object} Response "查询失败"
// @Router /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := store.GetAllCategories()
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, cats)
}

// Update 重命名类别
// @Summary 重命名消费类别
// @Description 修改类别名称，新名称必须唯一
// @Tags 消费类别
// @Accept json
// @Produce json
// @Param category_id path int true "类别ID"
// @Param request body UpdateCategoryRequest true "新的类别名称"
// @Success 200 {object} models.Category "更新成功"
// @Failure 400 {object} Response "参数错误或类别名称已存在"
// @Failure 404 {object} Response "类别不存在"
// @Router /categories/{category_id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	categoryID, ok := ParseIDParam(c, "category_id")
	if !ok {
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	cat, err := store.UpdateCategory(categoryID, req.CategoryName)
	if err != nil {
		StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// Delete 删除类别
// @Summary 删除消费类别
// @Description 删除类别，仍被消费记录引用的类别无法删除
// @Tags 消费类别
// @Produce json
// @Param category_id path int true "类别ID"
// @Success 200 {object} Confirmation "删除成功"
// @Failure 400 {object} Response "类别仍被引用"
// @Failure 404 {object} Response "类别不存在"
// @Router /categories/{category_id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	categoryID, ok := ParseIDParam(c, "category_id")
	if !ok {
		return
	}

	if err := store.DeleteCategory(categoryID); err != nil {
		StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, Confirmation{Message: "类别已删除"})
}
