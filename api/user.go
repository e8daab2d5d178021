package api

import (
	"net/http"

	"tracker/store"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户处理器
type UserHandler struct{}

// NewUserHandler 创建用户处理器
func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// CreateUserRequest 创建用户请求
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=100" example:"张三"`
	Email string `json:"email" binding:"required,email,max=100" example:"zhangsan@example.com"`
}

// UpdateUserRequest 更新用户请求，未提供的字段保持不变
type UpdateUserRequest struct {
	Name  string `json:"name" binding:"omitempty,min=1,max=100" example:"张三"`
	Email string `json:"email" binding:"omitempty,email,max=100" example:"zhangsan@example.com"`
}

// Create 创建用户
// @Summary 创建用户
// @Description 注册一个新用户，邮箱必须唯一
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "用户信息"
// @Success 200 {object} models.User "创建成功"
// @Failure 400 {object} Response "参数错误或邮箱已被使用"
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	user, err := store.AddUser(req.Name, req.Email)
	if err != nil {
		StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Get 获取用户
// @Summary 获取用户
// @Description 根据ID获取用户信息
// @Tags 用户
// @Produce json
// @Param user_id path int true "用户ID"
// @Success 200 {object} models.User "获取成功"
// @Failure 400 {object} Response "无效的ID"
// @Failure 404 {object} Response "用户不存在"
// @Router /users/{user_id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	userID, ok := ParseIDParam(c, "user_id")
	if !ok {
		return
	}

	user, err := store.GetUser(userID)
	if err != nil {
		StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update 更新用户
// @Summary 更新用户
// @Description 更新用户的姓名和邮箱，未提供的字段保持不变
// @Tags 用户
// @Accept json
// @Produce json
// @Param user_id path int true "用户ID"
// @Param request body UpdateUserRequest true "更新的用户信息"
// @Success 200 {object} models.User "更新成功"
// @Failure 400 {object} Response "参数错误或邮箱已被使用"
// @Failure 404 {object} Response "用户不存在"
// @Router /users/{user_id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	userID, ok := ParseIDParam(c, "user_id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	user, err := store.UpdateUser(userID, req.Name, req.Email)
	if err != nil {
		StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete 删除用户
// @Summary 删除用户
// @Description 删除用户，仍有消费记录的用户无法删除
// @Tags 用户
// @Produce json
// @Param user_id path int true "用户ID"
// @Success 200 {object} Confirmation "删除成功"
// @Failure 400 {object} Response "用户仍有消费记录"
// @Failure 404 {object} Response "用户不存在"
// @Router /users/{user_id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	userID, ok := ParseIDParam(c, "user_id")
	if !ok {
		return
	}

	if err := store.DeleteUser(userID); err != nil {
		StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, Confirmation{Message: "用户已删除"})
}
