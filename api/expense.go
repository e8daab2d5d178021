package api

import (
	"net/http"
	"strconv"

	"tracker/models"
	"tracker/store"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler 消费记录处理器
type ExpenseHandler struct{}

// NewExpenseHandler 创建消费记录处理器
func NewExpenseHandler() *ExpenseHandler {
	return &ExpenseHandler{}
}

// CreateExpenseRequest 创建消费记录请求
type CreateExpenseRequest struct {
	UserID      uint     `json:"user_id" binding:"required" example:"1"`
	CategoryID  uint     `json:"category_id" binding:"required" example:"2"`
	Amount      *float64 `json:"amount" binding:"required" example:"99.99"`
	ExpenseDate string   `json:"expense_date" binding:"required" example:"2024-01-15"`
	Description string   `json:"description" binding:"omitempty,max=255" example:"午餐"`
}

// UpdateExpenseRequest 更新消费记录请求，未提供的字段保持不变
type UpdateExpenseRequest struct {
	CategoryID  *uint    `json:"category_id" example:"2"`
	Amount      *float64 `json:"amount" example:"99.99"`
	ExpenseDate *string  `json:"expense_date" example:"2024-01-15"`
	Description *string  `json:"description" binding:"omitempty,max=255" example:"午餐"`
}

// ExpenseListRequest 消费记录列表请求
type ExpenseListRequest struct {
	UserID     uint   `form:"user_id" binding:"required" example:"1"`
	CategoryID uint   `form:"category_id" example:"2"`
	StartDate  string `form:"start_date" example:"2024-01-01"`
	EndDate    string `form:"end_date" example:"2024-12-31"`
}

// Create 创建消费记录
// @Summary 创建消费记录
// @Description 创建一条消费记录，用户和类别必须已存在
// @Tags 消费记录
// @Accept json
// @Produce json
// @Param request body CreateExpenseRequest true "消费记录信息"
// @Success 200 {object} models.Expense "创建成功"
// @Failure 400 {object} Response "参数错误"
// @Failure 404 {object} Response "用户或类别不存在"
// @Router /expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	date, err := models.ParseDate(req.ExpenseDate)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	expense, err := store.AddExpense(req.UserID, req.CategoryID, *req.Amount, date, req.Description)
	if err != nil {
		StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

// List 获取消费记录列表
// @Summary 获取消费记录列表
// @Description 获取指定用户的消费记录，支持按类别和日期范围筛选，按日期倒序
// @Tags 消费记录
// @Produce json
// @Param user_id query int true "用户ID"
// @Param category_id query int false "类别筛选"
// @Param start_date query string false "开始日期 (2024-01-01)"
// @Param end_date query string false "结束日期 (2024-12-31)"
// @Success 200 {array} models.Expense "获取成功"
// @Failure 400 {object} Response "参数错误"
// @Router /expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	var req ExpenseListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	filter := store.ExpenseFilter{CategoryID: req.CategoryID}
	if req.StartDate != "" {
		d, err := models.ParseDate(req.StartDate)
		if err != nil {
			BadRequest(c, "start_date "+err.Error())
			return
		}
		filter.StartDate = &d
	}
	if req.EndDate != "" {
		d, err := models.ParseDate(req.EndDate)
		if err != nil {
			BadRequest(c, "end_date "+err.Error())
			return
		}
		filter.EndDate = &d
	}

	expenses, err := store.ListExpenses(req.UserID, filter)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// Get 获取单条消费记录
// @Summary 获取单条消费记录
// @Description 根据ID获取消费记录详情
// @Tags 消费记录
// @Produce json
// @Param expense_id path int true "消费记录ID"
// @Success 200 {object} models.Expense "获取成功"
// @Failure 400 {object} Response "无效的ID"
// @Failure 404 {object} Response "记录不存在"
// @Router /expenses/{expense_id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	expenseID, ok := ParseIDParam(c, "expense_id")
	if !ok {
		return
	}

	expense, err := store.GetExpense(expenseID)
	if err != nil {
		StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

// Update 更新消费记录
// @Summary 更新消费记录
// @Description 部分更新消费记录，未提供的字段保持不变
// @Tags 消费记录
// @Accept json
// @Produce json
// @Param expense_id path int true "消费记录ID"
// @Param request body UpdateExpenseRequest true "更新的字段"
// @Success 200 {object} models.Expense "更新成功"
// @Failure 400 {object} Response "参数错误"
// @Failure 404 {object} Response "记录或类别不存在"
// @Router /expenses/{expense_id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	expenseID, ok := ParseIDParam(c, "expense_id")
	if !ok {
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	upd := store.ExpenseUpdate{
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Description: req.Description,
	}
	if req.ExpenseDate != nil {
		d, err := models.ParseDate(*req.ExpenseDate)
		if err != nil {
			BadRequest(c, err.Error())
			return
		}
		upd.ExpenseDate = &d
	}

	expense, err := store.UpdateExpense(expenseID, upd)
	if err != nil {
		StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

// Delete 删除消费记录
// @Summary 删除消费记录
// @Description 删除指定的消费记录
// @Tags 消费记录
// @Produce json
// @Param expense_id path int true "消费记录ID"
// @Success 200 {object} Confirmation "删除成功"
// @Failure 400 {object} Response "无效的ID"
// @Failure 404 {object} Response "记录不存在"
// @Router /expenses/{expense_id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	expenseID, ok := ParseIDParam(c, "expense_id")
	if !ok {
		return
	}

	if err := store.DeleteExpense(expenseID); err != nil {
		StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, Confirmation{Message: "消费记录已删除"})
}

// parseUintQuery 解析可选的正整数查询参数
func parseUintQuery(c *gin.Context, name string) (uint, error) {
	s := c.Query(name)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}
