package api

import (
	"net/http"

	"tracker/store"

	"github.com/gin-gonic/gin"
)

// ReportHandler 报表处理器
// 分组求和下推给数据库执行，用户不存在时返回空数组而不是错误
type ReportHandler struct{}

// NewReportHandler 创建报表处理器
func NewReportHandler() *ReportHandler {
	return &ReportHandler{}
}

// CategoryWise 按类别+月份汇总
// @Summary 类别维度报表
// @Description 按（类别, 月份）分组汇总指定用户的消费金额，月份升序。用户不存在时返回空数组
// @Tags 报表
// @Produce json
// @Param user_id path int true "用户ID"
// @Success 200 {array} store.CategoryWiseRow "汇总结果"
// @Failure 400 {object} Response "无效的ID或查询失败"
// @Router /reports/category-wise/{user_id} [get]
func (h *ReportHandler) CategoryWise(c *gin.Context) {
	userID, ok := ParseIDParam(c, "user_id")
	if !ok {
		return
	}

	rows, err := store.CategoryWiseReport(userID)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, rows)
}

// MonthWise 按月份汇总
// @Summary 月度报表
// @Description 按月份分组汇总指定用户的消费金额，月份升序。用户不存在时返回空数组
// @Tags 报表
// @Produce json
// @Param user_id path int true "用户ID"
// @Success 200 {array} store.MonthWiseRow "汇总结果"
// @Failure 400 {object} Response "无效的ID或查询失败"
// @Router /reports/month-wise/{user_id} [get]
func (h *ReportHandler) MonthWise(c *gin.Context) {
	userID, ok := ParseIDParam(c, "user_id")
	if !ok {
		return
	}

	rows, err := store.MonthWiseReport(userID)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, rows)
}

// YearWise 按年份汇总
// @Summary 年度报表
// @Description 按年份分组汇总指定用户的消费金额，年份升序。用户不存在时返回空数组
// @Tags 报表
// @Produce json
// @Param user_id path int true "用户ID"
// @Success 200 {array} store.YearWiseRow "汇总结果"
// @Failure 400 {object} Response "无效的ID或查询失败"
// @Router /reports/year-wise/{user_id} [get]
func (h *ReportHandler) YearWise(c *gin.Context) {
	userID, ok := ParseIDParam(c, "user_id")
	if !ok {
		return
	}

	rows, err := store.YearWiseReport(userID)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, rows)
}
