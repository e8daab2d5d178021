package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"

	"tracker/models"
	"tracker/store"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct{}

// NewExportHandler 创建导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// 导出共用的查询：按 user_id 和可选日期范围取记录，并取类别名称映射
func (h *ExportHandler) queryExpenses(c *gin.Context) ([]models.Expense, map[uint]string, bool) {
	userID, err := parseUintQuery(c, "user_id")
	if err != nil || userID == 0 {
		BadRequest(c, "请提供有效的 user_id")
		return nil, nil, false
	}

	filter := store.ExpenseFilter{}
	if s := c.Query("start_date"); s != "" {
		d, err := models.ParseDate(s)
		if err != nil {
			BadRequest(c, "start_date "+err.Error())
			return nil, nil, false
		}
		filter.StartDate = &d
	}
	if s := c.Query("end_date"); s != "" {
		d, err := models.ParseDate(s)
		if err != nil {
			BadRequest(c, "end_date "+err.Error())
			return nil, nil, false
		}
		filter.EndDate = &d
	}

	expenses, err := store.ListExpenses(userID, filter)
	if err != nil {
		BadRequest(c, err.Error())
		return nil, nil, false
	}

	cats, err := store.GetAllCategories()
	if err != nil {
		BadRequest(c, err.Error())
		return nil, nil, false
	}
	catNames := make(map[uint]string, len(cats))
	for _, cat := range cats {
		catNames[cat.ID] = cat.Name
	}
	return expenses, catNames, true
}

// ExportCSV 导出消费记录为 CSV
// @Summary 导出消费记录为 CSV
// @Description 导出指定用户的消费记录为 CSV 文件，可选日期范围筛选
// @Tags 导出
// @Produce text/csv
// @Param user_id query int true "用户ID"
// @Param start_date query string false "开始日期 (2024-01-01)"
// @Param end_date query string false "结束日期 (2024-12-31)"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} Response "参数错误"
// @Router /export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	expenses, catNames, ok := h.queryExpenses(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	headers := []string{"ID", "金额", "类别", "描述", "消费日期"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	for _, expense := range expenses {
		row := []string{
			fmt.Sprintf("%d", expense.ID),
			fmt.Sprintf("%.2f", expense.Amount),
			catNames[expense.CategoryID],
			expense.Description,
			expense.ExpenseDate.String(),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	c.Header("Content-Disposition", `attachment; filename=expenses.csv`)
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出消费记录为 Excel
// @Summary 导出消费记录为 Excel
// @Description 导出指定用户的消费记录为 xlsx 文件，可选日期范围筛选
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param user_id query int true "用户ID"
// @Param start_date query string false "开始日期 (2024-01-01)"
// @Param end_date query string false "结束日期 (2024-12-31)"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} Response "参数错误"
// @Router /export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	expenses, catNames, ok := h.queryExpenses(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "消费记录"
	f.SetSheetName("Sheet1", sheetName)

	// 表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"ID", "金额", "类别", "描述", "消费日期"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}
	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 15)
	f.SetColWidth(sheetName, "D", "D", 30)
	f.SetColWidth(sheetName, "E", "E", 14)

	for i, expense := range expenses {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), expense.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), expense.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), catNames[expense.CategoryID])
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), expense.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), expense.ExpenseDate.String())
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}

	c.Header("Content-Disposition", `attachment; filename=expenses.xlsx`)
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
