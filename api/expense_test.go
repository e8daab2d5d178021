package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expenseRouter() *gin.Engine {
	r := gin.New()
	h := NewExpenseHandler()
	r.POST("/expenses", h.Create)
	r.GET("/expenses", h.List)
	r.GET("/expenses/:expense_id", h.Get)
	r.PUT("/expenses/:expense_id", h.Update)
	r.DELETE("/expenses/:expense_id", h.Delete)
	return r
}

func expenseRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"expense_id", "user_id", "category_id", "amount", "expense_date", "description", "created_at", "updated_at"})
}

func TestExpenseHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	// 插入前先校验用户和类别
	mock.ExpectQuery("SELECT .* FROM `user`").
		WithArgs(1).
		WillReturnRows(userRows(1, "Alice", "alice@example.com"))
	mock.ExpectQuery("SELECT .* FROM `category`").
		WithArgs(2).
		WillReturnRows(categoryRows(2, "餐饮"))
	mock.ExpectExec("INSERT INTO `expense`").
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectCommit()

	body := `{"user_id":1,"category_id":2,"amount":99.99,"expense_date":"2024-01-15","description":"午餐"}`
	req := httptest.NewRequest("POST", "/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	expenseRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(10), resp["expense_id"])
	assert.Equal(t, 99.99, resp["amount"])
	assert.Equal(t, "2024-01-15", resp["expense_date"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Create_ZeroAmount(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 金额不限制正负，0.00 也是合法输入
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `user`").
		WithArgs(1).
		WillReturnRows(userRows(1, "Alice", "alice@example.com"))
	mock.ExpectQuery("SELECT .* FROM `category`").
		WithArgs(2).
		WillReturnRows(categoryRows(2, "餐饮"))
	mock.ExpectExec("INSERT INTO `expense`").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectCommit()

	body := `{"user_id":1,"category_id":2,"amount":0,"expense_date":"2024-01-15","description":"赠送"}`
	req := httptest.NewRequest("POST", "/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	expenseRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(0), resp["amount"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Create_UserNotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `user`").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))
	mock.ExpectRollback()

	body := `{"user_id":99,"category_id":2,"amount":10,"expense_date":"2024-01-15"}`
	req := httptest.NewRequest("POST", "/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	expenseRouter().ServeHTTP(w, req)

	// 引用校验失败：404 且没有 INSERT
	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "用户不存在")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Create_CategoryNotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `user`").
		WithArgs(1).
		WillReturnRows(userRows(1, "Alice", "alice@example.com"))
	mock.ExpectQuery("SELECT .* FROM `category`").
		WithArgs(99).
		WillReturnRows(categoryRows())
	mock.ExpectRollback()

	body := `{"user_id":1,"category_id":99,"amount":10,"expense_date":"2024-01-15"}`
	req := httptest.NewRequest("POST", "/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	expenseRouter().ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "类别不存在")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Create_InvalidDate(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	body := `{"user_id":1,"category_id":2,"amount":10,"expense_date":"15/01/2024"}`
	req := httptest.NewRequest("POST", "/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	expenseRouter().ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "日期格式错误")
}

func TestExpenseHandler_List(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	rows := expenseRows().
		AddRow(1, 1, 2, 30.00, time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local), "晚餐", time.Now(), time.Now()).
		AddRow(2, 1, 2, 12.50, time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local), "午餐", time.Now(), time.Now())
	mock.ExpectQuery("SELECT .* FROM `expense`").
		WithArgs(1).
		WillReturnRows(rows)

	req := httptest.NewRequest("GET", "/expenses?user_id=1", nil)
	w := httptest.NewRecorder()
	expenseRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "2024-02-01", resp[0]["expense_date"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_List_MissingUserID(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	req := httptest.NewRequest("GET", "/expenses", nil)
	w := httptest.NewRecorder()
	expenseRouter().ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestExpenseHandler_Update_AmountOnly(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `expense`").
		WithArgs(1).
		WillReturnRows(expenseRows().AddRow(1, 1, 2, 10.00, date, "午餐", time.Now(), time.Now()))
	mock.ExpectExec("UPDATE `expense`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT .* FROM `expense`").
		WithArgs(1).
		WillReturnRows(expenseRows().AddRow(1, 1, 2, 25.00, date, "午餐", time.Now(), time.Now()))
	mock.ExpectCommit()

	body := `{"amount":25.00}`
	req := httptest.NewRequest("PUT", "/expenses/1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	expenseRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// 金额更新，其余字段不变
	assert.Equal(t, 25.00, resp["amount"])
	assert.Equal(t, "午餐", resp["description"])
	assert.Equal(t, "2024-01-15", resp["expense_date"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Delete(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `expense`").
		WithArgs(1).
		WillReturnRows(expenseRows().AddRow(1, 1, 2, 10.00, time.Now(), "", time.Now(), time.Now()))
	mock.ExpectExec("DELETE FROM `expense`").
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest("DELETE", "/expenses/1", nil)
	w := httptest.NewRecorder()
	expenseRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "消费记录已删除")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseHandler_Get_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `expense`").
		WithArgs(99).
		WillReturnRows(expenseRows())

	req := httptest.NewRequest("GET", "/expenses/99", nil)
	w := httptest.NewRecorder()
	expenseRouter().ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
