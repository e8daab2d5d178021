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

func userRouter() *gin.Engine {
	r := gin.New()
	h := NewUserHandler()
	r.POST("/users", h.Create)
	r.GET("/users/:user_id", h.Get)
	r.PUT("/users/:user_id", h.Update)
	r.DELETE("/users/:user_id", h.Delete)
	return r
}

func userRows(id int, name, email string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"user_id", "name", "email", "created_at", "updated_at"}).
		AddRow(id, name, email, time.Now(), time.Now())
}

func TestUserHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count(.+) FROM `user`").
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO `user`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	body := `{"name":"Alice","email":"alice@example.com"}`
	req := httptest.NewRequest("POST", "/users", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	userRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(1), resp["user_id"])
	assert.Equal(t, "Alice", resp["name"])
	assert.Equal(t, "alice@example.com", resp["email"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserHandler_Create_DuplicateEmail(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT count(.+) FROM `user`").
		WithArgs("alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	body := `{"name":"Alice","email":"alice@example.com"}`
	req := httptest.NewRequest("POST", "/users", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	userRouter().ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "邮箱已被使用")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserHandler_Create_InvalidEmail(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	body := `{"name":"Alice","email":"not-an-email"}`
	req := httptest.NewRequest("POST", "/users", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	userRouter().ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestUserHandler_Get(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `user`").
		WithArgs(1).
		WillReturnRows(userRows(1, "Alice", "alice@example.com"))

	req := httptest.NewRequest("GET", "/users/1", nil)
	w := httptest.NewRecorder()
	userRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alice", resp["name"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `user`").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	req := httptest.NewRequest("GET", "/users/99", nil)
	w := httptest.NewRecorder()
	userRouter().ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "用户不存在")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserHandler_Get_InvalidID(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	req := httptest.NewRequest("GET", "/users/abc", nil)
	w := httptest.NewRecorder()
	userRouter().ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestUserHandler_Update(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `user`").
		WithArgs(1).
		WillReturnRows(userRows(1, "Alice", "alice@example.com"))
	mock.ExpectExec("UPDATE `user`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT .* FROM `user`").
		WithArgs(1).
		WillReturnRows(userRows(1, "Bob", "alice@example.com"))
	mock.ExpectCommit()

	body := `{"name":"Bob"}`
	req := httptest.NewRequest("PUT", "/users/1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	userRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Bob", resp["name"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserHandler_Delete_HasExpenses(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `user`").
		WithArgs(1).
		WillReturnRows(userRows(1, "Alice", "alice@example.com"))
	mock.ExpectQuery("SELECT count(.+) FROM `expense`").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectRollback()

	req := httptest.NewRequest("DELETE", "/users/1", nil)
	w := httptest.NewRecorder()
	userRouter().ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "仍有消费记录")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserHandler_Delete(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `user`").
		WithArgs(1).
		WillReturnRows(userRows(1, "Alice", "alice@example.com"))
	mock.ExpectQuery("SELECT count(.+) FROM `expense`").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("DELETE FROM `user`").
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest("DELETE", "/users/1", nil)
	w := httptest.NewRecorder()
	userRouter().ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "用户已删除")
	require.NoError(t, mock.ExpectationsWereMet())
}
