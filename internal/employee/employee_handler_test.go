package employee_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-shift-admin/internal/employee"
	employeeerrors "go-shift-admin/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	createFn     func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	updateFn     func(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	deleteFn     func(ctx context.Context, id int64) error
	getByIDFn    func(ctx context.Context, id int64, asOf *time.Time) (employee.EmployeeResponse, error)
	listFn       func(ctx context.Context, filter employee.ListFilter, page, pageSize int) ([]employee.EmployeeResponse, int64, error)
	getOptionsFn func(ctx context.Context) ([]employee.EmployeeOption, error)
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id int64, asOf *time.Time) (employee.EmployeeResponse, error) {
	return f.getByIDFn(ctx, id, asOf)
}
func (f *fakeEmployeeService) List(ctx context.Context, filter employee.ListFilter, page, pageSize int) ([]employee.EmployeeResponse, int64, error) {
	return f.listFn(ctx, filter, page, pageSize)
}
func (f *fakeEmployeeService) GetOptions(ctx context.Context) ([]employee.EmployeeOption, error) {
	return f.getOptionsFn(ctx)
}
func (f *fakeEmployeeService) InvalidateOptionsCache(ctx context.Context) {}

func TestHandler_CreateAndList(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeEmployeeService{
		createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
			assert.Equal(t, "山田 太郎", req.Name)
			return employee.EmployeeResponse{ID: 7, Name: req.Name}, nil
		},
		listFn: func(ctx context.Context, filter employee.ListFilter, page, pageSize int) ([]employee.EmployeeResponse, int64, error) {
			assert.True(t, filter.ActiveOnly)
			assert.Equal(t, "山田", filter.Search)
			return []employee.EmployeeResponse{{ID: 7}}, 1, nil
		},
	}
	h := employee.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/employees",
		strings.NewReader(`{"name":"山田 太郎","group_id":3}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/employees?search=山田&active_only=true", nil)
	h.List(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "\"meta\"")
}

func TestHandler_GetByID_AsOf(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeEmployeeService{
		getByIDFn: func(ctx context.Context, id int64, asOf *time.Time) (employee.EmployeeResponse, error) {
			assert.Equal(t, int64(7), id)
			assert.NotNil(t, asOf)
			assert.Equal(t, "2025-06-01", asOf.Format("2006-01-02"))
			return employee.EmployeeResponse{ID: 7, Name: "山田 太郎"}, nil
		},
	}
	h := employee.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	c.Request = httptest.NewRequest(http.MethodGet, "/employees/7?as_of=2025-06-01", nil)
	h.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Delete_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeEmployeeService{
		deleteFn: func(ctx context.Context, id int64) error {
			return employeeerrors.ErrEmployeeNotFound
		},
	}
	h := employee.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "99"}}
	c.Request = httptest.NewRequest(http.MethodDelete, "/employees/99", nil)
	h.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}
