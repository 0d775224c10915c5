package rbac

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-shift-admin/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type mockService struct{}

func (m *mockService) LoadPolicy() error {
	return nil
}

func (m *mockService) Enforce(req domain.EnforceRequest) (bool, error) {
	if req.Resource == "shift" && req.Action == "read" {
		return true, nil
	}
	return false, nil
}

func TestHandler_Enforce(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(&mockService{}, &mockRepo{})

	router := gin.New()
	router.POST("/rbac/enforce", handler.Enforce)

	body := EnforceRequestBody{
		UserID:   "user-1",
		Resource: "shift",
		Action:   "read",
	}

	jsonBody, _ := json.Marshal(body)

	req, _ := http.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"allowed":true`)

	// Missing fields are rejected before the service is asked.
	req2, _ := http.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBufferString(`{"user_id":"user-1"}`))
	req2.Header.Set("Content-Type", "application/json")

	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req2)

	assert.Equal(t, http.StatusBadRequest, w2.Code)
}
