//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-reservation/internal/handler/api"
	"hotel-reservation/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHealthWithoutPool(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", api.NewHealthHandler(nil).Check)

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/health", nil, "")

	var body map[string]string
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
	assert.Equal(t, "ok", body["status"])
}
