package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pageza/recipes/backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	log := logger.NewWithWriter(logger.Config{Level: logger.LevelInfo, Format: "json"}, &buf)

	router := gin.New()
	router.Use(RequestLogger(log))
	router.GET("/api/tags/:id", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "tag not found"})
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/tags/abc", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/tags/abc", entry["path"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status_code"])
}
