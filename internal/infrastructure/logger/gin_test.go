package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func requestLogEntry(t *testing.T, recorded *observer.ObservedLogs) *observer.LoggedEntry {
	t.Helper()
	for _, entry := range recorded.All() {
		if entry.Message == "HTTP Request" {
			e := entry
			return &e
		}
	}
	return nil
}

func serveWithLogger(level zapcore.Level, register func(*gin.Engine), req *http.Request) (*httptest.ResponseRecorder, *observer.ObservedLogs) {
	gin.SetMode(gin.TestMode)
	core, recorded := observer.New(level)

	engine := gin.New()
	engine.Use(GinMiddleware(zap.New(core)))
	register(engine)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w, recorded
}

func TestGinMiddleware_LogsRequest(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/events", nil)
	req.Header.Set("User-Agent", "Test-Agent/1.0")

	w, recorded := serveWithLogger(zapcore.InfoLevel, func(e *gin.Engine) {
		e.GET("/api/v1/events", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		})
	}, req)

	assert.Equal(t, http.StatusOK, w.Code)

	entry := requestLogEntry(t, recorded)
	require.NotNil(t, entry)
	assert.Equal(t, zapcore.InfoLevel, entry.Level)

	fields := make(map[string]zapcore.Field)
	for _, f := range entry.Context {
		fields[f.Key] = f
	}
	for _, key := range []string{"status", "latency", "client_ip", "user_agent", "method", "path"} {
		assert.Contains(t, fields, key)
	}
}

func TestGinMiddleware_PropagatesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, recorded := observer.New(zapcore.InfoLevel)

	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		c.Set("request_id", "req-abc-123")
		c.Next()
	})
	engine.Use(GinMiddleware(zap.New(core)))
	engine.GET("/api/v1/teams", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/teams", nil)
	engine.ServeHTTP(w, req)

	entry := requestLogEntry(t, recorded)
	require.NotNil(t, entry)

	found := false
	for _, f := range entry.Context {
		if f.Key == "request_id" {
			found = true
			assert.Equal(t, "req-abc-123", f.String)
		}
	}
	assert.True(t, found, "request_id should be in log fields")
}

func TestGinMiddleware_LevelByStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		expected zapcore.Level
	}{
		{"client error logs warn", http.StatusUnprocessableEntity, zapcore.WarnLevel},
		{"server error logs error", http.StatusInternalServerError, zapcore.ErrorLevel},
		{"success logs info", http.StatusCreated, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodPost, "/api/v1/orders", nil)
			_, recorded := serveWithLogger(zapcore.InfoLevel, func(e *gin.Engine) {
				e.POST("/api/v1/orders", func(c *gin.Context) {
					c.JSON(tt.status, gin.H{})
				})
			}, req)

			entry := requestLogEntry(t, recorded)
			require.NotNil(t, entry)
			assert.Equal(t, tt.expected, entry.Level)
		})
	}
}

func TestGinMiddleware_IncludesQuery(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/food?active=true", nil)
	_, recorded := serveWithLogger(zapcore.InfoLevel, func(e *gin.Engine) {
		e.GET("/api/v1/food", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		})
	}, req)

	entry := requestLogEntry(t, recorded)
	require.NotNil(t, entry)

	found := false
	for _, f := range entry.Context {
		if f.Key == "query" {
			found = true
			assert.Contains(t, f.String, "active=true")
		}
	}
	assert.True(t, found, "query should be in log fields")
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, recorded := observer.New(zapcore.ErrorLevel)

	engine := gin.New()
	engine.Use(Recovery(zap.New(core)))
	engine.GET("/boom", func(c *gin.Context) {
		panic("stock ledger corrupted")
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/boom", nil)

	assert.NotPanics(t, func() {
		engine.ServeHTTP(w, req)
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	logs := recorded.All()
	require.NotEmpty(t, logs)
	assert.Equal(t, "Panic recovered", logs[0].Message)
}

func TestGetGinLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, _ := observer.New(zapcore.InfoLevel)

	var fromHandler *zap.Logger
	engine := gin.New()
	engine.Use(GinMiddleware(zap.New(core)))
	engine.GET("/api/v1/quicklinks", func(c *gin.Context) {
		fromHandler = GetGinLogger(c)
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/quicklinks", nil)
	engine.ServeHTTP(w, req)

	assert.NotNil(t, fromHandler)
}

func TestGetGinLogger_WithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var fromHandler *zap.Logger
	engine := gin.New()
	engine.GET("/bare", func(c *gin.Context) {
		fromHandler = GetGinLogger(c)
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/bare", nil)
	engine.ServeHTTP(w, req)

	require.NotNil(t, fromHandler)
	assert.NotPanics(t, func() {
		fromHandler.Info("noop")
	})
}
