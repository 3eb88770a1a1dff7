package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/caronvincent/todo-burbanie/internal/adapter/http/middleware"
)

const (
	StatusOk   = "ok"
	StatusDown = "down"

	healthDBTimeout = 2 * time.Second
)

// DatabasePinger is the part of *sqlx.DB the health checks need.
type DatabasePinger interface {
	PingContext(ctx context.Context) error
	DriverName() string
}

type HealthBasic struct {
	AppName    string    `json:"app_name"`
	AppVersion string    `json:"app_version"`
	CheckedAt  time.Time `json:"checked_at"`
	Message    string    `json:"message"`
}

type DatabaseStatus struct {
	Status    string  `json:"status"`
	Driver    string  `json:"driver"`
	LatencyMs float64 `json:"latency_ms"`
	Error     string  `json:"error,omitempty"`
}

type HealthAdvanced struct {
	AppName    string         `json:"app_name"`
	AppVersion string         `json:"app_version"`
	CheckedAt  time.Time      `json:"checked_at"`
	Language   string         `json:"language"`
	Database   DatabaseStatus `json:"database"`
}

type HealthHandler struct {
	db      DatabasePinger
	appName string
	version string
}

// NewHealthHandler reads the reported version from APP_VERSION once.
func NewHealthHandler(db DatabasePinger, appName string) *HealthHandler {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		version = "dev"
	}
	return &HealthHandler{db: db, appName: appName, version: version}
}

// CheckHealth answers 503 while the database is unreachable.
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	database := h.pingDatabase(c.Request.Context())

	statusCode := http.StatusOK
	if database.Status != StatusOk {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, HealthBasic{
		AppName:    h.appName,
		AppVersion: h.version,
		CheckedAt:  time.Now().UTC(),
		Message:    database.Status,
	})
}

// CheckHealthReport always answers 200 and details the database ping.
func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:    h.appName,
		AppVersion: h.version,
		CheckedAt:  time.Now().UTC(),
		Language:   middleware.GetLang(c),
		Database:   h.pingDatabase(c.Request.Context()),
	})
}

func (h *HealthHandler) pingDatabase(ctx context.Context) DatabaseStatus {
	if h.db == nil {
		return DatabaseStatus{Status: StatusDown, Error: "no database configured"}
	}

	ctx, cancel := context.WithTimeout(ctx, healthDBTimeout)
	defer cancel()

	start := time.Now()
	err := h.db.PingContext(ctx)
	status := DatabaseStatus{
		Status:    StatusOk,
		Driver:    h.db.DriverName(),
		LatencyMs: float64(time.Since(start).Microseconds()) / 1000,
	}
	if err != nil {
		zap.L().Warn("database ping failed", zap.String("driver", status.Driver), zap.Error(err))
		status.Status = StatusDown
		status.Error = "ping failed"
	}
	return status
}
