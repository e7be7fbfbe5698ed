package handlers

import (
	"context"
	"net/http"
	"time"

	"organisation-api/internal/database"
	"organisation-api/internal/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

const (
	componentUp   = "up"
	componentDown = "down"

	defaultProbeTimeout = 2 * time.Second
)

// HealthHandler exposes liveness and dependency probes
type HealthHandler struct {
	db      *gorm.DB
	timeout time.Duration
	started time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db, timeout: defaultProbeTimeout, started: time.Now()}
}

// HealthResponse summarises the process and its dependencies
type HealthResponse struct {
	Status     string            `json:"status" example:"healthy"`
	Version    string            `json:"version" example:"1.0.0"`
	Uptime     string            `json:"uptime" example:"1h2m3s"`
	Timestamp  time.Time         `json:"timestamp"`
	Components map[string]string `json:"components"`
}

// probe checks every dependency once and reports whether all are up
func (h *HealthHandler) probe(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	components := map[string]string{"database": componentUp}
	if err := database.Ping(ctx, h.db); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Database probe failed")
		components["database"] = componentDown
		return components, false
	}
	return components, true
}

// Health reports overall status with per-component detail
// @Summary Health check
// @Description Overall status, version, uptime and the state of each dependency
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "All components up"
// @Failure 503 {object} HealthResponse "At least one component down"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	components, ok := h.probe(c)

	response := HealthResponse{
		Status:     "healthy",
		Version:    Version,
		Uptime:     time.Since(h.started).Truncate(time.Second).String(),
		Timestamp:  time.Now().UTC(),
		Components: components,
	}
	code := http.StatusOK
	if !ok {
		response.Status = "unhealthy"
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, response)
}

// Ready reports whether the service can take traffic
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Ready"
// @Failure 503 {object} map[string]interface{} "Not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	components, ok := h.probe(c)

	code := http.StatusOK
	if !ok {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"ready": ok, "components": components})
}

// Live answers as long as the process serves HTTP
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"alive": true})
}
