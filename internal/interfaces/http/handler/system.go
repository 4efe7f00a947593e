package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/opalessence/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SystemHandler serves liveness and utility endpoints
type SystemHandler struct {
	BaseHandler
	db *gorm.DB
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(db *gorm.DB, logger *zap.Logger) *SystemHandler {
	return &SystemHandler{BaseHandler: NewBaseHandler(logger), db: db}
}

// Ping answers a liveness probe
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, gin.H{"message": "pong"})
}

// Health reports service and database health
func (h *SystemHandler) Health(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"status": "ok"})
}

// CSRFToken issues a token for mutating auth requests
func (h *SystemHandler) CSRFToken(c *gin.Context) {
	h.Success(c, gin.H{"csrfToken": middleware.NewCSRFToken()})
}
