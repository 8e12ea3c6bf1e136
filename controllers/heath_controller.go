package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vietthanh-tce/feedback-backend/store"
)

func (ctl *Controller) HealthCheck(c *gin.Context) {
	response := gin.H{
		"status":    "ok",
		"message":   "Service is healthy",
		"timestamp": time.Now().Unix(),
		"store":     "ok",
	}

	// Get một id chắc chắn không tồn tại: ErrUserNotFound nghĩa là store
	// vẫn trả lời được
	_, err := ctl.store.Get(c.Request.Context(), "__healthcheck__")
	if err != nil && !errors.Is(err, store.ErrUserNotFound) {
		response["store"] = "error: cannot reach store"
		response["status"] = "degraded"
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	c.JSON(http.StatusOK, response)
}
