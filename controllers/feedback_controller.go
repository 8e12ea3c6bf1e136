package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetMyFeedbacks trả về feedback của học sinh đang đăng nhập, mới nhất trước
func (ctl *Controller) GetMyFeedbacks(c *gin.Context) {
	email := c.GetString("email")

	feedbacks, err := ctl.feedback.GetUserFeedbacks(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi hệ thống, vui lòng thử lại sau"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":     len(feedbacks),
		"feedbacks": feedbacks,
	})
}
