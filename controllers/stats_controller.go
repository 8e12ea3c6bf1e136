package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vietthanh-tce/feedback-backend/models"
	"github.com/vietthanh-tce/feedback-backend/services"
)

type DashboardStats struct {
	TotalStudents  int `json:"total_students"`  // Tổng số học sinh
	TotalFeedbacks int `json:"total_feedbacks"` // Số bài đã chấm
	ActiveToday    int `json:"active_today"`    // Bài chấm trong ngày hôm nay
}

// GetStats tính số liệu dashboard trực tiếp từ store
func (ctl *Controller) GetStats(c *gin.Context) {
	users, err := ctl.store.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi hệ thống, vui lòng thử lại sau"})
		return
	}

	var stats DashboardStats
	today := time.Now()

	for _, user := range users {
		if user.Role != models.RoleUser {
			continue
		}
		stats.TotalStudents++
		stats.TotalFeedbacks += len(user.Feedbacks)

		for _, fb := range user.Feedbacks {
			t := services.ParseThoiGian(fb.ThoiGian)
			if t.Year() == today.Year() && t.YearDay() == today.YearDay() {
				stats.ActiveToday++
			}
		}
	}

	c.JSON(http.StatusOK, stats)
}
