package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"` // SĐT của học sinh
}

func (ctl *Controller) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vui lòng nhập đầy đủ thông tin!"})
		return
	}

	user, err := ctl.feedback.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi hệ thống, vui lòng thử lại sau"})
		return
	}
	if user == nil {
		// Không phân biệt sai email hay sai SĐT
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Email hoặc số điện thoại không đúng!"})
		return
	}

	token, err := ctl.jwt.GenerateToken(user.Email, string(user.Role))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tạo token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Đăng nhập thành công",
		"token":   token,
		"user": gin.H{
			"email":   user.Email,
			"role":    user.Role,
			"profile": user.Profile,
		},
	})
}

// Me trả về thông tin của user đang đăng nhập
func (ctl *Controller) Me(c *gin.Context) {
	email := c.GetString("email")

	user, err := ctl.feedback.GetUserProfile(c.Request.Context(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi hệ thống, vui lòng thử lại sau"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy người dùng"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":   user.Email,
		"role":    user.Role,
		"profile": user.Profile,
	})
}
