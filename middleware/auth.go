package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vietthanh-tce/feedback-backend/store"
	"github.com/vietthanh-tce/feedback-backend/utils"
)

// AuthMiddleware xác thực Bearer token và nạp thông tin phiên vào context.
// Store được truyền vào tường minh, không dùng client global.
func AuthMiddleware(jwtUtil *utils.JWTUtil, st store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Thiếu Authorization header"})
			c.Abort()
			return
		}

		// Tách token khỏi chuỗi "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header không hợp lệ"})
			c.Abort()
			return
		}

		claims, err := jwtUtil.VerifyToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token không hợp lệ hoặc hết hạn"})
			c.Abort()
			return
		}

		// Record có thể đã bị seed đè hoặc khoá sau khi token được cấp
		user, err := st.Get(c.Request.Context(), utils.UserIDFromEmail(claims.Email))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Không tìm thấy người dùng"})
			c.Abort()
			return
		}
		if !user.Active {
			c.JSON(http.StatusForbidden, gin.H{"error": "Tài khoản đã bị tạm khóa"})
			c.Abort()
			return
		}

		// Lưu thông tin vào context để controller dùng
		c.Set("email", user.Email)
		c.Set("role", string(user.Role))
		c.Next()
	}
}
