package main

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/vietthanh-tce/feedback-backend/config"
	"github.com/vietthanh-tce/feedback-backend/controllers"
	"github.com/vietthanh-tce/feedback-backend/middleware"
	"github.com/vietthanh-tce/feedback-backend/routes"
	"github.com/vietthanh-tce/feedback-backend/services"
	"github.com/vietthanh-tce/feedback-backend/store"
	"github.com/vietthanh-tce/feedback-backend/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		logrus.Info("Không tìm thấy file .env")
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.ParseConfig()
	if err != nil {
		logrus.WithError(err).Fatal("không đọc được cấu hình")
	}

	creds, err := cfg.FirebaseCredentials()
	if err != nil {
		// Thiếu credential là lỗi cấu hình fatal, không retry
		logrus.WithError(err).Fatal("lỗi cấu hình FIREBASE_CONFIG")
	}

	ctx := context.Background()

	userStore, err := store.NewFirestoreUserStore(ctx, creds)
	if err != nil {
		logrus.WithError(err).Fatal("không khởi tạo được Firestore")
	}
	defer userStore.Close()

	sheetsClient, err := services.NewSheetsClient(ctx, creds)
	if err != nil {
		logrus.WithError(err).Fatal("không khởi tạo được Google Sheets API")
	}

	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret, cfg.JWTExpirationHours)
	ctl := controllers.New(cfg, userStore, sheetsClient, jwtUtil)

	r := gin.Default()

	// Bật CORS cho frontend
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))
	r.Use(middleware.RequestLogger())

	r = routes.SetupRouter(r, ctl, jwtUtil, userStore)

	logrus.WithField("port", cfg.Port).Info("Server running")
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server dừng vì lỗi")
	}
}
