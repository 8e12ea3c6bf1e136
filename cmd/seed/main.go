package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/vietthanh-tce/feedback-backend/config"
	"github.com/vietthanh-tce/feedback-backend/services"
	"github.com/vietthanh-tce/feedback-backend/store"
)

// Danh sách lớp cố định: dòng đầu là tài khoản admin của giáo viên, còn lại là
// học sinh. SĐT để nguyên khoảng trắng như trong form, service tự strip.
var phones = []string{
	"0912345678", "0987 654 321", "0901234567", "0933 555 777", "0866112233",
	"0977888999", "0944 123 456", "0355667788",
}

var emails = []string{
	"giaovien.tce@gmail.com",
	"hocsinh01@gmail.com",
	"hocsinh02@gmail.com",
	"hocsinh03@gmail.com",
	"hocsinh04@gmail.com",
	"hocsinh05@gmail.com",
	"hocsinh06@gmail.com",
	"hocsinh07@gmail.com",
}

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("Không tìm thấy file .env")
	}

	cfg, err := config.ParseConfig()
	if err != nil {
		logrus.WithError(err).Fatal("không đọc được cấu hình")
	}

	creds, err := cfg.FirebaseCredentials()
	if err != nil {
		logrus.WithError(err).Fatal("lỗi cấu hình FIREBASE_CONFIG")
	}

	ctx := context.Background()

	userStore, err := store.NewFirestoreUserStore(ctx, creds)
	if err != nil {
		logrus.WithError(err).Fatal("không khởi tạo được Firestore")
	}
	defer userStore.Close()

	seeds := services.BuildSeeds(emails, phones)

	svc := services.NewAccountService(userStore)
	summary := svc.CreateAccounts(ctx, seeds)

	fmt.Printf("\n📊 Kết quả: %d thành công, %d thất bại\n", summary.Created, summary.Failed)
	if summary.Created == 0 {
		os.Exit(1)
	}
}
