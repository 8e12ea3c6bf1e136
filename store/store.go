package store

import (
	"context"
	"errors"

	"github.com/vietthanh-tce/feedback-backend/models"
)

// ErrUserNotFound trả về khi document không tồn tại trong collection users.
var ErrUserNotFound = errors.New("user không tồn tại")

// UserStore là lớp trừu tượng trên document store: get / set (ghi đè toàn bộ) /
// update từng field. Backend thật là Firestore, test dùng MemoryUserStore.
type UserStore interface {
	// Get trả về ErrUserNotFound nếu không có document tại id
	Get(ctx context.Context, id string) (*models.User, error)

	// Set ghi đè toàn bộ document tại id, kể cả khi đã tồn tại
	Set(ctx context.Context, id string, user *models.User) error

	// UpdateFields merge các field theo dotted path ("profile.ho_ten", ...)
	// mà không đụng tới phần còn lại của document
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error

	// AppendFeedback ghi đè mảng feedbacks = current + fb. Đọc-rồi-ghi nên
	// không an toàn khi hai admin import cùng lúc; hệ thống chấp nhận
	// last-write-wins vì chỉ có một admin chạy import tuần tự.
	AppendFeedback(ctx context.Context, id string, current []models.Feedback, fb models.Feedback) error

	// List trả về toàn bộ user (phục vụ thống kê admin)
	List(ctx context.Context) ([]*models.User, error)

	Close() error
}
