package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vietthanh-tce/feedback-backend/models"
	"github.com/vietthanh-tce/feedback-backend/store"
	"github.com/vietthanh-tce/feedback-backend/utils"
)

// Layout của cột thời gian trong sheet, vd "17/10/2025 22:39:05"
const thoiGianLayout = "02/01/2006 15:04:05"

// FeedbackService xác thực đăng nhập và đọc feedback của học sinh
type FeedbackService struct {
	store store.UserStore
}

func NewFeedbackService(st store.UserStore) *FeedbackService {
	return &FeedbackService{store: st}
}

// Authenticate so khớp email + SĐT với record trong store. Sai thông tin trả
// (nil, nil), không phải lỗi, caller chỉ báo "sai thông tin đăng nhập" chung
// chung. Lỗi kết nối store mới propagate ra ngoài.
func (s *FeedbackService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	id := utils.UserIDFromEmail(email)

	user, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}

	// SĐT lưu plaintext, so sánh trực tiếp sau khi bỏ khoảng trắng (giữ nguyên
	// behavior của hệ cũ, không hash)
	if user.Password != strings.ReplaceAll(password, " ", "") {
		return nil, nil
	}

	return user, nil
}

// GetUserFeedbacks trả về feedback của user, mới nhất trước. Entry không parse
// được thời gian bị coi là cũ nhất và xếp cuối.
func (s *FeedbackService) GetUserFeedbacks(ctx context.Context, email string) ([]models.Feedback, error) {
	id := utils.UserIDFromEmail(email)

	user, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return []models.Feedback{}, nil
		}
		return nil, err
	}

	feedbacks := append([]models.Feedback(nil), user.Feedbacks...)

	// Sort stable: hai entry cùng thời gian giữ nguyên thứ tự import
	sort.SliceStable(feedbacks, func(i, j int) bool {
		return ParseThoiGian(feedbacks[i].ThoiGian).After(ParseThoiGian(feedbacks[j].ThoiGian))
	})

	return feedbacks, nil
}

// GetUserProfile trả về phần thông tin công khai của record
func (s *FeedbackService) GetUserProfile(ctx context.Context, email string) (*models.User, error) {
	id := utils.UserIDFromEmail(email)

	user, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// ParseThoiGian trả zero time cho chuỗi rỗng hoặc sai format để entry đó chìm
// xuống cuối danh sách
func ParseThoiGian(s string) time.Time {
	if s == "" {
		return time.Time{}
	}

	t, err := time.Parse(thoiGianLayout, s)
	if err != nil {
		logrus.WithField("thoi_gian", s).Debug("không parse được thời gian feedback")
		return time.Time{}
	}
	return t
}
