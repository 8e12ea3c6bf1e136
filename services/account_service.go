package services

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vietthanh-tce/feedback-backend/models"
	"github.com/vietthanh-tce/feedback-backend/store"
	"github.com/vietthanh-tce/feedback-backend/utils"
)

// Seed là một dòng trong danh sách tài khoản cần tạo sẵn
type Seed struct {
	Email string
	Phone string
	Role  models.UserRole
}

type SeedSummary struct {
	Created int
	Failed  int
}

// AccountService tạo tài khoản hàng loạt từ seed list
type AccountService struct {
	store store.UserStore
}

func NewAccountService(st store.UserStore) *AccountService {
	return &AccountService{store: st}
}

// BuildSeeds ghép danh sách email/phone thành seed, phần tử đầu tiên là admin,
// còn lại là user. Hai list phải dài bằng nhau, thừa thiếu thì cắt theo bên ngắn.
func BuildSeeds(emails, phones []string) []Seed {
	n := len(emails)
	if len(phones) < n {
		n = len(phones)
	}

	seeds := make([]Seed, 0, n)
	for i := 0; i < n; i++ {
		role := models.RoleUser
		if i == 0 {
			role = models.RoleAdmin
		}
		seeds = append(seeds, Seed{Email: emails[i], Phone: phones[i], Role: role})
	}
	return seeds
}

// CreateAccounts tạo từng tài khoản, lỗi ở một dòng chỉ tăng Failed chứ không
// dừng cả batch. Kết quả duy nhất báo ra ngoài là tổng thành công/thất bại.
func (s *AccountService) CreateAccounts(ctx context.Context, seeds []Seed) SeedSummary {
	var summary SeedSummary

	for i, seed := range seeds {
		if err := s.createOne(ctx, seed); err != nil {
			summary.Failed++
			logrus.WithError(err).WithFields(logrus.Fields{
				"index": i + 1,
				"total": len(seeds),
				"email": seed.Email,
			}).Error("tạo tài khoản thất bại")
			continue
		}

		summary.Created++
		logrus.WithFields(logrus.Fields{
			"index": i + 1,
			"total": len(seeds),
			"email": seed.Email,
			"role":  seed.Role,
		}).Info("tạo tài khoản thành công")
	}

	return summary
}

// createOne ghi đè document tại id kể cả khi đã tồn tại: seed lại cùng email
// với SĐT khác sẽ thay toàn bộ record cũ.
func (s *AccountService) createOne(ctx context.Context, seed Seed) error {
	phone := strings.ReplaceAll(seed.Phone, " ", "")
	id := utils.UserIDFromEmail(seed.Email)

	user := &models.User{
		Email:     seed.Email,
		Password:  phone,
		Role:      seed.Role,
		CreatedAt: time.Now().Format(time.RFC3339),
		Active:    true,
		Profile: models.Profile{
			Phone: phone,
		},
	}
	if seed.Role == models.RoleUser {
		user.Feedbacks = []models.Feedback{}
	}

	return s.store.Set(ctx, id, user)
}
