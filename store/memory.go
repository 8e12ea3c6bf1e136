package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vietthanh-tce/feedback-backend/models"
)

// MemoryUserStore giữ document trong map, dùng cho test và chạy local khi
// chưa có FIREBASE_CONFIG. Semantics bám theo FirestoreUserStore.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]*models.User)}
}

func (s *MemoryUserStore) Get(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	clone := *user
	clone.Feedbacks = append([]models.Feedback(nil), user.Feedbacks...)
	return &clone, nil
}

func (s *MemoryUserStore) Set(ctx context.Context, id string, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *user
	clone.Feedbacks = append([]models.Feedback(nil), user.Feedbacks...)
	s.users[id] = &clone
	return nil
}

func (s *MemoryUserStore) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return ErrUserNotFound
	}

	for path, value := range fields {
		switch path {
		case "profile.ho_ten":
			user.Profile.HoTen = fmt.Sprintf("%v", value)
		case "profile.lop":
			user.Profile.Lop = fmt.Sprintf("%v", value)
		case "profile.phone":
			user.Profile.Phone = fmt.Sprintf("%v", value)
		case "active":
			if b, ok := value.(bool); ok {
				user.Active = b
			}
		default:
			return fmt.Errorf("field path không hỗ trợ: %s", path)
		}
	}
	return nil
}

// AppendFeedback ghi đè cả mảng giống bản Firestore: current + fb, kể cả khi
// current đã cũ so với document hiện tại (last-write-wins).
func (s *MemoryUserStore) AppendFeedback(ctx context.Context, id string, current []models.Feedback, fb models.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return ErrUserNotFound
	}

	user.Feedbacks = append(append([]models.Feedback(nil), current...), fb)
	return nil
}

func (s *MemoryUserStore) List(ctx context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	users := make([]*models.User, 0, len(ids))
	for _, id := range ids {
		clone := *s.users[id]
		clone.Feedbacks = append([]models.Feedback(nil), s.users[id].Feedbacks...)
		users = append(users, &clone)
	}
	return users, nil
}

func (s *MemoryUserStore) Close() error {
	return nil
}
