package store

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vietthanh-tce/feedback-backend/models"
)

const usersCollection = "users"

// FirestoreUserStore là UserStore chạy trên Cloud Firestore. Client được tạo
// một lần ở main và truyền xuống qua constructor, đóng bằng Close khi tắt server.
type FirestoreUserStore struct {
	client *firestore.Client
	users  *firestore.CollectionRef
}

// NewFirestoreUserStore tạo client từ JSON service account (nội dung biến
// FIREBASE_CONFIG). project_id lấy thẳng trong credential.
func NewFirestoreUserStore(ctx context.Context, credJSON []byte) (*FirestoreUserStore, error) {
	var cred struct {
		ProjectID string `json:"project_id"`
	}
	if err := json.Unmarshal(credJSON, &cred); err != nil {
		return nil, fmt.Errorf("FIREBASE_CONFIG không phải JSON hợp lệ: %w", err)
	}
	if cred.ProjectID == "" {
		return nil, fmt.Errorf("FIREBASE_CONFIG thiếu project_id")
	}

	client, err := firestore.NewClient(ctx, cred.ProjectID, option.WithCredentialsJSON(credJSON))
	if err != nil {
		return nil, fmt.Errorf("lỗi khởi tạo Firestore: %w", err)
	}

	return &FirestoreUserStore{
		client: client,
		users:  client.Collection(usersCollection),
	}, nil
}

func (s *FirestoreUserStore) Get(ctx context.Context, id string) (*models.User, error) {
	snap, err := s.users.Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var user models.User
	if err := snap.DataTo(&user); err != nil {
		return nil, fmt.Errorf("lỗi đọc document %s: %w", id, err)
	}
	return &user, nil
}

func (s *FirestoreUserStore) Set(ctx context.Context, id string, user *models.User) error {
	_, err := s.users.Doc(id).Set(ctx, user)
	return err
}

func (s *FirestoreUserStore) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	_, err := s.users.Doc(id).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return ErrUserNotFound
	}
	return err
}

// AppendFeedback cố ý không dùng firestore.ArrayUnion: ArrayUnion bỏ qua phần tử
// trùng, trong khi import lại cùng một sheet phải tạo entry trùng đúng như cũ.
func (s *FirestoreUserStore) AppendFeedback(ctx context.Context, id string, current []models.Feedback, fb models.Feedback) error {
	_, err := s.users.Doc(id).Update(ctx, []firestore.Update{
		{Path: "feedbacks", Value: append(current, fb)},
	})
	if status.Code(err) == codes.NotFound {
		return ErrUserNotFound
	}
	return err
}

func (s *FirestoreUserStore) List(ctx context.Context) ([]*models.User, error) {
	var users []*models.User

	it := s.users.Documents(ctx)
	defer it.Stop()
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var user models.User
		if err := snap.DataTo(&user); err != nil {
			return nil, fmt.Errorf("lỗi đọc document %s: %w", snap.Ref.ID, err)
		}
		users = append(users, &user)
	}

	return users, nil
}

func (s *FirestoreUserStore) Close() error {
	return s.client.Close()
}
