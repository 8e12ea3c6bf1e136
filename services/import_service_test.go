package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietthanh-tce/feedback-backend/models"
	"github.com/vietthanh-tce/feedback-backend/store"
	"github.com/vietthanh-tce/feedback-backend/utils"
)

func seedStudent(t *testing.T, st store.UserStore, email string) string {
	t.Helper()
	id := utils.UserIDFromEmail(email)
	err := st.Set(context.Background(), id, &models.User{
		Email:     email,
		Password:  "0123456789",
		Role:      models.RoleUser,
		Active:    true,
		Feedbacks: []models.Feedback{},
	})
	require.NoError(t, err)
	return id
}

func rosterLine(thoiGian, hoTen, lop, email, link, feedback string) []string {
	return []string{thoiGian, hoTen, lop, "0123456789", email, link, "Đã chấm", feedback}
}

func TestImportRows_SkipMissingUser(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryUserStore()
	svc := NewImportService(st)

	summary := svc.ImportRows(ctx, [][]string{
		rosterLine("01/01/2025 10:00:00", "Nguyễn Văn A", "10A1", "chua-seed@gmail.com", "", "Bài tốt"),
	})

	assert.Equal(t, 0, summary.Updated)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Results, 1)
	assert.Equal(t, RowFailed, summary.Results[0].Status)

	// Không có record nào được tạo ngầm
	users, err := st.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestImportRows_EmptyEmailFailsWithoutStoreCall(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryUserStore()
	svc := NewImportService(st)

	summary := svc.ImportRows(ctx, [][]string{
		rosterLine("01/01/2025 10:00:00", "Nguyễn Văn A", "10A1", "   ", "", "Bài tốt"),
	})

	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, "dòng không có email", summary.Results[0].Reason)
}

func TestImportRows_FeedbackAppendIsCumulative(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryUserStore()
	svc := NewImportService(st)
	id := seedStudent(t, st, "hs1@gmail.com")

	summary := svc.ImportRows(ctx, [][]string{
		rosterLine("01/01/2025 10:00:00", "Nguyễn Văn A", "10A1", "hs1@gmail.com", "https://drive/bai1", "Bài 1 tốt"),
		rosterLine("15/06/2025 09:00:00", "Nguyễn Văn A", "10A1", "hs1@gmail.com", "https://drive/bai2", "Bài 2 cần sửa"),
	})

	assert.Equal(t, 2, summary.Updated)
	assert.Equal(t, 0, summary.Failed)

	user, err := st.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, user.Feedbacks, 2)
	// Giữ nguyên thứ tự import, không dedup
	assert.Equal(t, "Bài 1 tốt", user.Feedbacks[0].NoiDung)
	assert.Equal(t, "Bài 2 cần sửa", user.Feedbacks[1].NoiDung)
	assert.Equal(t, "https://drive/bai2", user.Feedbacks[1].LinkBaiLam)
}

func TestImportRows_ReimportDuplicates(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryUserStore()
	svc := NewImportService(st)
	id := seedStudent(t, st, "hs1@gmail.com")

	row := rosterLine("01/01/2025 10:00:00", "Nguyễn Văn A", "10A1", "hs1@gmail.com", "", "Bài tốt")
	svc.ImportRows(ctx, [][]string{row})
	svc.ImportRows(ctx, [][]string{row})

	user, err := st.Get(ctx, id)
	require.NoError(t, err)
	assert.Len(t, user.Feedbacks, 2)
}

func TestImportRows_BackfillOnlyWhenNameEmpty(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryUserStore()
	svc := NewImportService(st)
	id := seedStudent(t, st, "hs1@gmail.com")

	svc.ImportRows(ctx, [][]string{
		rosterLine("01/01/2025 10:00:00", "Nguyễn Văn A", "10A1", "hs1@gmail.com", "", ""),
	})

	user, err := st.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Nguyễn Văn A", user.Profile.HoTen)
	assert.Equal(t, "10A1", user.Profile.Lop)

	// Tên đã có thì dòng sau không ghi đè nữa
	svc.ImportRows(ctx, [][]string{
		rosterLine("02/01/2025 10:00:00", "Tên Khác", "11B2", "hs1@gmail.com", "", ""),
	})

	user, err = st.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Nguyễn Văn A", user.Profile.HoTen)
	assert.Equal(t, "10A1", user.Profile.Lop)
}

func TestImportRows_AdminNeverGetsFeedback(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryUserStore()
	svc := NewImportService(st)

	id := utils.UserIDFromEmail("gv@gmail.com")
	require.NoError(t, st.Set(ctx, id, &models.User{
		Email: "gv@gmail.com", Role: models.RoleAdmin, Active: true,
	}))

	summary := svc.ImportRows(ctx, [][]string{
		rosterLine("01/01/2025 10:00:00", "Giáo Viên", "10A1", "gv@gmail.com", "", "Feedback lạc vào dòng admin"),
	})

	// Dòng vẫn tính là thành công, chỉ không append
	assert.Equal(t, 1, summary.Updated)

	user, err := st.Get(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, user.Feedbacks)
}

func TestImportRows_EmptyFeedbackStillCountsUpdated(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryUserStore()
	svc := NewImportService(st)
	id := seedStudent(t, st, "hs1@gmail.com")

	summary := svc.ImportRows(ctx, [][]string{
		rosterLine("01/01/2025 10:00:00", "Nguyễn Văn A", "10A1", "hs1@gmail.com", "https://drive/bai1", ""),
	})

	assert.Equal(t, 1, summary.Updated)

	user, err := st.Get(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, user.Feedbacks)
}

func TestImportRows_ShortRowIsPadded(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryUserStore()
	svc := NewImportService(st)

	// Dòng chỉ có 3 ô: thiếu cả cột email -> fail vì email rỗng, nhưng không panic
	summary := svc.ImportRows(ctx, [][]string{
		{"01/01/2025 10:00:00", "Nguyễn Văn A", "10A1"},
	})

	assert.Equal(t, 1, summary.Failed)
}

func TestImportRows_EmailWithSpacesMatchesSeededAccount(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryUserStore()
	svc := NewImportService(st)
	id := seedStudent(t, st, "hs1@gmail.com")

	summary := svc.ImportRows(ctx, [][]string{
		rosterLine("01/01/2025 10:00:00", "Nguyễn Văn A", "10A1", "hs1 @gmail. com", "", "Bài tốt"),
	})

	assert.Equal(t, 1, summary.Updated)

	user, err := st.Get(ctx, id)
	require.NoError(t, err)
	assert.Len(t, user.Feedbacks, 1)
}
