package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vietthanh-tce/feedback-backend/models"
	"github.com/vietthanh-tce/feedback-backend/store"
	"github.com/vietthanh-tce/feedback-backend/utils"
)

// Số cột A-H của form roster
const rosterColumns = 8

// rosterRow là một dòng dữ liệu đã tách cột
type rosterRow struct {
	DauThoiGian string // A: dấu thời gian nộp bài
	HoTen       string // B
	Lop         string // C
	SDT         string // D
	Email       string // E (đã bỏ khoảng trắng)
	LinkBaiLam  string // F
	Status      string // G
	Feedback    string // H: nội dung giáo viên chấm
}

type RowStatus string

const (
	RowUpdated RowStatus = "updated"
	RowFailed  RowStatus = "failed"
)

// RowResult trả kết quả từng dòng về cho vòng lặp batch thay vì ném exception;
// batch chỉ việc đếm, không cần catch-and-continue.
type RowResult struct {
	Index  int       `json:"index"` // 1-based, tính trên dòng dữ liệu (sau header)
	Email  string    `json:"email"`
	Status RowStatus `json:"status"`
	Reason string    `json:"reason,omitempty"`
}

type ImportSummary struct {
	Updated int         `json:"updated"`
	Failed  int         `json:"failed"`
	Results []RowResult `json:"results"`
}

// ImportService đối chiếu dòng roster với record có sẵn: backfill profile một
// lần và append feedback cho học sinh
type ImportService struct {
	store store.UserStore
}

func NewImportService(st store.UserStore) *ImportService {
	return &ImportService{store: st}
}

// ImportRows xử lý các dòng dữ liệu (header đã bị bỏ từ trước). Lỗi từng dòng
// được đếm và log kèm index, không bao giờ dừng batch.
func (s *ImportService) ImportRows(ctx context.Context, rows [][]string) ImportSummary {
	summary := ImportSummary{Results: make([]RowResult, 0, len(rows))}

	for i, row := range rows {
		result := RowResult{Index: i + 1}

		parsed := parseRosterRow(row)
		result.Email = parsed.Email

		if err := s.importRow(ctx, parsed); err != nil {
			result.Status = RowFailed
			result.Reason = err.Error()
			summary.Failed++
			logrus.WithFields(logrus.Fields{
				"index": i + 1,
				"total": len(rows),
				"email": parsed.Email,
			}).WithError(err).Warn("import dòng thất bại")
		} else {
			result.Status = RowUpdated
			summary.Updated++
			logrus.WithFields(logrus.Fields{
				"index": i + 1,
				"total": len(rows),
				"email": parsed.Email,
			}).Info("import dòng thành công")
		}

		summary.Results = append(summary.Results, result)
	}

	return summary
}

// parseRosterRow pad dòng thiếu cột về đủ 8 ô rỗng trước khi tách field:
// dòng ngắn không bao giờ được phép làm hỏng import.
func parseRosterRow(row []string) rosterRow {
	for len(row) < rosterColumns {
		row = append(row, "")
	}

	return rosterRow{
		DauThoiGian: row[0],
		HoTen:       row[1],
		Lop:         row[2],
		SDT:         row[3],
		Email:       utils.NormalizeEmail(row[4]),
		LinkBaiLam:  row[5],
		Status:      row[6],
		Feedback:    row[7],
	}
}

func (s *ImportService) importRow(ctx context.Context, row rosterRow) error {
	if row.Email == "" {
		return fmt.Errorf("dòng không có email")
	}

	id := utils.UserIDFromEmail(row.Email)

	user, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Import không tự tạo tài khoản, học sinh phải được seed trước
			return fmt.Errorf("user %s không tồn tại", row.Email)
		}
		return err
	}

	// Backfill họ tên + lớp đúng một lần, khi profile còn trống. Không phải
	// sync: tên đã có thì dòng mới không ghi đè nữa.
	if user.Profile.HoTen == "" {
		err := s.store.UpdateFields(ctx, id, map[string]interface{}{
			"profile.ho_ten": row.HoTen,
			"profile.lop":    row.Lop,
		})
		if err != nil {
			return fmt.Errorf("lỗi backfill profile: %w", err)
		}
	}

	// Append feedback: chỉ với học sinh và khi cột feedback có nội dung.
	// Không dedup: import lại cùng sheet sẽ tạo entry trùng, đúng như hệ cũ.
	if user.Role == models.RoleUser && row.Feedback != "" {
		fb := models.Feedback{
			ThoiGian:   row.DauThoiGian,
			NoiDung:    row.Feedback,
			LinkBaiLam: row.LinkBaiLam,
		}
		if err := s.store.AppendFeedback(ctx, id, user.Feedbacks, fb); err != nil {
			return fmt.Errorf("lỗi append feedback: %w", err)
		}
	}

	return nil
}
