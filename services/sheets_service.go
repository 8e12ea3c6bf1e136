package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsClient đọc roster từ Google Sheets (chỉ cần quyền readonly)
type SheetsClient struct {
	svc *sheets.Service
}

// NewSheetsClient tạo service từ cùng credential JSON với Firestore
func NewSheetsClient(ctx context.Context, credJSON []byte) (*SheetsClient, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credJSON),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("lỗi khởi tạo Google Sheets API: %w", err)
	}
	return &SheetsClient{svc: svc}, nil
}

// ExtractSheetID lấy id từ URL dạng .../spreadsheets/d/<id>/edit
func ExtractSheetID(sheetURL string) (string, error) {
	_, after, found := strings.Cut(sheetURL, "/d/")
	if !found {
		return "", fmt.Errorf("URL không hợp lệ")
	}

	id, _, _ := strings.Cut(after, "/")
	if id == "" {
		return "", fmt.Errorf("URL không hợp lệ")
	}
	return id, nil
}

// TestConnection thử đọc metadata của spreadsheet trước khi import
func (c *SheetsClient) TestConnection(ctx context.Context, sheetID string) error {
	meta, err := c.svc.Spreadsheets.Get(sheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("không thể kết nối đến Google Sheets: %w", err)
	}

	tabs := make([]string, 0, len(meta.Sheets))
	for _, sh := range meta.Sheets {
		tabs = append(tabs, sh.Properties.Title)
	}
	logrus.WithFields(logrus.Fields{
		"title": meta.Properties.Title,
		"tabs":  tabs,
	}).Info("kết nối Google Sheets thành công")

	return nil
}

// ReadRows đọc cột A-H của tab đầu tiên, bỏ dòng header, trả về dòng dữ liệu
// dưới dạng chuỗi
func (c *SheetsClient) ReadRows(ctx context.Context, sheetID string) ([][]string, error) {
	meta, err := c.svc.Spreadsheets.Get(sheetID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("không thể kết nối đến Google Sheets: %w", err)
	}
	if len(meta.Sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet không có tab nào")
	}

	firstTab := meta.Sheets[0].Properties.Title
	readRange := fmt.Sprintf("'%s'!A:H", firstTab)

	resp, err := c.svc.Spreadsheets.Values.Get(sheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("lỗi đọc dữ liệu sheet: %w", err)
	}

	if len(resp.Values) == 0 {
		logrus.WithField("sheet_id", sheetID).Warn("sheet không có dữ liệu")
		return nil, nil
	}

	// Dòng đầu là header, bỏ qua
	rows := make([][]string, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprintf("%v", cell))
		}
		rows = append(rows, row)
	}

	logrus.WithFields(logrus.Fields{
		"tab":  firstTab,
		"rows": len(rows),
	}).Info("đọc roster từ Google Sheets")

	return rows, nil
}
