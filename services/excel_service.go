package services

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadRosterRows đọc roster từ file .xlsx upload (đường import offline khi
// admin tải sheet về máy). Sheet đầu tiên, dòng đầu là header.
func ReadRosterRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("không đọc được file Excel: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("file Excel không có sheet nào")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("lỗi đọc sheet %s: %w", sheet, err)
	}

	if len(rows) == 0 {
		return nil, nil
	}
	return rows[1:], nil
}
