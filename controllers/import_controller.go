package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietthanh-tce/feedback-backend/services"
)

type ImportInput struct {
	SheetURL string `json:"sheet_url" binding:"required"`
}

// ImportFromSheet đọc roster từ Google Sheets theo URL admin dán vào form và
// đối chiếu từng dòng với record học sinh
func (ctl *Controller) ImportFromSheet(c *gin.Context) {
	var input ImportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vui lòng nhập URL Google Sheets"})
		return
	}

	sheetID, err := services.ExtractSheetID(input.SheetURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL không hợp lệ!"})
		return
	}

	if ctl.sheets == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Google Sheets API chưa được cấu hình"})
		return
	}

	ctx := c.Request.Context()

	// Kiểm tra kết nối trước, lỗi ở đây là lỗi connectivity chứ chưa phải lỗi dữ liệu
	if err := ctl.sheets.TestConnection(ctx, sheetID); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Không thể kết nối đến Google Sheets!"})
		return
	}

	rows, err := ctl.sheets.ReadRows(ctx, sheetID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Lỗi đọc dữ liệu từ Google Sheets"})
		return
	}

	summary := ctl.importer.ImportRows(ctx, rows)
	c.JSON(http.StatusOK, gin.H{
		"message": "Import thành công!",
		"updated": summary.Updated,
		"failed":  summary.Failed,
		"results": summary.Results,
	})
}

// ImportFromFile nhận file .xlsx upload thay cho URL, dùng khi sheet không
// share được cho service account
func (ctl *Controller) ImportFromFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Vui lòng chọn file Excel"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Không mở được file upload"})
		return
	}
	defer f.Close()

	rows, err := services.ReadRosterRows(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Không đọc được file Excel"})
		return
	}

	summary := ctl.importer.ImportRows(c.Request.Context(), rows)
	c.JSON(http.StatusOK, gin.H{
		"message": "Import thành công!",
		"updated": summary.Updated,
		"failed":  summary.Failed,
		"results": summary.Results,
	})
}
