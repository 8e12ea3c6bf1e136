package utils

import (
	"strings"
	"unicode"
)

// NormalizeEmail xoá toàn bộ khoảng trắng trong email (kể cả khoảng trắng
// lọt vào giữa chuỗi khi nhập form).
func NormalizeEmail(email string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, email)
}

// UserIDFromEmail sinh document id từ email: bỏ khoảng trắng, thay '@' và '.'
// bằng '_'. Rule này phải dùng chung cho cả tạo tài khoản, import và đăng nhập;
// lệch một chỗ là records không match nhau nữa.
func UserIDFromEmail(email string) string {
	id := NormalizeEmail(email)
	id = strings.ReplaceAll(id, "@", "_")
	id = strings.ReplaceAll(id, ".", "_")
	return id
}
