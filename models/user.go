package models

type UserRole string

const (
	RoleAdmin UserRole = "admin" // Giáo viên quản trị hệ thống
	RoleUser  UserRole = "user"  // Học sinh
)

// User là document trong collection "users", key = email đã chuẩn hoá
// (xem utils.UserIDFromEmail).
type User struct {
	Email     string   `firestore:"email" json:"email"`
	Password  string   `firestore:"password" json:"-"` // SĐT dùng làm mật khẩu, giữ nguyên plaintext như hệ thống cũ
	Role      UserRole `firestore:"role" json:"role"`
	CreatedAt string   `firestore:"created_at" json:"created_at"`
	Active    bool     `firestore:"active" json:"active"`
	Profile   Profile  `firestore:"profile" json:"profile"`

	// Chỉ tồn tại với role user; admin không bao giờ nhận feedback
	Feedbacks []Feedback `firestore:"feedbacks,omitempty" json:"feedbacks,omitempty"`
}

type Profile struct {
	HoTen string `firestore:"ho_ten" json:"ho_ten"`
	Lop   string `firestore:"lop" json:"lop"`
	Phone string `firestore:"phone" json:"phone"`
}

// Feedback là một lần chấm bài của giáo viên
type Feedback struct {
	ThoiGian   string `firestore:"thoi_gian" json:"thoi_gian"`       // "DD/MM/YYYY HH:MM:SS"
	NoiDung    string `firestore:"noi_dung" json:"noi_dung"`         // Nội dung feedback, có thể rỗng
	LinkBaiLam string `firestore:"link_bai_lam" json:"link_bai_lam"` // Link bài làm học sinh nộp
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
