package config

import (
	"encoding/json"
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Nội dung JSON service account (dùng chung cho Firestore và Sheets API)
	FirebaseConfig string `env:"FIREBASE_CONFIG"`

	JWTSecret          string `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	JWTExpirationHours int64  `env:"JWT_EXPIRATION_HOURS" envDefault:"24"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
}

func ParseConfig() (*Config, error) {
	var conf Config
	if err := env.Parse(&conf); err != nil {
		logrus.WithError(err).Error("env.Parse error")
		return nil, err
	}
	return &conf, nil
}

// FirebaseCredentials kiểm tra và trả về credential blob. Thiếu hoặc sai JSON
// là lỗi cấu hình fatal, caller phải dừng ngay chứ không retry.
func (c *Config) FirebaseCredentials() ([]byte, error) {
	if c.FirebaseConfig == "" {
		return nil, fmt.Errorf("biến môi trường FIREBASE_CONFIG không tồn tại")
	}
	if !json.Valid([]byte(c.FirebaseConfig)) {
		return nil, fmt.Errorf("FIREBASE_CONFIG không phải JSON hợp lệ")
	}
	return []byte(c.FirebaseConfig), nil
}
