// file: internals/configs/config.go
package configs

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

var (
	Port          string
	AdminPassword string
	DataDir       string
	PublicDir     string
	UploadsDir    string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file found, using system ENV")
	}

	Port = GetEnv("PORT", "3000")
	AdminPassword = GetEnv("ADMIN_PASSWORD", "blackbear-admin")
	DataDir = GetEnv("DATA_DIR", "./data")
	PublicDir = GetEnv("PUBLIC_DIR", "./public")
	UploadsDir = filepath.Join(PublicDir, "uploads")

	if os.Getenv("ADMIN_PASSWORD") == "" {
		log.Println("[WARNING] ADMIN_PASSWORD not set, using the default password")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
