package config

import (
	"os"
	"strconv"
)

// Config 应用配置
type Config struct {
	Port               int
	MongoURI           string
	MongoDB            string
	JWTKey             string
	Debug              bool
	ReminderScanHour   int
	ReminderScanMinute int
}

// LoadConfig 从环境变量加载配置
func LoadConfig() *Config {
	port, _ := strconv.Atoi(getEnv("PORT", "8080"))
	scanHour, _ := strconv.Atoi(getEnv("REMINDER_SCAN_HOUR", "2"))
	scanMinute, _ := strconv.Atoi(getEnv("REMINDER_SCAN_MINUTE", "0"))
	return &Config{
		Port:               port,
		MongoURI:           getEnv("MONGO_URI", "mongodb://127.0.0.1:27017"),
		MongoDB:            getEnv("MONGO_DB", "followup"),
		JWTKey:             getEnv("JWT_KEY", "your-secret-key"), // 实际环境应替换为安全密钥
		Debug:              getEnv("GIN_MODE", "debug") == "debug",
		ReminderScanHour:   scanHour,
		ReminderScanMinute: scanMinute,
	}
}

// getEnv 获取环境变量，如果不存在则返回默认值
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
