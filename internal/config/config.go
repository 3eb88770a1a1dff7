package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"
)

type Config struct {
	AppPort           string
	AppName           string
	DbDriver          string
	SqliteDSN         string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	DbParams          string
	TrustedProxies    []string
	LogLevel          string
	LogFile           string
	LogMaxSizeMB      int
	LogMaxBackups     int
	LogMaxAgeDays     int
	UsersFile         string
	TranslationFolder string
	AuthRealm         string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		AppName:           getEnv("APP_NAME", "todo"),
		DbDriver:          strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		SqliteDSN:         getEnv("SQLITE_DSN", "file:todo.db?_foreign_keys=off"),
		DbHost:            getEnv("MYSQL_HOST", "db"),
		DbPort:            getEnv("MYSQL_PORT", "3306"),
		DbUser:            getEnv("MYSQL_USER", "todo"),
		DbPassword:        getEnv("MYSQL_PASSWORD", "todo"),
		DbName:            getEnv("MYSQL_DATABASE", "todo"),
		DbParams:          getEnv("MYSQL_PARAMS", "parseTime=true&loc=UTC"),
		TrustedProxies:    parseList(os.Getenv("TRUSTED_PROXIES")),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFile:           os.Getenv("LOG_FILE"),
		LogMaxSizeMB:      getEnvInt("LOG_MAX_SIZE_MB", 100),
		LogMaxBackups:     getEnvInt("LOG_MAX_BACKUPS", 5),
		LogMaxAgeDays:     getEnvInt("LOG_MAX_AGE_DAYS", 28),
		UsersFile:         os.Getenv("USERS_FILE"),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		AuthRealm:         getEnv("AUTH_REALM", "todo"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
