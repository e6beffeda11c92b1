package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort             string
	DbDriver            string
	DbHost              string
	DbPort              string
	DbUser              string
	DbPassword          string
	DbName              string
	DbParams            string
	DbAutoMigrate       bool
	SqlitePath          string
	AuthJWTSecret       string
	SortNullsLastAlways bool
	TranslationFolder   string
	TrustedProxies      []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:             getEnv("APP_PORT", "8080"),
		DbDriver:            getEnv("DB_DRIVER", "mysql"),
		DbHost:              getEnv("MYSQL_HOST", "db"),
		DbPort:              getEnv("MYSQL_PORT", "3306"),
		DbUser:              getEnv("MYSQL_USER", "todolist"),
		DbPassword:          getEnv("MYSQL_PASSWORD", "todolist"),
		DbName:              getEnv("MYSQL_DATABASE", "todolist"),
		DbParams:            getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		DbAutoMigrate:       getEnvBool("DB_AUTO_MIGRATE", true),
		SqlitePath:          getEnv("SQLITE_PATH", "todolist.db"),
		AuthJWTSecret:       os.Getenv("AUTH_JWT_SECRET"),
		SortNullsLastAlways: getEnvBool("SORT_NULLS_LAST_ALWAYS", false),
		TranslationFolder:   getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		TrustedProxies:      parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvBool falls back when the variable is unset or not a valid boolean.
func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
