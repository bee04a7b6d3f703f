package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port string

	DBDriver string // sqlite, postgres or mysql
	DBName   string // sqlite file path
	DBDSN    string // postgres / mysql connection string

	ModelPath string
	ModelURL  string // overrides the scoring URL of a remote model bundle

	ViewsDir  string
	PublicDir string

	SessionExpiryHours int

	EncoderFallbackCode int
	EncoderStrict       bool
	PlanRoundHours      bool

	ContactEmail string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port: getEnv("PORT", "3000"),

		DBDriver: strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBName:   getEnv("DB_NAME", "reviews.db"),
		DBDSN:    getEnv("DB_DSN", ""),

		ModelPath: getEnv("MODEL_PATH", "student_performance_model.json"),
		ModelURL:  getEnv("MODEL_URL", ""),

		ViewsDir:  getEnv("VIEWS_DIR", "./views"),
		PublicDir: getEnv("PUBLIC_DIR", "./public"),

		SessionExpiryHours: getEnvInt("SESSION_EXPIRY_HOURS", 24),

		EncoderFallbackCode: getEnvInt("ENCODER_FALLBACK_CODE", 0),
		EncoderStrict:       getEnvBool("ENCODER_STRICT", false),
		PlanRoundHours:      getEnvBool("PLAN_ROUND_HOURS", false),

		ContactEmail: getEnv("CONTACT_EMAIL", "team@smartscholar.local"),
	}

	if AppConfig.DBDriver != "sqlite" && AppConfig.DBDSN == "" {
		log.Printf("Warning: DB_DRIVER=%s without DB_DSN. Connection will most likely fail.", AppConfig.DBDriver)
	}

	return AppConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
