package configs

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var (
	Conf *viper.Viper

	AppEnv           string
	JWTSecret        string
	JWTRefreshSecret string
	GoogleClientID   string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ no .env file found, using system ENV")
	} else {
		log.Println("✅ .env file loaded")
	}

	Conf = viper.New()
	Conf.SetTypeByDefaultValue(true)

	// defaults (everything overridable via ENV)
	Conf.SetDefault("APP_ENV", "development")
	Conf.SetDefault("PORT", "3000")
	Conf.SetDefault("DB_SSLMODE", "require")
	Conf.SetDefault("DB_PORT", "5432")
	Conf.SetDefault("ACCESS_TOKEN_TTL", 2*time.Hour)
	Conf.SetDefault("REFRESH_TOKEN_TTL", 7*24*time.Hour)
	Conf.SetDefault("MAIL_FROM_ADDRESS", "bursary@localhost")
	Conf.SetDefault("MAIL_FROM_NAME", "School Bursary")
	Conf.SetDefault("MINIO_BUCKET", "bursary-attachments")
	Conf.SetDefault("MINIO_USE_SSL", false)
	Conf.SetDefault("RECEIPT_MAX_WIDTH", 1600)

	Conf.AutomaticEnv()

	AppEnv = Conf.GetString("APP_ENV")
	JWTSecret = Conf.GetString("JWT_SECRET")
	JWTRefreshSecret = Conf.GetString("JWT_REFRESH_SECRET")
	GoogleClientID = Conf.GetString("GOOGLE_CLIENT_ID")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET is not set!")
	}
	if JWTRefreshSecret == "" {
		log.Println("❌ JWT_REFRESH_SECRET is not set!")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func IsProduction() bool {
	return AppEnv == "production"
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	level := gormLogger.Warn
	if !IsProduction() {
		level = gormLogger.Info
	}
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      level,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil:
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
