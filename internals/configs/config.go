package configs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"

	"mahasiswa_backend/internals/helpers/logger"
)

// GeminiKeyPlaceholder adalah nilai contoh di .env.example yang dianggap belum diset.
const GeminiKeyPlaceholder = "your_gemini_api_key_here"

type Config struct {
	Port        string
	Environment string
	FrontendURL string

	JWTSecret string
	JWTTTL    time.Duration

	DB DatabaseConfig

	Gemini GeminiConfig

	DataDir string

	LogLevel  string
	LogFormat string

	RunSeeds bool
	SeedFile string
}

type DatabaseConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Name     string
	SSLMode  string
}

// DSN dengan statement_timeout supaya query lambat tidak menggantung request.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=mahasiswa&options=-c statement_timeout=3000",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// =======================
// ENV LOADER
// =======================

// LoadEnv memuat .env (kecuali di Railway) lalu membaca semua key lewat viper.
func LoadEnv(log logger.Logger) *Config {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Warn("Tidak menemukan .env file, menggunakan ENV dari sistem", nil)
		} else {
			log.Info(".env file berhasil dimuat", nil)
		}
	} else {
		log.Info("Running in Railway, menggunakan ENV dari sistem", nil)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := fromViper(v)
	for _, w := range cfg.Warnings() {
		log.Warn(w, nil)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "5000")
	v.SetDefault("NODE_ENV", "production")
	v.SetDefault("JWT_TTL_HOURS", 24)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "require")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("GEMINI_TIMEOUT", "30s")
	v.SetDefault("DATA_DIR", "data_json")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("RUN_SEEDS", false)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Port:        v.GetString("PORT"),
		Environment: v.GetString("NODE_ENV"),
		FrontendURL: v.GetString("FRONTEND_URL"),
		JWTSecret:   v.GetString("JWT_SECRET"),
		JWTTTL:      time.Duration(v.GetInt("JWT_TTL_HOURS")) * time.Hour,
		DB: DatabaseConfig{
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Gemini: GeminiConfig{
			APIKey:  strings.TrimSpace(v.GetString("GEMINI_API_KEY")),
			Model:   v.GetString("GEMINI_MODEL"),
			Timeout: v.GetDuration("GEMINI_TIMEOUT"),
		},
		DataDir:   v.GetString("DATA_DIR"),
		LogLevel:  v.GetString("LOG_LEVEL"),
		LogFormat: v.GetString("LOG_FORMAT"),
		RunSeeds:  v.GetBool("RUN_SEEDS"),
		SeedFile:  v.GetString("SEED_FILE"),
	}
}

// Warnings mengembalikan key penting yang belum diset. Tidak fatal: layanan AI
// akan menjawab 503 sendiri kalau key Gemini kosong.
func (c *Config) Warnings() []string {
	var out []string
	if c.JWTSecret == "" {
		out = append(out, "JWT_SECRET belum diset!")
	}
	if !GeminiKeyUsable(c.Gemini.APIKey) {
		out = append(out, "GEMINI_API_KEY belum diset, rekomendasi AI akan mengembalikan 503")
	}
	return out
}

// Validate dipanggil saat startup untuk key yang tanpa itu server tidak bisa jalan.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET wajib diisi")
	}
	if c.DB.Name == "" || c.DB.User == "" {
		return errors.New("DB_NAME dan DB_USER wajib diisi")
	}
	return nil
}

// GeminiKeyUsable: false kalau kosong atau masih nilai placeholder.
func GeminiKeyUsable(key string) bool {
	key = strings.TrimSpace(key)
	return key != "" && key != GeminiKeyPlaceholder
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
	Log           logger.Logger
}

func NewGormLogger(log logger.Logger) gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
		Log:           log,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	cp := *l
	cp.LogLevel = level
	return &cp
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		l.Log.Info(fmt.Sprintf(msg, data...), nil)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		l.Log.Warn(fmt.Sprintf(msg, data...), nil)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		l.Log.Error(fmt.Sprintf(msg, data...), nil)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := map[string]interface{}{
		"file":    utils.FileWithLineNum(),
		"elapsed": elapsed.String(),
		"rows":    rows,
		"sql":     sql,
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.LogLevel >= gormLogger.Error:
		fields["error"] = err.Error()
		l.Log.Error("[SQL ERROR]", fields)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		l.Log.Warn("[SLOW SQL]", fields)
	case l.LogLevel >= gormLogger.Info:
		l.Log.Debug("[QUERY]", fields)
	}
}
