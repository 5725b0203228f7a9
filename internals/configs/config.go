package configs

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No se encontró .env, usando ENV del sistema")
		} else {
			log.Println("✅ .env cargado correctamente!")
		}
	} else {
		log.Println("🚀 Running in Railway, usando ENV del sistema")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

/* =======================================================
   Importer defaults — antes constantes globales mutables,
   ahora config explícita que viaja con el orquestador
   ======================================================= */

type ImporterConfig struct {
	// Unidad móvil asignada cuando la fila no trae ninguna.
	DefaultMobileUnitID *uuid.UUID
}

func LoadImporterConfig() ImporterConfig {
	var cfg ImporterConfig
	raw := strings.TrimSpace(GetEnv("IMPORT_DEFAULT_MOBILE_UNIT_ID"))
	if raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			log.Printf("⚠️ IMPORT_DEFAULT_MOBILE_UNIT_ID inválido (%q), se ignora: %v", raw, err)
		} else {
			cfg.DefaultMobileUnitID = &id
		}
	}
	return cfg
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	if err != nil {
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	} else if elapsed > l.SlowThreshold {
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
