package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Oracle   OracleConfig
	Pipeline PipelineConfig
	Auth     AuthConfig
}

type ServerConfig struct {
	Port string
	Mode string // gin mode: debug/release
}

type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// OracleConfig описывает внешний сервис делинеации ЭКГ
type OracleConfig struct {
	ServiceURL string
	Timeout    int // секунды
}

// PipelineConfig содержит все параметры пайплайна извлечения признаков.
// Пороговые значения вынесены в конфигурацию вместо глобальных констант,
// одинаковы для fetal и maternal сигналов.
type PipelineConfig struct {
	SignalDir  string
	OutputDir  string
	SampleRate float64 // Гц, задаётся вне файлов сигналов

	FilterLowCut  float64 // Гц
	FilterHighCut float64 // Гц
	FilterOrder   int

	QualityMinRPeaks int
	QualityMinStd    float64

	PairMaxDistance int // семплы

	RhythmRRThreshold float64 // секунды, std RR-интервалов
}

type AuthConfig struct {
	Enabled   bool
	JWTSecret string
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("HTTP_PORT", "8053"),
			Mode: getEnv("GIN_MODE", "debug"),
		},
		Database: DatabaseConfig{
			Enabled:  getEnvAsBool("DB_ENABLED", false),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "ecg_db"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Oracle: OracleConfig{
			ServiceURL: getEnv("ORACLE_SERVICE_URL", "http://localhost:8000"),
			Timeout:    getEnvAsInt("ORACLE_TIMEOUT", 30),
		},
		Pipeline: PipelineConfig{
			SignalDir:  getEnv("SIGNAL_DIR", "ica_cleaned_signals"),
			OutputDir:  getEnv("OUTPUT_DIR", "metrics_json"),
			SampleRate: getEnvAsFloat("SAMPLE_RATE", 250.0),

			FilterLowCut:  getEnvAsFloat("FILTER_LOW_CUT", 0.5),
			FilterHighCut: getEnvAsFloat("FILTER_HIGH_CUT", 40.0),
			FilterOrder:   getEnvAsInt("FILTER_ORDER", 4),

			QualityMinRPeaks: getEnvAsInt("QUALITY_MIN_R_PEAKS", 3),
			QualityMinStd:    getEnvAsFloat("QUALITY_MIN_STD", 0.05),

			PairMaxDistance: getEnvAsInt("PAIR_MAX_DISTANCE", 200),

			RhythmRRThreshold: getEnvAsFloat("RHYTHM_RR_THRESHOLD", 0.2),
		},
		Auth: AuthConfig{
			Enabled:   getEnvAsBool("AUTH_ENABLED", false),
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
	}
}

// getEnv получает переменную окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt получает переменную окружения как int
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat получает переменную окружения как float64
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsBool получает переменную окружения как bool
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
