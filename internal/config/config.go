package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort               string `env:"HTTP_PORT" envDefault:"8080"`
	AnalyzerBaseURL        string `env:"ANALYZER_BASE_URL" envDefault:"http://localhost:8000"`
	AnalyzerTimeoutSeconds int    `env:"ANALYZER_TIMEOUT_SECONDS" envDefault:"60"`
	DatabaseURL            string `env:"DATABASE_URL"`
	RedisAddr              string `env:"REDIS_ADDR"`
	RedisPassword          string `env:"REDIS_PASSWORD"`
	RedisDB                int    `env:"REDIS_DB" envDefault:"0"`
	ReplyDelayMs           int    `env:"REPLY_DELAY_MS" envDefault:"1500"`
	FileReplyDelayMs       int    `env:"FILE_REPLY_DELAY_MS" envDefault:"1000"`
	ReportReplyDelayMs     int    `env:"REPORT_REPLY_DELAY_MS" envDefault:"1200"`
	ScoreDelayMs           int    `env:"SCORE_DELAY_MS" envDefault:"1800"`
	SplashIntervalMs       int    `env:"SPLASH_INTERVAL_MS" envDefault:"3000"`
	HeightDelayMs          int    `env:"HEIGHT_DELAY_MS" envDefault:"1500"`
	AnalyzeRateWindowSec   int    `env:"ANALYZE_RATE_WINDOW_SECONDS" envDefault:"60"`
	AnalyzeRateMax         int    `env:"ANALYZE_RATE_MAX" envDefault:"10"`
	LogFile                string `env:"LOG_FILE"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
