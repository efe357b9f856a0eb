package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr      string        `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN     string        `env:"DATABASE_DSN" envDefault:""`
	JWTSecret       string        `env:"JWT_SECRET" envDefault:"secret"`
	AdminAlias      string        `env:"ADMIN_ALIAS" envDefault:""`
	AdminPassword   string        `env:"ADMIN_PASSWORD" envDefault:""`
	ScoringAddr     string        `env:"SCORING_SYSTEM_ADDRESS" envDefault:"http://localhost:8081"`
	ScoringBatch    int           `env:"SCORING_BATCH_SIZE" envDefault:"10"`
	ScoringInterval time.Duration `env:"SCORING_POLL_INTERVAL" envDefault:"5s"`
	ScoringTimeout  time.Duration `env:"SCORING_TIMEOUT" envDefault:"10s"`
	BNPLAnnualRate  float64       `env:"BNPL_ANNUAL_RATE" envDefault:"0.12"`
	IslamicMargin   float64       `env:"ISLAMIC_MARGIN" envDefault:"0.08"`
	MaxInstallments int           `env:"CREDIT_MAX_INSTALLMENTS" envDefault:"24"`
	PeriodsPerYear  int           `env:"CREDIT_PERIODS_PER_YEAR" envDefault:"12"`
	MinCreditAmount float64       `env:"CREDIT_MIN_AMOUNT" envDefault:"1000"`
	MaxCreditAmount float64       `env:"CREDIT_MAX_AMOUNT" envDefault:"5000000"`
	AutoRejectScore int           `env:"CREDIT_AUTO_REJECT_SCORE" envDefault:"300"`
	MaxAssessments  int           `env:"CREDIT_MAX_ASSESSMENT_ATTEMPTS" envDefault:"3"`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr    string
	LogLevel      string
	JWTSecret     string
	DatabaseDSN   string
	AdminAlias    string
	AdminPassword string
}

// ScoringConfig модель настроек работы с сервисом оценки кредитоспособности
type ScoringConfig struct {
	ScoringAddr       string
	BatchSize         int
	PollInterval      time.Duration
	ProcessingTimeout time.Duration
}

// CreditConfig параметры кредитных продуктов (BNPL и исламское финансирование)
type CreditConfig struct {
	BNPLAnnualRate  float64
	IslamicMargin   float64
	MaxInstallments int
	PeriodsPerYear  int
	MinAmount       float64
	MaxAmount       float64
	AutoRejectScore int

	// после стольких неудачных оценок заявка передаётся администратору
	MaxAssessmentAttempts int
}

// Config модель настроек сервиса
type Config struct {
	Server  ServerConfig
	Scoring ScoringConfig
	Credit  CreditConfig
}

func NewConfig() Config {
	// .env не обязателен, переменные окружения имеют приоритет
	_ = godotenv.Load()

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server   = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN      = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		secret   = pflag.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
		scoring  = pflag.StringP("scoring", "r", args.ScoringAddr, "Scoring service address in a form http://host:port.")
		batch    = pflag.IntP("batch", "b", args.ScoringBatch, "Credit requests per assessment batch.")
		interval = pflag.DurationP("poll", "p", args.ScoringInterval, "Assessment poll interval.")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:    *server,
			LogLevel:      *logLevel,
			DatabaseDSN:   *DSN,
			JWTSecret:     *secret,
			AdminAlias:    args.AdminAlias,
			AdminPassword: args.AdminPassword,
		},
		Scoring: ScoringConfig{
			ScoringAddr:       *scoring,
			BatchSize:         *batch,
			PollInterval:      *interval,
			ProcessingTimeout: args.ScoringTimeout,
		},
		Credit: CreditConfig{
			BNPLAnnualRate:  args.BNPLAnnualRate,
			IslamicMargin:   args.IslamicMargin,
			MaxInstallments: args.MaxInstallments,
			PeriodsPerYear:  args.PeriodsPerYear,
			MinAmount:       args.MinCreditAmount,
			MaxAmount:       args.MaxCreditAmount,
			AutoRejectScore: args.AutoRejectScore,

			MaxAssessmentAttempts: args.MaxAssessments,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:  "localhost:8080",
			LogLevel:    "info",
			DatabaseDSN: "",
			JWTSecret:   "secret",
		},
		Scoring: ScoringConfig{
			ScoringAddr:       "http://localhost:8081",
			BatchSize:         10,
			PollInterval:      5 * time.Second,
			ProcessingTimeout: 10 * time.Second,
		},
		Credit: CreditConfig{
			BNPLAnnualRate:  0.12,
			IslamicMargin:   0.08,
			MaxInstallments: 24,
			PeriodsPerYear:  12,
			MinAmount:       1000,
			MaxAmount:       5000000,
			AutoRejectScore: 300,

			MaxAssessmentAttempts: 3,
		},
	}
}
