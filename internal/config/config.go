package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Auth          Auth          `mapstructure:",squash"`
	RateLimit     RateLimit     `mapstructure:",squash"`
	Forecasting   Forecasting   `mapstructure:",squash"`
	Pricing       Pricing       `mapstructure:",squash"`
	RepricingSync RepricingSync `mapstructure:",squash"`
	AccuracySync  AccuracySync  `mapstructure:",squash"`
}

type Server struct {
	Host        string   `mapstructure:"host"`
	Port        string   `mapstructure:"port"`
	CorsOrigins []string `mapstructure:"cors_allowed_origins"`

	ShutdownTimeout time.Duration `mapstructure:"server_shutdown_timeout"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type App struct {
	LogLevel      string `mapstructure:"log_level"`
	LogFormat     string `mapstructure:"log_format"`
	LogOutput     string `mapstructure:"log_output"`
	LogMaxAgeDays int    `mapstructure:"log_max_age_days"`
}

type Auth struct {
	Secret   string        `mapstructure:"auth_secret"`
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type RateLimit struct {
	RequestsPerSecond float64 `mapstructure:"rate_limit_rps"`
	Burst             int     `mapstructure:"rate_limit_burst"`
	Enabled           bool    `mapstructure:"rate_limit_enabled"`
}

type Forecasting struct {
	LookbackDays         int     `mapstructure:"forecast_lookback_days"`
	MinHistoryPoints     int     `mapstructure:"forecast_min_history_points"`
	ModelMinPoints       int     `mapstructure:"forecast_model_min_points"`
	SmoothingAlpha       float64 `mapstructure:"forecast_smoothing_alpha"`
	LeadTimeLookbackDays int     `mapstructure:"forecast_lead_time_lookback_days"`
	UseModel             bool    `mapstructure:"forecast_use_model"`
}

type Pricing struct {
	Alpha          float64 `mapstructure:"pricing_alpha"`
	Beta           float64 `mapstructure:"pricing_beta"`
	Gamma          float64 `mapstructure:"pricing_gamma"`
	Delta          float64 `mapstructure:"pricing_delta"`
	BaselineDemand float64 `mapstructure:"pricing_baseline_demand"`
	MaxLeadTime    int     `mapstructure:"pricing_max_lead_time"`
	FloorRatio     float64 `mapstructure:"pricing_floor_ratio"`
	CeilingRatio   float64 `mapstructure:"pricing_ceiling_ratio"`
	DefaultChannel string  `mapstructure:"pricing_default_channel"`
	SummaryDays    int     `mapstructure:"pricing_summary_days"`
	RulesFile      string  `mapstructure:"pricing_rules_file"`
}

type RepricingSync struct {
	CronSchedule      string `mapstructure:"repricing_sync_cron"`
	DaysAhead         int    `mapstructure:"repricing_sync_days_ahead"`
	MaxConcurrentJobs int    `mapstructure:"repricing_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"repricing_sync_enabled"`
}

type AccuracySync struct {
	CronSchedule string `mapstructure:"accuracy_sync_cron"`
	Enabled      bool   `mapstructure:"accuracy_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "15s")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/revenue?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10) // reprecificação usa até 3 categorias em paralelo
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("AUTH_SECRET", "your_secret_key") // ONLY LOCAL
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("RATE_LIMIT_RPS", 20)
	viper.SetDefault("RATE_LIMIT_BURST", 40)
	viper.SetDefault("RATE_LIMIT_ENABLED", true)

	// Defaults da previsão de demanda
	viper.SetDefault("FORECAST_LOOKBACK_DAYS", 90)
	viper.SetDefault("FORECAST_MIN_HISTORY_POINTS", 14)
	viper.SetDefault("FORECAST_MODEL_MIN_POINTS", 30)
	viper.SetDefault("FORECAST_SMOOTHING_ALPHA", 0.3)
	viper.SetDefault("FORECAST_LEAD_TIME_LOOKBACK_DAYS", 60)
	viper.SetDefault("FORECAST_USE_MODEL", true)

	// Defaults da precificação dinâmica
	viper.SetDefault("PRICING_ALPHA", 0.3)  // sensibilidade à demanda
	viper.SetDefault("PRICING_BETA", 0.25)  // sensibilidade à concorrência
	viper.SetDefault("PRICING_GAMMA", 0.02) // decaimento por antecedência
	viper.SetDefault("PRICING_DELTA", 1.0)  // impacto de eventos
	viper.SetDefault("PRICING_BASELINE_DEMAND", 0.75)
	viper.SetDefault("PRICING_MAX_LEAD_TIME", 365)
	viper.SetDefault("PRICING_FLOOR_RATIO", 0.7)
	viper.SetDefault("PRICING_CEILING_RATIO", 1.5)
	viper.SetDefault("PRICING_DEFAULT_CHANNEL", "ALL")
	viper.SetDefault("PRICING_SUMMARY_DAYS", 7)
	viper.SetDefault("PRICING_RULES_FILE", "")

	viper.SetDefault("REPRICING_SYNC_CRON", "0 2 * * *")      // Todos os dias às 2h da manhã
	viper.SetDefault("REPRICING_SYNC_DAYS_AHEAD", 30)         // 30 dias à frente
	viper.SetDefault("REPRICING_SYNC_MAX_CONCURRENT_JOBS", 3) // 3 categorias em paralelo
	viper.SetDefault("REPRICING_SYNC_ENABLED", false)

	viper.SetDefault("ACCURACY_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("ACCURACY_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("LOG_OUTPUT", "stdout")
	viper.SetDefault("LOG_MAX_AGE_DAYS", 14)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
