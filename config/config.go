package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	OpenAI    OpenAIConfig
	Assistant AssistantConfig
}

type AppConfig struct {
	Port               string
	Env                string
	CORSAllowedOrigins []string
}

type DBConfig struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	MigrationsDir string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

// AssistantConfig carries the operator-tunable assistant texts. Empty values
// fall back to the compiled-in defaults in the chat usecase, so a bare .env
// still yields a working assistant.
type AssistantConfig struct {
	DefaultPersona  string
	FallbackReply   string
	DailyMessageCap int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	migrationsDir := viper.GetString("DB_MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "migrations"
	}

	model := viper.GetString("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	dailyCap := viper.GetInt("CHAT_DAILY_MESSAGE_CAP")
	if dailyCap <= 0 {
		dailyCap = 100
	}

	corsOrigins := []string{"*"}
	if raw := viper.GetString("APP_CORS_ALLOWED_ORIGINS"); raw != "" {
		corsOrigins = corsOrigins[:0]
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				corsOrigins = append(corsOrigins, origin)
			}
		}
	}

	config := &Config{
		App: AppConfig{
			Port:               viper.GetString("APP_PORT"),
			Env:                viper.GetString("APP_ENV"),
			CORSAllowedOrigins: corsOrigins,
		},
		DB: DBConfig{
			Host:          viper.GetString("DB_HOST"),
			Port:          viper.GetString("DB_PORT"),
			User:          viper.GetString("DB_USER"),
			Password:      viper.GetString("DB_PASSWORD"),
			Name:          viper.GetString("DB_NAME"),
			MigrationsDir: migrationsDir,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		OpenAI: OpenAIConfig{
			APIKey: viper.GetString("OPENAI_API_KEY"),
			Model:  model,
		},
		Assistant: AssistantConfig{
			DefaultPersona:  viper.GetString("ASSISTANT_DEFAULT_PERSONA"),
			FallbackReply:   viper.GetString("ASSISTANT_FALLBACK_REPLY"),
			DailyMessageCap: dailyCap,
		},
	}

	return config, nil
}
