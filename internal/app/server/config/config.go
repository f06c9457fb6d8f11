package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress     = "localhost:8080"
	defaultMigrationsPath = "db/migrations"
	defaultCoachModel     = "llama3-70b-8192"
	defaultCoachUpstream  = "https://api.groq.com/openai/v1/chat/completions"
)

type Config struct {
	Env    string
	DB     db
	Server server
	Coach  coach
	Logger logger
}

type db struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type coach struct {
	UpstreamURL string `env:"COACH_UPSTREAM_URL"`
	APIKey      string `env:"COACH_API_KEY"`
	Model       string `env:"COACH_MODEL"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func MustLoad() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("RUN_ADDRESS", defaultRunAddress)
	viper.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)
	viper.SetDefault("COACH_UPSTREAM_URL", defaultCoachUpstream)
	viper.SetDefault("COACH_MODEL", defaultCoachModel)
	viper.SetDefault("APP_ENV", EnvLocal)
	viper.SetDefault("LOG_LEVEL", "info")

	return &Config{
		Env: viper.GetString("APP_ENV"),
		DB: db{
			DatabaseURI: viper.GetString("DATABASE_URI"),
			Migrations:  viper.GetString("MIGRATIONS_PATH"),
		},
		Server: server{RunAddress: viper.GetString("RUN_ADDRESS")},
		Coach: coach{
			UpstreamURL: viper.GetString("COACH_UPSTREAM_URL"),
			APIKey:      viper.GetString("COACH_API_KEY"),
			Model:       viper.GetString("COACH_MODEL"),
		},
		Logger: logger{LogLevel: viper.GetString("LOG_LEVEL")},
	}
}
