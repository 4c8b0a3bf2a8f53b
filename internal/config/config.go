package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type EscrowConfig struct {
	Env          string `yaml:"env" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	EscrowDB     `yaml:"escrow_db"`
	LogConfig    `yaml:"log_config"`
	TelegramBot  `yaml:"telegram_bot"`
	KafkaService `yaml:"kafka-service"`
	Archive      `yaml:"archive"`
	DealSettings `yaml:"deal_settings"`
	Admin        `yaml:"admin"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type EscrowDB struct {
	Dsn            string `yaml:"dsn" env:"ESCROW_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path" env-default:"migrations"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"json"`
}

type TelegramBot struct {
	Token string `yaml:"token" env:"BOT_TOKEN"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"deal-events"`
}

type Archive struct {
	BaseURL string `yaml:"base_url"`
}

type DealSettings struct {
	CodeLength           int           `yaml:"code_length" env-default:"6"`
	CommissionPercent    float64       `yaml:"commission_percent" env-default:"5.0"`
	WaitingBuyerTTL      time.Duration `yaml:"waiting_buyer_ttl" env-default:"10m"`
	GuarantorCallTTL     time.Duration `yaml:"guarantor_call_ttl" env-default:"15m"`
	MinRatingsForAverage int64         `yaml:"min_ratings_for_average" env-default:"3"`
	MaxAmount            float64       `yaml:"max_amount" env-default:"1000000"`
	MinDescriptionLen    int           `yaml:"min_description_len" env-default:"3"`
	MaxDescriptionLen    int           `yaml:"max_description_len" env-default:"200"`
	MaxMessageLen        int           `yaml:"max_message_len" env-default:"1000"`
}

type Admin struct {
	OwnerID  int64  `yaml:"owner_id" env:"OWNER_ID"`
	APIToken string `yaml:"api_token" env:"ADMIN_API_TOKEN"`
}

func MustLoad() *EscrowConfig {

	// Processing env config variable and file
	configPath := os.Getenv("ESCROW_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("ESCROW_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg EscrowConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
