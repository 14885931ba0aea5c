package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Facebook        Facebook        `mapstructure:",squash"`
	Shopify         Shopify         `mapstructure:",squash"`
	Stripe          Stripe          `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	AccountSync     AccountSync     `mapstructure:",squash"`
	FinalSyncSafety FinalSyncSafety `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Facebook struct {
	BaseURL string `mapstructure:"facebook_base_url"`
	URL     string `mapstructure:"-"`
	Version string `mapstructure:"facebook_version"`
}

type Shopify struct {
	APIVersion string `mapstructure:"shopify_api_version"`
	APIKey     string `mapstructure:"shopify_api_key"`
	APISecret  string `mapstructure:"shopify_api_secret"`
}

type Stripe struct {
	BaseURL   string `mapstructure:"stripe_base_url"`
	SecretKey string `mapstructure:"stripe_secret_key"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// AccountSync controla a sincronização incremental disparada pelo endpoint de sync
type AccountSync struct {
	LookbackDays        int `mapstructure:"account_sync_lookback_days"`
	RequestDelaySeconds int `mapstructure:"account_sync_request_delay_seconds"`
}

// FinalSyncSafety controla a varredura periódica de final syncs pendentes
type FinalSyncSafety struct {
	CronSchedule string `mapstructure:"final_sync_safety_net_cron"`
	LookbackDays int    `mapstructure:"final_sync_safety_net_lookback_days"`
	Enabled      bool   `mapstructure:"final_sync_safety_net_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/support")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("FACEBOOK_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("FACEBOOK_VERSION", "v22.0")

	viper.SetDefault("SHOPIFY_API_VERSION", "2024-07")
	viper.SetDefault("SHOPIFY_API_KEY", "your_api_key")
	viper.SetDefault("SHOPIFY_API_SECRET", "your_api_secret")

	viper.SetDefault("STRIPE_BASE_URL", "https://api.stripe.com")
	viper.SetDefault("STRIPE_SECRET_KEY", "")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("ACCOUNT_SYNC_LOOKBACK_DAYS", 7)         // 7 dias para buscar dados
	viper.SetDefault("ACCOUNT_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições

	// Defaults da varredura de segurança de final syncs
	viper.SetDefault("FINAL_SYNC_SAFETY_NET_CRON", "0 5 * * 0") // Todos os domingos às 5h da manhã
	viper.SetDefault("FINAL_SYNC_SAFETY_NET_LOOKBACK_DAYS", 7)
	viper.SetDefault("FINAL_SYNC_SAFETY_NET_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Facebook.URL = fmt.Sprintf("%s/%s", config.Facebook.BaseURL, config.Facebook.Version)

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

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
