package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Auth     Auth     `mapstructure:",squash"`
	Analysis Analysis `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
	// EntitlementEnabled gates the "month" and "all" periods behind a PRO
	// plan claim. With the gate disabled every caller is treated as PRO.
	EntitlementEnabled bool `mapstructure:"auth_entitlement_enabled"`
}

// Analysis carries every tunable of the analytics pipeline. The pipeline
// itself holds no ambient configuration: all constants flow in from here.
type Analysis struct {
	// DefaultCommission replaces absent or non-numeric commission_pct
	// values (a ratio, 0.15 = 15%).
	DefaultCommission float64 `mapstructure:"analysis_default_commission"`
	// AnomalyThreshold is the day-over-day revenue change ratio above
	// which a day is flagged (0.3 = 30%).
	AnomalyThreshold float64 `mapstructure:"analysis_anomaly_threshold"`
	// ChunkSize bounds the row batches of the large-file CSV reader.
	ChunkSize int `mapstructure:"analysis_chunk_size"`
	// TopSize is the length of the product ranking.
	TopSize int `mapstructure:"analysis_top_size"`
	// MaxUploadBytes caps the accepted file size at the transport layer.
	MaxUploadBytes int64 `mapstructure:"analysis_max_upload_bytes"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 4000)

	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_ENTITLEMENT_ENABLED", false)

	viper.SetDefault("ANALYSIS_DEFAULT_COMMISSION", 0.15)
	viper.SetDefault("ANALYSIS_ANOMALY_THRESHOLD", 0.3)
	viper.SetDefault("ANALYSIS_CHUNK_SIZE", 10000)
	viper.SetDefault("ANALYSIS_TOP_SIZE", 5)
	viper.SetDefault("ANALYSIS_MAX_UPLOAD_BYTES", 20*1024*1024)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env):", err)
	} else {
		logrus.Info(".env file read by viper")
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

	return config, nil
}

// loadEnvFile loads a .env file from the usual local-development locations.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not resolve working directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from:", location)
			return
		}
	}

	logrus.Debug("no .env file found, relying on process environment")
}
