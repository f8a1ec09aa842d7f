package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Session record backend: "file", "redis" or "memory".
	SessionBackend string `mapstructure:"SESSION_BACKEND"`
	SessionDir     string `mapstructure:"SESSION_DIR"`
	// When set, persisted records are sealed with this secret.
	SessionSecret string `mapstructure:"SESSION_SECRET"`

	// Simulated latencies and scripted delays.
	LoginDelay             time.Duration `mapstructure:"LOGIN_DELAY"`
	RegisterDelay          time.Duration `mapstructure:"REGISTER_DELAY"`
	BookingRedirectDelay   time.Duration `mapstructure:"BOOKING_REDIRECT_DELAY"`
	EmergencySearchDelay   time.Duration `mapstructure:"EMERGENCY_SEARCH_DELAY"`
	EmergencyDispatchDelay time.Duration `mapstructure:"EMERGENCY_DISPATCH_DELAY"`
	RevealDelay            time.Duration `mapstructure:"REVEAL_DELAY"`
	DeviceIdleTTL          time.Duration `mapstructure:"DEVICE_IDLE_TTL"`

	// Host bridge.
	StatusBarColor string `mapstructure:"STATUS_BAR_COLOR"`
	HostBridgeURL  string `mapstructure:"HOST_BRIDGE_URL"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_SECRET", "HANDYHUB")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_SESSION_DB", 1)
	v.SetDefault("SESSION_BACKEND", "file")
	v.SetDefault("SESSION_DIR", "./data/sessions")
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("LOGIN_DELAY", time.Second)
	v.SetDefault("REGISTER_DELAY", 1500*time.Millisecond)
	v.SetDefault("BOOKING_REDIRECT_DELAY", 2*time.Second)
	v.SetDefault("EMERGENCY_SEARCH_DELAY", 3*time.Second)
	v.SetDefault("EMERGENCY_DISPATCH_DELAY", 3*time.Second)
	v.SetDefault("REVEAL_DELAY", 100*time.Millisecond)
	v.SetDefault("DEVICE_IDLE_TTL", 30*time.Minute)
	v.SetDefault("STATUS_BAR_COLOR", "#0e95e9")
	v.SetDefault("HOST_BRIDGE_URL", "")
}

// Load reads configuration from the given viper instance into a Config.
func Load(v *viper.Viper) (Config, error) {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	// Automatically use environment variables where available.
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig() {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
