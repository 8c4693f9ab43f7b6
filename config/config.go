package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v2"
)

var GatewayConfig *Config

var (
	ErrNonPositiveInterval = errors.New("monitor intervals must be positive")
	ErrNonPositiveTimeout  = errors.New("upstream timeout must be positive")
	ErrInvalidFare         = errors.New("demo per_hour_rate and minimum_fare cannot be negative")
	ErrNegativeStageDelay  = errors.New("demo stage_delay cannot be negative")
)

type (
	// Config -.
	Config struct {
		App      `yaml:"app"`
		HTTP     `yaml:"http"`
		Log      `yaml:"logger"`
		DB       `yaml:"db"`
		Auth     `yaml:"auth"`
		Secrets  `yaml:"secrets"`
		Upstream `yaml:"upstream"`
		Monitor  `yaml:"monitor"`
		Demo     `yaml:"demo"`
		Redis    `yaml:"redis"`
		Cache    `yaml:"cache"`
	}

	// App -.
	App struct {
		Name    string `env-required:"true" yaml:"name" env:"APP_NAME"`
		Repo    string `env-required:"true" yaml:"repo" env:"APP_REPO"`
		Version string `env-required:"true"`
	}

	// HTTP -.
	HTTP struct {
		Host           string   `env-required:"true" yaml:"host" env:"HTTP_HOST"`
		Port           string   `env-required:"true" yaml:"port" env:"PORT"`
		AllowedOrigins []string `env-required:"true" yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS"`
		AllowedHeaders []string `env-required:"true" yaml:"allowed_headers" env:"HTTP_ALLOWED_HEADERS"`
		WSCompression  bool     `yaml:"ws_compression" env:"WS_COMPRESSION"`
		TLS            TLS      `yaml:"tls"`
	}

	// TLS -.
	TLS struct {
		Enabled  bool   `yaml:"enabled" env:"HTTP_TLS_ENABLED"`
		CertFile string `yaml:"certFile" env:"HTTP_TLS_CERT_FILE"`
		KeyFile  string `yaml:"keyFile" env:"HTTP_TLS_KEY_FILE"`
	}

	// Log -.
	Log struct {
		Level string `env-required:"true" yaml:"log_level" env:"LOG_LEVEL"`
	}

	// DB -. An empty URL means the embedded sqlite file.
	DB struct {
		PoolMax int    `env-required:"true" yaml:"pool_max" env:"DB_POOL_MAX"`
		URL     string `yaml:"url" env:"DB_URL"`
	}

	// Auth -.
	Auth struct {
		Disabled         bool          `yaml:"disabled" env:"AUTH_DISABLED"`
		JWTKey           string        `env-required:"true" yaml:"jwtKey" env:"JWT_SECRET"`
		JWTExpiration    time.Duration `yaml:"jwtExpiration" env:"AUTH_JWT_EXPIRATION"`
		DemoMode         bool          `yaml:"demoMode" env:"AUTH_DEMO_MODE"`
		LoginRateLimit   int           `yaml:"loginRateLimit" env:"AUTH_LOGIN_RATE_LIMIT"`
		LoginRateWindow  time.Duration `yaml:"loginRateWindow" env:"AUTH_LOGIN_RATE_WINDOW"`
		JWTKeySecretName string        `yaml:"jwtKeySecretName" env:"AUTH_JWT_KEY_SECRET_NAME"`
	}

	// Secrets -. Vault is only consulted when Address and Token are set.
	Secrets struct {
		Address string `yaml:"address" env:"SECRETS_ADDR"`
		Token   string `yaml:"token" env:"SECRETS_TOKEN"`
		Path    string `yaml:"path" env:"SECRETS_PATH"`
	}

	// Upstream -. One table of every service base URL the gateway calls.
	Upstream struct {
		BackendURL    string        `env-required:"true" yaml:"backend_url" env:"PYTHON_API"`
		VisionURL     string        `yaml:"vision_url" env:"VISION_API"`
		AggregatorURL string        `yaml:"aggregator_url" env:"AGGREGATOR_API"`
		Timeout       time.Duration `yaml:"timeout" env:"UPSTREAM_TIMEOUT"`
	}

	// Monitor -.
	Monitor struct {
		HealthInterval time.Duration `yaml:"health_interval" env:"MONITOR_HEALTH_INTERVAL"`
		SlotInterval   time.Duration `yaml:"slot_interval" env:"MONITOR_SLOT_INTERVAL"`
	}

	// Demo -.
	Demo struct {
		StageDelay  time.Duration `yaml:"stage_delay" env:"DEMO_STAGE_DELAY"`
		PerHourRate float64       `yaml:"per_hour_rate" env:"DEMO_PER_HOUR_RATE"`
		MinimumFare float64       `yaml:"minimum_fare" env:"DEMO_MINIMUM_FARE"`
		RFID        string        `yaml:"rfid" env:"DEMO_RFID"`
		Plate       string        `yaml:"plate" env:"DEMO_PLATE"`
	}

	// Cache -. A zero TTL disables caching of dashboard aggregates.
	Cache struct {
		TTL time.Duration `yaml:"ttl" env:"CACHE_TTL"`
	}

	// Redis -. Empty Addr keeps pub/sub in-process.
	Redis struct {
		Addr          string `yaml:"addr" env:"REDIS_ADDR"`
		Password      string `yaml:"password" env:"REDIS_PASSWORD"`
		DB            int    `yaml:"db" env:"REDIS_DB"`
		ChannelPrefix string `yaml:"channel_prefix" env:"REDIS_CHANNEL_PREFIX"`
	}
)

// defaultConfig constructs the in-memory default configuration.
func defaultConfig() *Config {
	return &Config{
		App: App{
			Name:    "parking-gateway",
			Repo:    "smart-parking/console",
			Version: "DEVELOPMENT",
		},
		HTTP: HTTP{
			Host:           "localhost",
			Port:           "5000",
			AllowedOrigins: []string{"http://localhost:3000"},
			AllowedHeaders: []string{"*"},
			WSCompression:  true,
			TLS: TLS{
				Enabled: false,
			},
		},
		Log: Log{
			Level: "info",
		},
		DB: DB{
			PoolMax: 2,
			URL:     "",
		},
		Auth: Auth{
			JWTKey:           "your-secret-key-change-in-production",
			JWTExpiration:    24 * time.Hour,
			DemoMode:         false,
			LoginRateLimit:   20,
			LoginRateWindow:  time.Minute,
			JWTKeySecretName: "jwt-signing-key",
		},
		Secrets: Secrets{
			Address: "",
			Token:   "",
			Path:    "secret/data/parking",
		},
		Upstream: Upstream{
			BackendURL:    "http://localhost:8000",
			VisionURL:     "http://localhost:8001",
			AggregatorURL: "http://localhost:8002",
			Timeout:       10 * time.Second,
		},
		Monitor: Monitor{
			HealthInterval: 5 * time.Second,
			SlotInterval:   2 * time.Second,
		},
		Demo: Demo{
			StageDelay:  1500 * time.Millisecond,
			PerHourRate: 20,
			MinimumFare: 10,
			RFID:        "RFID001",
			Plate:       "MH-12-AB-1234",
		},
		Redis: Redis{
			ChannelPrefix: "parking:",
		},
		Cache: Cache{
			TTL: 2 * time.Second,
		},
	}
}

// resolveConfigPath determines the effective config file path based on a flag value or default location.
func resolveConfigPath(configPathFlag string) (string, error) {
	if configPathFlag != "" {
		return configPathFlag, nil
	}

	ex, err := os.Executable()
	if err != nil {
		return "", err
	}

	return filepath.Join(filepath.Dir(ex), "config", "config.yml"), nil
}

// readOrInitConfig reads the config file, writing cfg out as the file when none exists yet.
func readOrInitConfig(configPath string, cfg *Config) error {
	err := cleanenv.ReadConfig(configPath, cfg)
	if err == nil {
		return nil
	}

	var pathErr *os.PathError
	if !errors.As(err, &pathErr) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), os.ModePerm); err != nil {
		return err
	}

	file, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	defer encoder.Close()

	return encoder.Encode(cfg)
}

// Load reads configPath (or the default location when empty) and applies env overrides.
func Load(configPath string) (*Config, error) {
	cfg := defaultConfig()

	path, err := resolveConfigPath(configPath)
	if err != nil {
		return nil, err
	}

	if err := readOrInitConfig(path, cfg); err != nil {
		return nil, err
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects settings the pollers and the demo sequencer cannot run with.
func (cfg *Config) Validate() error {
	if cfg.Monitor.HealthInterval <= 0 || cfg.Monitor.SlotInterval <= 0 {
		return ErrNonPositiveInterval
	}

	if cfg.Upstream.Timeout <= 0 {
		return ErrNonPositiveTimeout
	}

	if cfg.Demo.PerHourRate < 0 || cfg.Demo.MinimumFare < 0 {
		return ErrInvalidFare
	}

	if cfg.Demo.StageDelay < 0 {
		return ErrNegativeStageDelay
	}

	return nil
}

// NewConfig returns app config, taking the file path from the -config flag.
func NewConfig() (*Config, error) {
	var configPathFlag string
	if flag.Lookup("config") == nil {
		flag.StringVar(&configPathFlag, "config", "", "path to config file")
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	cfg, err := Load(configPathFlag)
	if err != nil {
		return nil, err
	}

	GatewayConfig = cfg

	return cfg, nil
}
