package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"smartcloth/internal/engine"
	"smartcloth/internal/logger"
	"smartcloth/internal/service"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SMARTCLOTH_DB_PATH.
const EnvPrefix = "SMARTCLOTH"

// Config is the full runtime configuration of the device.
type Config struct {
	Port    string        `mapstructure:"port"`
	DB      DBConfig      `mapstructure:"db"`
	Log     LogConfig     `mapstructure:"log"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Engine  EngineConfig  `mapstructure:"engine"`
	Network NetworkConfig `mapstructure:"network"`
	Scale   ScaleConfig   `mapstructure:"scale"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type AuthConfig struct {
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
}

// EngineConfig holds the poll period and the screen delays.
type EngineConfig struct {
	Tick                  time.Duration `mapstructure:"tick"`
	ConfirmTimeout        time.Duration `mapstructure:"confirm_timeout"`
	BarcodeConfirmTimeout time.Duration `mapstructure:"barcode_confirm_timeout"`
	ErrorTimeout          time.Duration `mapstructure:"error_timeout"`
	CancelTimeout         time.Duration `mapstructure:"cancel_timeout"`
	WarningTimeout        time.Duration `mapstructure:"warning_timeout"`
	DeleteLogTimeout      time.Duration `mapstructure:"delete_log_timeout"`
	DeleteLogDoneDelay    time.Duration `mapstructure:"delete_log_done_delay"`
	SavedReturnDelay      time.Duration `mapstructure:"saved_return_delay"`
	UploadResultDelay     time.Duration `mapstructure:"upload_result_delay"`
}

// NetworkConfig points at the network module. An empty Addr runs offline.
type NetworkConfig struct {
	Addr                string        `mapstructure:"addr"`
	DialTimeout         time.Duration `mapstructure:"dial_timeout"`
	ConnectivityTimeout time.Duration `mapstructure:"connectivity_timeout"`
	ReadTimeout         time.Duration `mapstructure:"read_timeout"`
	LookupTimeout       time.Duration `mapstructure:"lookup_timeout"`
	SaveTimeout         time.Duration `mapstructure:"save_timeout"`
}

type ScaleConfig struct {
	Threshold   float64       `mapstructure:"threshold"`
	ReleaseBand float64       `mapstructure:"release_band"`
	Period      time.Duration `mapstructure:"period"`
}

func setDefaults(v *viper.Viper) {
	d := engine.DefaultConfig()

	v.SetDefault("port", "8080")
	v.SetDefault("db.path", "smartcloth.db")
	v.SetDefault("log.level", logger.InfoLevel)
	v.SetDefault("log.encoding", logger.ConsoleEncoding)

	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", time.Hour)

	v.SetDefault("engine.tick", 50*time.Millisecond)
	v.SetDefault("engine.confirm_timeout", d.ConfirmTimeout)
	v.SetDefault("engine.barcode_confirm_timeout", d.BarcodeConfirmTimeout)
	v.SetDefault("engine.error_timeout", d.ErrorTimeout)
	v.SetDefault("engine.cancel_timeout", d.CancelTimeout)
	v.SetDefault("engine.warning_timeout", d.WarningTimeout)
	v.SetDefault("engine.delete_log_timeout", d.DeleteLogTimeout)
	v.SetDefault("engine.delete_log_done_delay", d.DeleteLogDoneDelay)
	v.SetDefault("engine.saved_return_delay", d.SavedReturnDelay)
	v.SetDefault("engine.upload_result_delay", d.UploadResultDelay)

	v.SetDefault("network.addr", "")
	v.SetDefault("network.dial_timeout", 2*time.Second)
	v.SetDefault("network.connectivity_timeout", d.ConnectivityTimeout)
	v.SetDefault("network.read_timeout", d.ReadTimeout)
	v.SetDefault("network.lookup_timeout", d.LookupTimeout)
	v.SetDefault("network.save_timeout", d.SaveTimeout)

	v.SetDefault("scale.threshold", 5.0)
	v.SetDefault("scale.release_band", 20.0)
	v.SetDefault("scale.period", 20*time.Millisecond)
}

// Load reads the configuration. A .env file in the working directory is
// applied to the environment first. With an empty path configs/config.yml
// is used when it exists; otherwise defaults and SMARTCLOTH_* variables apply.
func Load(path string) (Config, error) {
	// Try to load .env file (fail silently if not present)
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("configs")
		v.SetConfigName("config")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ErrNoSigningKey is returned by Load when auth.signing_key is empty.
var ErrNoSigningKey = errors.New("auth.signing_key is empty; set it in the config file or SMARTCLOTH_AUTH_SIGNING_KEY")

func (c Config) validate() error {
	if strings.TrimSpace(c.Auth.SigningKey) == "" {
		return ErrNoSigningKey
	}
	if c.Engine.Tick <= 0 {
		return fmt.Errorf("engine.tick must be positive, got %s", c.Engine.Tick)
	}
	if c.Scale.Period <= 0 {
		return fmt.Errorf("scale.period must be positive, got %s", c.Scale.Period)
	}
	if c.Scale.Threshold < 0 || c.Scale.ReleaseBand < 0 {
		return errors.New("scale.threshold and scale.release_band must not be negative")
	}
	return nil
}

// EngineTimeouts maps the engine and network sections onto engine.Config.
func (c Config) EngineTimeouts() engine.Config {
	return engine.Config{
		ConfirmTimeout:        c.Engine.ConfirmTimeout,
		BarcodeConfirmTimeout: c.Engine.BarcodeConfirmTimeout,
		ErrorTimeout:          c.Engine.ErrorTimeout,
		CancelTimeout:         c.Engine.CancelTimeout,
		WarningTimeout:        c.Engine.WarningTimeout,
		DeleteLogTimeout:      c.Engine.DeleteLogTimeout,
		DeleteLogDoneDelay:    c.Engine.DeleteLogDoneDelay,
		SavedReturnDelay:      c.Engine.SavedReturnDelay,
		UploadResultDelay:     c.Engine.UploadResultDelay,

		ConnectivityTimeout: c.Network.ConnectivityTimeout,
		ReadTimeout:         c.Network.ReadTimeout,
		LookupTimeout:       c.Network.LookupTimeout,
		SaveTimeout:         c.Network.SaveTimeout,
	}
}

// ServiceAuth converts the auth section for the service layer.
func (c Config) ServiceAuth() service.AuthConfig {
	return service.AuthConfig{SigningKey: c.Auth.SigningKey, TokenTTL: c.Auth.TokenTTL}
}
