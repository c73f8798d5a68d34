package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dws-console/internal/format"

	"github.com/spf13/viper"
)

const (
	keyPassword   = "static-password"
	keyLoginDelay = "login-delay"
	keyStrictNav  = "strict-nav"
	keyJournal    = "journal"
	keyDebugLog   = "debug-log"
	keyFormat     = "format"
	keyPretty     = "pretty"
	keyNoColor    = "no-color"

	defaultPassword   = "dws@123"
	defaultLoginDelay = 800 * time.Millisecond
)

var configKeys = []string{
	keyPassword,
	keyLoginDelay,
	keyStrictNav,
	keyJournal,
	keyDebugLog,
	keyFormat,
	keyPretty,
	keyNoColor,
}

// Config is resolved once per command. Precedence: flag, DWS_* environment, config file, default.
type Config struct {
	Password   string
	LoginDelay time.Duration
	StrictNav  bool
	Journal    string
	DebugLog   string
	Format     string
	Pretty     bool
	NoColor    bool
}

func configDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("DWS_CONFIG_DIR")); v != "" {
		return v, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "dws"), nil
}

func loadConfig(v *viper.Viper, file string) (Config, error) {
	v.SetEnvPrefix("DWS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	} else if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		Password:   v.GetString(keyPassword),
		LoginDelay: v.GetDuration(keyLoginDelay),
		StrictNav:  v.GetBool(keyStrictNav),
		Journal:    strings.TrimSpace(v.GetString(keyJournal)),
		DebugLog:   strings.TrimSpace(v.GetString(keyDebugLog)),
		Format:     strings.ToLower(strings.TrimSpace(v.GetString(keyFormat))),
		Pretty:     v.GetBool(keyPretty),
		NoColor:    v.GetBool(keyNoColor),
	}
	if cfg.Password == "" {
		return Config{}, errors.New("static-password must not be empty")
	}
	if cfg.LoginDelay < 0 {
		return Config{}, fmt.Errorf("login-delay must not be negative: %s", cfg.LoginDelay)
	}
	if !format.Valid(cfg.Format) {
		return Config{}, fmt.Errorf("unknown format: %s", cfg.Format)
	}
	return cfg, nil
}
