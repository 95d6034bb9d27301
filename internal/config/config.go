package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/riskibarqy/team-editor/internal/platform/logging"
	"github.com/spf13/viper"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// EnvPrefix prefixes every environment override, e.g. TEAM_EDITOR_DB_PATH.
const EnvPrefix = "TEAM_EDITOR"

const (
	keyAppEnv       = "app_env"
	keyLogLevel     = "log_level"
	keyLogFormat    = "log_format"
	keyDBPath       = "db_path"
	keyAssetDir     = "asset_dir"
	keyLogoSize     = "logo_size"
	keyConfirmSaves = "confirm_saves"
	keyLogFile      = "log_file"
)

// Config stores runtime configuration for the editor.
type Config struct {
	AppEnv    string `validate:"oneof=dev stage prod"`
	LogLevel  logging.Level
	LogFormat string `validate:"oneof=console json"`
	// DBPath is opened on start when set.
	DBPath string
	// AssetDir overrides where L{id}.png logos live; empty means next to the database.
	AssetDir     string
	LogoSize     int `validate:"gt=0,lte=4096"`
	ConfirmSaves bool
	// LogFile, when set, receives logs through a size-rotated writer
	// instead of stderr.
	LogFile string
}

// LoadEnvFiles loads .env then .env.local from the working directory into
// the process environment. Missing files are skipped; variables already set
// are not overridden.
func LoadEnvFiles() {
	for _, name := range []string{".env", ".env.local"} {
		_ = godotenv.Load(name)
	}
}

// Load reads defaults, the optional config file at path, then TEAM_EDITOR_*
// environment variables, later sources winning.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault(keyAppEnv, EnvDev)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, logging.FormatConsole)
	v.SetDefault(keyDBPath, "")
	v.SetDefault(keyAssetDir, "")
	v.SetDefault(keyLogoSize, 128)
	v.SetDefault(keyConfirmSaves, true)
	v.SetDefault(keyLogFile, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	logoSize, err := parseInt(v, keyLogoSize)
	if err != nil {
		return Config{}, err
	}

	confirmSaves, err := parseBool(v, keyConfirmSaves)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:       strings.ToLower(strings.TrimSpace(v.GetString(keyAppEnv))),
		LogLevel:     logging.ParseLevel(v.GetString(keyLogLevel)),
		LogFormat:    strings.ToLower(strings.TrimSpace(v.GetString(keyLogFormat))),
		DBPath:       strings.TrimSpace(v.GetString(keyDBPath)),
		AssetDir:     strings.TrimSpace(v.GetString(keyAssetDir)),
		LogoSize:     logoSize,
		ConfirmSaves: confirmSaves,
		LogFile:      strings.TrimSpace(v.GetString(keyLogFile)),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func parseInt(v *viper.Viper, key string) (int, error) {
	raw := strings.TrimSpace(v.GetString(key))
	out, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", envName(key), err)
	}
	return out, nil
}

func parseBool(v *viper.Viper, key string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v.GetString(key))) {
	case "1", "true", "t", "yes", "y", "on":
		return true, nil
	case "0", "false", "f", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("parse %s: invalid boolean %q", envName(key), v.GetString(key))
	}
}

func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(key)
}
