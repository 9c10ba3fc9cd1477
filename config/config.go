// Package config resolves runtime settings from defaults, an optional
// TOML config file, and flag overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".duckling"

	keySavePath  = "save.path"
	keyKeymap    = "input.keymap"
	keyFrameRate = "display.fps"
	keyMute      = "audio.mute"
	keyDebug     = "debug.enabled"
	keyLogPath   = "debug.log_path"
)

// Config is the resolved runtime configuration
type Config struct {
	SavePath   string
	KeymapPath string
	FrameRate  int
	Mute       bool
	Debug      bool
	LogPath    string
}

// Load resolves configuration. An explicit configPath must exist; the
// default location is optional.
func Load(cfg *viper.Viper, configPath string) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	baseDir := filepath.Join(homeDir, configDir)

	cfg.SetDefault(keySavePath, filepath.Join(baseDir, "save.json"))
	cfg.SetDefault(keyKeymap, filepath.Join(baseDir, "keymap.toml"))
	cfg.SetDefault(keyFrameRate, 30)
	cfg.SetDefault(keyMute, false)
	cfg.SetDefault(keyDebug, false)
	cfg.SetDefault(keyLogPath, filepath.Join(baseDir, "debug.log"))

	if configPath != "" {
		cfg.SetConfigFile(configPath)
		if err := cfg.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		cfg.SetConfigName(configName)
		cfg.SetConfigType(configType)
		cfg.AddConfigPath(baseDir)
		if err := cfg.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	out := Config{
		SavePath:   cfg.GetString(keySavePath),
		KeymapPath: cfg.GetString(keyKeymap),
		FrameRate:  cfg.GetInt(keyFrameRate),
		Mute:       cfg.GetBool(keyMute),
		Debug:      cfg.GetBool(keyDebug),
		LogPath:    cfg.GetString(keyLogPath),
	}
	if out.SavePath == "" {
		return Config{}, errors.New("save path is empty")
	}
	if out.FrameRate < 1 || out.FrameRate > 240 {
		return Config{}, fmt.Errorf("frame rate %d out of range [1,240]", out.FrameRate)
	}
	return out, nil
}
