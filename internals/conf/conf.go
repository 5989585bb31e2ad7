package conf

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"

	z "github.com/Oudwins/zog"
)

type Config struct {
	Version string        `json:"-"`
	Backend BackendConfig `json:"backend"`
	Server  ServerConfig  `json:"server"`
	Videos  VideosConfig  `json:"videos"`
}

type BackendConfig struct {
	// BaseURL of the automation backend. Overrides the env-derived default
	// when set, so every component targets one configured address.
	BaseURL string `json:"base_url"`
}

type ServerConfig struct {
	DataDir string `json:"data_dir"`
}

type VideosConfig struct {
	// Dir webpilotd serves recorded videos from.
	Dir string `json:"dir"`
}

var backendSchema = z.Struct(z.Shape{
	"BaseURL": z.String().Optional().Trim(),
})

var serverSchema = z.Struct(z.Shape{
	"DataDir": z.String().Default("~/.webpilot").Transform(expandPathTransform),
})

var videosSchema = z.Struct(z.Shape{
	"Dir": z.String().Default("~/.webpilot/videos").Transform(expandPathTransform),
})

var ConfigSchema = z.Struct(z.Shape{
	"backend": backendSchema,
	"server":  serverSchema,
	"videos":  videosSchema,
})

var config *Config

func GetConfig() *Config {
	if config == nil {
		defaults := &Config{}
		if err := ConfigSchema.Parse(map[string]any{}, defaults); err != nil {
			log.Fatal("[Webpilot] Failed to parse config", err)
		}
		defaults.Version = "0.0.1"

		dataDir, err := expandPath(defaults.Server.DataDir)
		if err != nil {
			log.Fatal("[Webpilot] Failed to expand config data dir", err)
		}

		configPath := filepath.Join(filepath.Clean(dataDir), "webpilot.json")
		data, err := os.ReadFile(configPath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				config = defaults
				return config
			}
			log.Fatal("[Webpilot] Failed to read config file", err)
		}
		if strings.TrimSpace(string(data)) == "" {
			config = defaults
			return config
		}

		var payload map[string]any
		if err := json.Unmarshal(data, &payload); err != nil {
			log.Fatal("[Webpilot] Failed to parse config file", err)
		}
		parsed := &Config{}
		if err := ConfigSchema.Parse(payload, parsed); err != nil {
			log.Fatal("[Webpilot] Failed to parse config", err)
		}
		parsed.Version = defaults.Version
		config = parsed
	}

	return config
}

func expandPathTransform(ptr *string, c z.Ctx) error {
	expanded, err := expandPath(*ptr)
	*ptr = expanded
	return err
}

func expandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~/")), nil
	}
	return path, nil
}
