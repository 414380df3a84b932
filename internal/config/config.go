// Package config loads the inventory manager configuration.
package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Log struct {
		Level  string `koanf:"level" validate:"oneof=debug info warn error"`
		Format string `koanf:"format" validate:"oneof=json text"`
		File   string `koanf:"file"`
	} `koanf:"log"`

	Inventory struct {
		Capacity int  `koanf:"capacity" validate:"gte=1"`
		Seed     bool `koanf:"seed"`
	} `koanf:"inventory"`

	Console struct {
		Clear bool `koanf:"clear"`
	} `koanf:"console"`
}

func (c Config) String() string {
	return fmt.Sprintf("log.level=%s, log.format=%s, log.file=%s, inventory.capacity=%d, inventory.seed=%t, console.clear=%t.",
		c.Log.Level,
		c.Log.Format,
		logFile(c.Log.File),
		c.Inventory.Capacity,
		c.Inventory.Seed,
		c.Console.Clear)
}

func logFile(path string) string {
	if path == "" {
		return "<stderr>"
	}
	return path
}

const (
	envPrefix      = "inventory_"
	defaultEnvFile = ".env"
	configFile     = "config.yaml"
)

// Sources names the files Load reads. Missing files are skipped.
type Sources struct {
	ConfigFile string
	EnvFile    string
}

// DefaultSources are config.yaml and .env in the working directory.
func DefaultSources() Sources {
	return Sources{ConfigFile: configFile, EnvFile: defaultEnvFile}
}

func defaults() map[string]any {
	return map[string]any{
		"log.level":          "warn",
		"log.format":         "json",
		"log.file":           "",
		"inventory.capacity": 30,
		"inventory.seed":     true,
		"console.clear":      true,
	}
}

// Load reads the configuration from defaults, a file and environment variables
func Load(src Sources) (*Config, error) {
	// Create a new Koanf instance
	var k = koanf.New(".")

	// 1. Built-in defaults, the lowest priority
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("error loading defaults: %w", err)
	}

	// 2. Load configuration from yaml file
	if src.ConfigFile != "" {
		if err := k.Load(file.Provider(src.ConfigFile), yaml.Parser()); err != nil {
			if !os.IsNotExist(err) {
				log.Printf("WARN: error loading YAML config: %v", err)
			}
		}
	}

	// 3. Load environment variables from .env file
	if src.EnvFile != "" {
		if envFileMap, err := godotenv.Read(src.EnvFile); err == nil {
			envMap := make(map[string]any)
			for key, value := range envFileMap {
				if !hasEnvPrefix(key) {
					continue
				}
				envMap[keyTransformer(key)] = value
			}
			// Load the envMap into Koanf
			if err := k.Load(confmap.Provider(envMap, "."), nil); err != nil {
				log.Printf("WARN: error loading .env config: %v", err)
			}
		} else if !os.IsNotExist(err) {
			log.Printf("WARN: error reading .env file: %v", err)
		}
	}

	// 4. Load environment variables from the system, the highest priority
	if err := k.Load(env.Provider(strings.ToUpper(envPrefix), ".", keyTransformer), nil); err != nil {
		log.Printf("WARN: error loading env vars: %v", err)
	}

	var cfg Config
	// 5. Unmarshal the configuration into the Config struct
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// 6. Validate the configuration
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validateConfig checks if the configuration values are valid
func validateConfig(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func hasEnvPrefix(key string) bool {
	return strings.HasPrefix(strings.ToLower(key), envPrefix)
}

// keyTransformer transforms environment variable keys to match the expected format
func keyTransformer(key string) string {
	key = strings.ToLower(key)
	key = strings.TrimPrefix(key, envPrefix)
	return strings.ReplaceAll(key, "_", ".")
}
