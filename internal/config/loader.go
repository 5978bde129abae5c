package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix      = "STOREFRONT_"
	defaultEnvFile = ".env"
)

type Validator interface {
	Validate() error
}

// defaults keep the console usable without any config file.
var defaults = map[string]any{
	"server.port":               8080,
	"server.maxHeaderBytes":     1 << 20,
	"server.timeout.read":       "10s",
	"server.timeout.write":      "10s",
	"server.timeout.idle":       "60s",
	"server.timeout.readHeader": "5s",
	"log.level":                 "info",
	"pprof.enabled":             false,
	"pprof.addr":                "localhost:6060",
	"shutdown.timeout":          "10s",
	"seed.enabled":              true,
}

// Load reads the configuration from defaults, a yaml file, a .env file and the environment,
// in increasing order of priority.
func Load(configFile string) (*Config, error) {
	k := koanf.New(".")

	// 0. Built-in defaults
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("error loading defaults: %w", err)
	}

	// 1. Load configuration from yaml file
	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			if !os.IsNotExist(err) {
				log.Printf("WARN: error loading YAML config file '%s': %v", configFile, err)
			}
		}
	}

	// 2. Load environment variables from .env file
	if envFileMap, err := godotenv.Read(defaultEnvFile); err == nil {
		envMap := make(map[string]any)
		for key, value := range envFileMap {
			if !strings.HasPrefix(strings.ToUpper(key), envPrefix) {
				continue
			}
			envMap[keyTransformer(key)] = value
		}
		if err := k.Load(confmap.Provider(envMap, "."), nil); err != nil {
			log.Printf("WARN: error loading .env config: %v", err)
		}
	} else if !os.IsNotExist(err) {
		log.Printf("WARN: error reading .env file: %v", err)
	}

	// 3. Load environment variables from the system, the highest priority
	if err := k.Load(env.Provider(envPrefix, ".", keyTransformer), nil); err != nil {
		log.Printf("WARN: error loading system env vars: %v", err)
	}

	var cfg Config
	// 4. Unmarshal the configuration into the Config struct
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// 5. Validate the configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// keyTransformer maps STOREFRONT_SERVER_PORT to server.port.
// Camel-cased keys such as maxHeaderBytes can only be set from the yaml file.
func keyTransformer(key string) string {
	key = strings.ToLower(key)
	key = strings.TrimPrefix(key, strings.ToLower(envPrefix))
	return strings.ReplaceAll(key, "_", ".")
}
