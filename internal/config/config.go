package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog/log"

	"opsrecon/internal/recon"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	DataPath string
	LogDir   string

	// Logical dataset names resolved through the query layer.
	ScheduledDataset string
	TechnicalDataset string

	// Roster is the ordered list of canonical technician names; order is
	// the resolver's priority order.
	Roster []string

	// Rules is the relevance/partition keyword policy. Empty means the
	// built-in default set.
	Rules []recon.Rule
}

// defaultRoster covers the technicians of the current team. Deployments
// override it through the YAML config file.
var defaultRoster = []string{
	"Julien Mercier",
	"Claire Fontaine",
	"Antoine Lefebvre",
	"Sophie Marchand",
	"Nicolas Perrot",
}

// fileConfig mirrors the optional YAML configuration file.
type fileConfig struct {
	Roster   []string `koanf:"roster"`
	Rules    []rule   `koanf:"rules"`
	Datasets struct {
		Backoffice string `koanf:"backoffice"`
		Support    string `koanf:"support"`
	} `koanf:"datasets"`
}

type rule struct {
	Keyword   string `koanf:"keyword"`
	Partition string `koanf:"partition"` // "scheduled" or "technical"
}

// Load loads the configuration from .env files, environment variables and the
// optional YAML file named by OPSRECON_CONFIG.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory first
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	// 3. Resolve data paths
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	logDir := filepath.Join(dataPath, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Warn().Err(err).Str("path", logDir).Msg("Failed to create log directory")
	}

	cfg := &AppConfig{
		DataPath:         dataPath,
		LogDir:           logDir,
		ScheduledDataset: getEnv("DATASET_BACKOFFICE", "backoffice"),
		TechnicalDataset: getEnv("DATASET_SUPPORT", "support"),
		Roster:           defaultRoster,
	}

	// 4. Optional YAML file: roster, rules, dataset names
	if path := os.Getenv("OPSRECON_CONFIG"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, fmt.Errorf("failed to load config file %q: %w", path, err)
		}
		log.Debug().Str("path", path).Msg("Applied YAML configuration")
	}

	return cfg, nil
}

func (c *AppConfig) applyFile(path string) error {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return err
	}

	var fc fileConfig
	if err := k.UnmarshalWithConf("", &fc, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return err
	}

	if len(fc.Roster) > 0 {
		c.Roster = fc.Roster
	}
	if fc.Datasets.Backoffice != "" {
		c.ScheduledDataset = fc.Datasets.Backoffice
	}
	if fc.Datasets.Support != "" {
		c.TechnicalDataset = fc.Datasets.Support
	}
	for _, r := range fc.Rules {
		if r.Keyword == "" {
			continue
		}
		c.Rules = append(c.Rules, recon.Rule{
			Keyword:   r.Keyword,
			Scheduled: r.Partition == "scheduled",
		})
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
