package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/alexanderramin/puravida/internal/domain"
	"github.com/alexanderramin/puravida/internal/llm"
	"github.com/alexanderramin/puravida/internal/planner"
)

// EnvPrefix namespaces environment overrides, e.g. PURAVIDA_PROVIDER.
const EnvPrefix = "PURAVIDA"

// Keys recognised in the config file and environment.
const (
	KeyProvider        = "provider"
	KeyModel           = "model"
	KeyEndpoint        = "endpoint"
	KeyTemperature     = "temperature"
	KeyTimeoutMs       = "timeout_ms"
	KeyLogCalls        = "log_calls"
	KeyLogLevel        = "log_level"
	KeyDB              = "db"
	KeyWeddingLocation = "wedding.location"
	KeyWeddingDate     = "wedding.date"
	KeyWeddingSeason   = "wedding.season"
	// KeyWeddingDriveHours maps region names to drive hours from the venue.
	KeyWeddingDriveHours = "wedding.drive_hours"
)

// Config is the resolved runtime configuration.
type Config struct {
	LLM      llm.Config
	Wedding  planner.Wedding
	DBPath   string
	LogLevel slog.Level
	// File is the config file that was read, or "" when none was found.
	File string
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	def := llm.DefaultConfig()
	wedding := planner.DefaultWedding()

	v.SetDefault(KeyProvider, string(def.Provider))
	v.SetDefault(KeyModel, "")
	v.SetDefault(KeyEndpoint, "")
	v.SetDefault(KeyTemperature, def.Tasks[llm.TaskItinerary].Temperature)
	v.SetDefault(KeyTimeoutMs, def.TimeoutMs)
	v.SetDefault(KeyLogCalls, true)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyDB, "")
	v.SetDefault(KeyWeddingLocation, wedding.Location)
	v.SetDefault(KeyWeddingDate, wedding.Date)
	v.SetDefault(KeyWeddingSeason, wedding.Season)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile loads path, or ~/.puravida.yaml when path is empty. A missing
// default file is not an error; a missing explicit file is.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		v.AddConfigPath(home)
		v.SetConfigName(".puravida")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// Load resolves v into a Config. Credentials are looked up through lookup over
// llm.DefaultCredentialSources; pass os.Getenv in production.
func Load(v *viper.Viper, lookup func(string) string) (*Config, error) {
	cfg := llm.DefaultConfig()
	cfg.Provider = llm.Provider(strings.ToLower(strings.TrimSpace(v.GetString(KeyProvider))))
	cfg.Endpoint = strings.TrimSpace(v.GetString(KeyEndpoint))
	cfg.TimeoutMs = v.GetInt(KeyTimeoutMs)
	cfg.LogCalls = v.GetBool(KeyLogCalls)

	cfg.Model = strings.TrimSpace(v.GetString(KeyModel))
	if cfg.Model == "" && cfg.Provider == llm.ProviderOllama {
		cfg.Model = llm.DefaultOllamaModel
	} else if cfg.Model == "" {
		cfg.Model = llm.DefaultConfig().Model
	}

	temp := v.GetFloat64(KeyTemperature)
	if temp < 0 || temp > 2 {
		return nil, fmt.Errorf("%w: temperature must be within [0, 2], got %v", llm.ErrConfiguration, temp)
	}
	for task, tc := range cfg.Tasks {
		tc.Temperature = temp
		cfg.Tasks[task] = tc
	}

	if cfg.Provider == llm.ProviderGemini {
		cfg.APIKey, cfg.KeySource = llm.ResolveCredential(lookup, llm.DefaultCredentialSources)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, err := parseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, err
	}

	dbPath := v.GetString(KeyDB)
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".puravida", "calls.db")
	}

	wedding, err := loadWedding(v)
	if err != nil {
		return nil, err
	}

	return &Config{
		LLM:      cfg,
		Wedding:  wedding,
		DBPath:   dbPath,
		LogLevel: level,
		File:     v.ConfigFileUsed(),
	}, nil
}

// loadWedding resolves the wedding context. The built-in drive-hour table is
// measured from the default venue, so it is dropped when the location changes
// unless wedding.drive_hours supplies a replacement.
func loadWedding(v *viper.Viper) (planner.Wedding, error) {
	w := planner.DefaultWedding()
	location := strings.TrimSpace(v.GetString(KeyWeddingLocation))
	if location != w.Location {
		w.DriveHours = nil
	}
	w.Location = location
	w.Date = v.GetString(KeyWeddingDate)
	w.Season = v.GetString(KeyWeddingSeason)

	if !v.IsSet(KeyWeddingDriveHours) {
		return w, nil
	}
	raw := v.GetStringMapString(KeyWeddingDriveHours)
	hours := make(map[domain.Region]float64, len(raw))
	for name, value := range raw {
		region, err := domain.ParseRegion(name)
		if err != nil || region == domain.RegionAIDecide {
			return planner.Wedding{}, fmt.Errorf("%w: %s: unknown region %q", llm.ErrConfiguration, KeyWeddingDriveHours, name)
		}
		h, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || h < 0 {
			return planner.Wedding{}, fmt.Errorf("%w: %s: invalid hours %q for %s", llm.ErrConfiguration, KeyWeddingDriveHours, value, region)
		}
		hours[region] = h
	}
	w.DriveHours = hours
	return w, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", s, err)
	}
	return level, nil
}
