package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/rhyrak/section-planner/internal/scheduler"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env  string
	Port int

	Log       LogConfig
	CORS      CORSConfig
	Scheduler *scheduler.Configuration
	// Request is the run the CLI performs; the server takes requests over HTTP.
	Request scheduler.Request
}

type LogConfig struct {
	Level  string
	Format string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	delim, err := parseDelimiter(v.GetString("CSV_DELIMITER"))
	if err != nil {
		return nil, err
	}
	cfg.Scheduler = &scheduler.Configuration{
		CatalogFile:      v.GetString("CATALOG_FILE"),
		ExportFile:       v.GetString("EXPORT_FILE"),
		CombinationsFile: v.GetString("COMBINATIONS_FILE"),
		WorkbookFile:     v.GetString("WORKBOOK_FILE"),
		Delimiter:        delim,
		BucketWidth:      v.GetInt("BUCKET_WIDTH"),
		DeadHourWeight:   v.GetInt("DEAD_HOUR_WEIGHT"),
		BoundaryPenalty:  v.GetInt("BOUNDARY_PENALTY"),
		PreferredBonus:   v.GetInt("PREFERRED_BONUS"),
	}
	if err := cfg.Scheduler.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scheduler configuration: %w", err)
	}

	cfg.Request = scheduler.Request{
		Courses:   splitAndTrim(v.GetString("COURSES")),
		Blacklist: splitAndTrim(v.GetString("BLACKLIST")),
		Preferred: splitAndTrim(v.GetString("PREFERRED")),
		StartHour: v.GetInt("START_HOUR"),
		EndHour:   v.GetInt("END_HOUR"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := scheduler.NewDefaultConfiguration()

	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("CATALOG_FILE", defaults.CatalogFile)
	v.SetDefault("EXPORT_FILE", defaults.ExportFile)
	v.SetDefault("COMBINATIONS_FILE", defaults.CombinationsFile)
	v.SetDefault("WORKBOOK_FILE", defaults.WorkbookFile)
	v.SetDefault("CSV_DELIMITER", string(defaults.Delimiter))
	v.SetDefault("BUCKET_WIDTH", defaults.BucketWidth)
	v.SetDefault("DEAD_HOUR_WEIGHT", defaults.DeadHourWeight)
	v.SetDefault("BOUNDARY_PENALTY", defaults.BoundaryPenalty)
	v.SetDefault("PREFERRED_BONUS", defaults.PreferredBonus)

	v.SetDefault("COURSES", "")
	v.SetDefault("BLACKLIST", "")
	v.SetDefault("PREFERRED", "")
	v.SetDefault("START_HOUR", 7)
	v.SetDefault("END_HOUR", 22)
}

func parseDelimiter(raw string) (rune, error) {
	if raw == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(raw) != 1 {
		return 0, fmt.Errorf("CSV_DELIMITER must be a single character, got %q", raw)
	}
	r, _ := utf8.DecodeRuneInString(raw)
	return r, nil
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
