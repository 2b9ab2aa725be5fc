package config

import (
	"os"
	"strconv"

	"github.com/alexanderramin/cooked/internal/calendar"
)

// Config holds settings for the CLI and the exported calendar.
type Config struct {
	CalendarName  string
	ProductID     string
	UIDDomain     string
	TimezoneLabel string
	OutputPath    string
	LogUseCases   bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	w := calendar.DefaultWriterOptions()
	return Config{
		CalendarName: w.CalendarName,
		ProductID:    w.ProductID,
		UIDDomain:    w.UIDDomain,
		OutputPath:   calendar.FileName,
	}
}

// LoadConfig reads configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("COOKED_CALENDAR_NAME"); v != "" {
		cfg.CalendarName = v
	}
	if v := os.Getenv("COOKED_PRODUCT_ID"); v != "" {
		cfg.ProductID = v
	}
	if v := os.Getenv("COOKED_UID_DOMAIN"); v != "" {
		cfg.UIDDomain = v
	}
	if v := os.Getenv("COOKED_TIMEZONE_LABEL"); v != "" {
		cfg.TimezoneLabel = v
	}
	if v := os.Getenv("COOKED_OUTPUT"); v != "" {
		cfg.OutputPath = v
	}
	if v := os.Getenv("COOKED_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}

	return cfg
}

// WriterOptions returns the calendar envelope settings.
func (c Config) WriterOptions() calendar.WriterOptions {
	return calendar.WriterOptions{
		ProductID:    c.ProductID,
		CalendarName: c.CalendarName,
		TimeZone:     c.TimezoneLabel,
		UIDDomain:    c.UIDDomain,
	}
}
