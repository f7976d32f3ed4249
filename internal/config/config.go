package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/jengzang/vessel-intervals-go/internal/analysis"
	"github.com/jengzang/vessel-intervals-go/internal/logging"
	"github.com/jengzang/vessel-intervals-go/internal/ports"
)

// Config is the service configuration
type Config struct {
	Port      string
	LogLevel  slog.Level
	PortsFile string
	JWTSecret string // empty disables auth

	GapThreshold      time.Duration
	PortTagRadiusKm   float64
	DepartureRadiusKm float64
	DockedKm          float64
	ManeuveringKm     float64
	UndefinedBeyondKm float64

	MaxUploadBytes     int64
	RateLimitPerMinute int // 0 disables
}

// Load reads the environment, after merging a .env file when one exists
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds the configuration from a lookup function
func FromEnv(getenv func(string) string) (*Config, error) {
	p := parser{getenv: getenv}

	cfg := &Config{
		Port:      p.str("PORT", ":8080"),
		LogLevel:  logging.ParseLevel(p.str("LOG_LEVEL", "info")),
		PortsFile: p.str("PORTS_FILE", ""),
		JWTSecret: p.str("JWT_SECRET", ""),

		GapThreshold:      time.Duration(p.float("GAP_THRESHOLD_SECONDS", 0.6) * float64(time.Second)),
		PortTagRadiusKm:   p.float("PORT_TAG_RADIUS_KM", 5),
		DepartureRadiusKm: p.float("JOURNEY_DEPARTURE_RADIUS_KM", 3),
		DockedKm:          p.float("DOCKED_RADIUS_KM", 4),
		ManeuveringKm:     p.float("MANEUVERING_RADIUS_KM", 10),
		UndefinedBeyondKm: p.float("UNDEFINED_BEYOND_KM", 40),

		MaxUploadBytes:     int64(p.integer("MAX_UPLOAD_MB", 64)) << 20,
		RateLimitPerMinute: p.integer("RATE_LIMIT_PER_MINUTE", 60),
	}
	if p.err != nil {
		return nil, p.err
	}
	if cfg.MaxUploadBytes <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_MB must be positive")
	}
	if cfg.RateLimitPerMinute < 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative")
	}

	return cfg, nil
}

// AnalysisOptions maps the thresholds onto the pipeline options
func (c *Config) AnalysisOptions() analysis.Options {
	opts := analysis.DefaultOptions()
	opts.Segment.GapThreshold = c.GapThreshold
	opts.Segment.PortTagRadiusKm = c.PortTagRadiusKm
	opts.Thresholds.DockedKm = c.DockedKm
	opts.Thresholds.ManeuveringKm = c.ManeuveringKm
	opts.Thresholds.UndefinedBeyondKm = c.UndefinedBeyondKm
	opts.DepartureRadiusKm = c.DepartureRadiusKm
	return opts
}

// Catalog loads PORTS_FILE, or returns the built-in ports when unset
func (c *Config) Catalog() (*ports.Catalog, error) {
	if c.PortsFile == "" {
		return ports.Default(), nil
	}
	return ports.Load(c.PortsFile)
}

// parser keeps the first conversion error
type parser struct {
	getenv func(string) string
	err    error
}

func (p *parser) str(key, def string) string {
	if v := p.getenv(key); v != "" {
		return v
	}
	return def
}

func (p *parser) float(key string, def float64) float64 {
	v := p.getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.fail(fmt.Errorf("invalid %s %q: %w", key, v, err))
		return def
	}
	if f < 0 {
		p.fail(fmt.Errorf("invalid %s %q: must not be negative", key, v))
		return def
	}
	return f
}

func (p *parser) integer(key string, def int) int {
	v := p.getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(fmt.Errorf("invalid %s %q: %w", key, v, err))
		return def
	}
	return n
}

func (p *parser) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}
