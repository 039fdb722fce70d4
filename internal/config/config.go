package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	calc "Surya/internal/calc"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	TLSCert         string
	TLSKey          string
	LogLevel        string
	CORSOrigin      string
	RateLimitRPS    float64
	RateLimitBurst  int
	ShutdownTimeout time.Duration
	Business        string
	BusinessPhone   string
	PDFFontFile     string
	Assumptions     calc.Assumptions
}

// TLS reports whether both certificate files are configured.
func (c Config) TLS() bool { return c.TLSCert != "" && c.TLSKey != "" }

// Load reads the optional .env files, then the process environment.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, applying defaults for unset keys.
func FromEnv(getenv func(string) string) (Config, error) {
	p := parser{getenv: getenv}
	cfg := Config{
		Addr:            p.str("HTTP_ADDR", ":8080"),
		TLSCert:         p.str("TLS_CERT", ""),
		TLSKey:          p.str("TLS_KEY", ""),
		LogLevel:        p.str("LOG_LEVEL", "info"),
		CORSOrigin:      p.str("CORS_ORIGIN", "*"),
		RateLimitRPS:    p.float("RATE_LIMIT_RPS", 5),
		RateLimitBurst:  p.int("RATE_LIMIT_BURST", 10),
		ShutdownTimeout: p.duration("SHUTDOWN_TIMEOUT", 5*time.Second),
		Business:        p.str("BUSINESS_NAME", "Surya Solar & Chakki"),
		BusinessPhone:   p.str("BUSINESS_PHONE", "9277302997"),
		PDFFontFile:     p.str("PDF_FONT_FILE", ""),
	}

	a := calc.DefaultAssumptions
	a.SolarUnitsPerKWMonth = p.float("SOLAR_UNITS_PER_KW_MONTH", a.SolarUnitsPerKWMonth)
	a.SolarTariff = p.float("SOLAR_TARIFF", a.SolarTariff)
	a.ChakkiTariff = p.float("CHAKKI_TARIFF", a.ChakkiTariff)
	a.ProcessingFeePerKg = p.float("CHAKKI_PROCESSING_FEE", a.ProcessingFeePerKg)
	a.MiscMonthlyExpense = p.float("CHAKKI_MISC_EXPENSE", a.MiscMonthlyExpense)
	cfg.Assumptions = a

	if p.err != nil {
		return Config{}, p.err
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return Config{}, fmt.Errorf("rate limit must be positive")
	}
	if (cfg.TLSCert == "") != (cfg.TLSKey == "") {
		return Config{}, fmt.Errorf("TLS_CERT and TLS_KEY must be set together")
	}
	return cfg, nil
}

type parser struct {
	getenv func(string) string
	err    error
}

func (p *parser) str(key, def string) string {
	if v := strings.TrimSpace(p.getenv(key)); v != "" {
		return v
	}
	return def
}

func (p *parser) float(key string, def float64) float64 {
	v := strings.TrimSpace(p.getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.fail(key, v)
		return def
	}
	return f
}

func (p *parser) int(key string, def int) int {
	v := strings.TrimSpace(p.getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(key, v)
		return def
	}
	return n
}

func (p *parser) duration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(p.getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.fail(key, v)
		return def
	}
	return d
}

func (p *parser) fail(key, value string) {
	if p.err == nil {
		p.err = fmt.Errorf("invalid %s %q", key, value)
	}
}
