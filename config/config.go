package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultCheckoutPath = "/.netlify/functions/create-checkout-session"

// Config is everything the storefront needs at startup. It is built once and
// passed to constructors; nothing reads the environment after Load returns.
type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	DBPath   string

	SessionSecret []byte
	SessionTTL    time.Duration

	StoreName    string
	PublicOrigin string

	// OrderEndpoint empty means orders go to the per-session local log.
	OrderEndpoint    string
	CheckoutEndpoint string

	TaxRate    float64
	TipPresets []float64
	// PriceMap maps menu item ids to price references in the payment system.
	PriceMap map[string]string

	SubmitTimeout time.Duration
	PickupStart   string
	PickupEnd     string
}

// Load reads the environment, after loading a .env file if one is present.
func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function so tests don't touch the process environment.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return fallback
	}

	cfg := &Config{
		Port:          get("PORT", "8080"),
		GinMode:       get("GIN_MODE", "debug"),
		LogLevel:      get("LOG_LEVEL", "info"),
		DBPath:        get("DB_PATH", "suite46.db"),
		SessionSecret: []byte(get("SESSION_SECRET", "suite46_storefront_dev_secret")),
		StoreName:     get("STORE_NAME", "Suite 46"),
		PublicOrigin:  strings.TrimRight(get("PUBLIC_ORIGIN", "http://localhost:8080"), "/"),
		OrderEndpoint: get("ORDER_ENDPOINT", ""),
		PickupStart:   get("PICKUP_START", "12:00"),
		PickupEnd:     get("PICKUP_END", "16:00"),
	}

	var err error
	if cfg.SessionTTL, err = time.ParseDuration(get("SESSION_TTL", "24h")); err != nil {
		return nil, fmt.Errorf("SESSION_TTL: %w", err)
	}
	if cfg.SubmitTimeout, err = time.ParseDuration(get("SUBMIT_TIMEOUT", "15s")); err != nil {
		return nil, fmt.Errorf("SUBMIT_TIMEOUT: %w", err)
	}
	if cfg.SubmitTimeout <= 0 {
		return nil, errors.New("SUBMIT_TIMEOUT must be positive")
	}
	if cfg.TaxRate, err = strconv.ParseFloat(get("TAX_RATE", "0.07"), 64); err != nil {
		return nil, fmt.Errorf("TAX_RATE: %w", err)
	}
	if cfg.TaxRate < 0 {
		return nil, errors.New("TAX_RATE cannot be negative")
	}
	if cfg.TipPresets, err = ParseTipPresets(get("TIP_PRESETS", "0,0.1,0.15,0.2")); err != nil {
		return nil, fmt.Errorf("TIP_PRESETS: %w", err)
	}
	if cfg.PriceMap, err = ParsePriceMap(get("PRICE_MAP", "")); err != nil {
		return nil, fmt.Errorf("PRICE_MAP: %w", err)
	}
	if cfg.CheckoutEndpoint, err = resolveEndpoint(cfg.PublicOrigin, get("CHECKOUT_SESSION_ENDPOINT", defaultCheckoutPath)); err != nil {
		return nil, fmt.Errorf("CHECKOUT_SESSION_ENDPOINT: %w", err)
	}
	return cfg, nil
}

// ParseTipPresets parses a comma separated list of tip rates such as "0,0.1,0.15".
func ParseTipPresets(raw string) ([]float64, error) {
	var presets []float64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		rate, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, err
		}
		if rate < 0 || rate > 1 {
			return nil, fmt.Errorf("tip rate %v out of range [0,1]", rate)
		}
		presets = append(presets, rate)
	}
	if len(presets) == 0 {
		return nil, errors.New("at least one tip preset is required")
	}
	return presets, nil
}

// ParsePriceMap parses "item_id=price_ref,item_id=price_ref".
func ParsePriceMap(raw string) (map[string]string, error) {
	m := map[string]string{}
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		id, ref, ok := strings.Cut(pair, "=")
		id, ref = strings.TrimSpace(id), strings.TrimSpace(ref)
		if !ok || id == "" || ref == "" {
			return nil, fmt.Errorf("malformed entry %q, want item_id=price_ref", pair)
		}
		m[id] = ref
	}
	return m, nil
}

// resolveEndpoint turns a path-only endpoint into an absolute URL on the public origin.
func resolveEndpoint(origin, endpoint string) (string, error) {
	ref, err := url.Parse(endpoint)
	if err != nil {
		return "", err
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}
	base, err := url.Parse(origin)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}
