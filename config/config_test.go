package config

import (
	"reflect"
	"testing"
	"time"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(nil))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != "8080" || cfg.StoreName != "Suite 46" || cfg.DBPath != "suite46.db" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.TaxRate != 0.07 {
		t.Errorf("TaxRate = %v", cfg.TaxRate)
	}
	if !reflect.DeepEqual(cfg.TipPresets, []float64{0, 0.1, 0.15, 0.2}) {
		t.Errorf("TipPresets = %v", cfg.TipPresets)
	}
	if cfg.SubmitTimeout != 15*time.Second || cfg.SessionTTL != 24*time.Hour {
		t.Errorf("timeouts = %v / %v", cfg.SubmitTimeout, cfg.SessionTTL)
	}
	if cfg.OrderEndpoint != "" {
		t.Errorf("OrderEndpoint should default to empty, got %q", cfg.OrderEndpoint)
	}
	if want := "http://localhost:8080/.netlify/functions/create-checkout-session"; cfg.CheckoutEndpoint != want {
		t.Errorf("CheckoutEndpoint = %q, want %q", cfg.CheckoutEndpoint, want)
	}
	if len(cfg.PriceMap) != 0 {
		t.Errorf("PriceMap = %v", cfg.PriceMap)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(map[string]string{
		"PUBLIC_ORIGIN":             "https://suite46.example/",
		"CHECKOUT_SESSION_ENDPOINT": "https://pay.example/sessions",
		"ORDER_ENDPOINT":            " https://script.example/exec ",
		"TAX_RATE":                  "0.0825",
		"PRICE_MAP":                 "tilapia_fries=price_1, water = price_2",
		"SUBMIT_TIMEOUT":            "5s",
	}))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.PublicOrigin != "https://suite46.example" {
		t.Errorf("PublicOrigin = %q", cfg.PublicOrigin)
	}
	if cfg.CheckoutEndpoint != "https://pay.example/sessions" {
		t.Errorf("CheckoutEndpoint = %q", cfg.CheckoutEndpoint)
	}
	if cfg.OrderEndpoint != "https://script.example/exec" {
		t.Errorf("OrderEndpoint = %q", cfg.OrderEndpoint)
	}
	if cfg.TaxRate != 0.0825 || cfg.SubmitTimeout != 5*time.Second {
		t.Errorf("TaxRate %v SubmitTimeout %v", cfg.TaxRate, cfg.SubmitTimeout)
	}
	want := map[string]string{"tilapia_fries": "price_1", "water": "price_2"}
	if !reflect.DeepEqual(cfg.PriceMap, want) {
		t.Errorf("PriceMap = %v", cfg.PriceMap)
	}
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad timeout", map[string]string{"SUBMIT_TIMEOUT": "soon"}},
		{"zero timeout", map[string]string{"SUBMIT_TIMEOUT": "0s"}},
		{"negative tax", map[string]string{"TAX_RATE": "-0.01"}},
		{"tip out of range", map[string]string{"TIP_PRESETS": "0,1.5"}},
		{"empty tips", map[string]string{"TIP_PRESETS": " , "}},
		{"malformed price map", map[string]string{"PRICE_MAP": "tilapia_fries"}},
		{"bad session ttl", map[string]string{"SESSION_TTL": "forever"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromEnv(lookupFrom(tt.env)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestResolveEndpoint(t *testing.T) {
	tests := []struct {
		origin, endpoint, want string
	}{
		{"https://s46.example", "/api/checkout", "https://s46.example/api/checkout"},
		{"https://s46.example", "https://other.example/x", "https://other.example/x"},
	}
	for _, tt := range tests {
		got, err := resolveEndpoint(tt.origin, tt.endpoint)
		if err != nil || got != tt.want {
			t.Errorf("resolveEndpoint(%q, %q) = %q, %v; want %q", tt.origin, tt.endpoint, got, err, tt.want)
		}
	}
}
