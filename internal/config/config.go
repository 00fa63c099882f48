// Package config holds the tunable card parameters and their sources.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Default parameter values.
const (
	DefaultBlobCount = 7
	DefaultBlurMax   = 80.0
	DefaultGrain     = 55.0
)

// Environment variables read by WithEnv.
const (
	EnvBlobs   = "MINDLOG_BLOBS"
	EnvBlur    = "MINDLOG_BLUR"
	EnvGrain   = "MINDLOG_GRAIN"
	EnvOutputs = "MINDLOG_OUTPUTS"
)

// Params are the knobs that shape a generated card.
type Params struct {
	// BlobCount is the number of blobs per card.
	BlobCount int `json:"blob_count"`

	// BlurMax is the blur ceiling in pixels; each blob samples [0.35*BlurMax, BlurMax].
	BlurMax float64 `json:"blur_max"`

	// Grain is the grain intensity as a percentage; the overlay opacity is Grain/100.
	Grain float64 `json:"grain"`
}

// Defaults returns the default parameters.
func Defaults() Params {
	return Params{
		BlobCount: DefaultBlobCount,
		BlurMax:   DefaultBlurMax,
		Grain:     DefaultGrain,
	}
}

// GrainOpacity returns the overlay opacity in [0,1].
func (p Params) GrainOpacity() float64 {
	return p.Grain / 100
}

// Validate checks that every parameter is in range.
func (p Params) Validate() error {
	if p.BlobCount <= 0 {
		return fmt.Errorf("blob count must be positive, got %d", p.BlobCount)
	}
	if !finite(p.BlurMax) || p.BlurMax <= 0 {
		return fmt.Errorf("blur ceiling must be positive, got %g", p.BlurMax)
	}
	if !finite(p.Grain) || p.Grain < 0 || p.Grain > 100 {
		return fmt.Errorf("grain must be between 0 and 100, got %g", p.Grain)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Config is the resolved application configuration.
type Config struct {
	Params  Params
	Outputs []string
}

// Builder assembles a Config from defaults, the environment and explicit overrides.
type Builder struct {
	config    Config
	useEnv    bool
	lookup    func(string) (string, bool)
	overrides []func(*Params)
}

// NewBuilder creates a Builder seeded with defaults.
func NewBuilder() *Builder {
	return &Builder{
		config: Config{
			Params:  Defaults(),
			Outputs: []string{"png"},
		},
		lookup: os.LookupEnv,
	}
}

// WithEnvConfig loads overrides from MINDLOG_* environment variables.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithLookup replaces the environment lookup (useful for testing).
func (b *Builder) WithLookup(lookup func(string) (string, bool)) *Builder {
	b.lookup = lookup
	return b
}

// WithOverrides applies fn to the parameters after the environment is read.
func (b *Builder) WithOverrides(fn func(*Params)) *Builder {
	b.overrides = append(b.overrides, fn)
	return b
}

// Build resolves the configuration and validates the final parameters.
func (b *Builder) Build() (Config, error) {
	cfg := b.config

	if b.useEnv {
		if v, ok := b.lookup(EnvBlobs); ok && v != "" {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return Config{}, fmt.Errorf("invalid %s: %w", EnvBlobs, err)
			}
			cfg.Params.BlobCount = n
		}
		if v, ok := b.lookup(EnvBlur); ok && v != "" {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return Config{}, fmt.Errorf("invalid %s: %w", EnvBlur, err)
			}
			cfg.Params.BlurMax = f
		}
		if v, ok := b.lookup(EnvGrain); ok && v != "" {
			f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return Config{}, fmt.Errorf("invalid %s: %w", EnvGrain, err)
			}
			cfg.Params.Grain = f
		}
		if v, ok := b.lookup(EnvOutputs); ok && v != "" {
			cfg.Outputs = parseList(v)
		}
	}

	for _, fn := range b.overrides {
		fn(&cfg.Params)
	}

	if err := cfg.Params.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// parseList splits a comma-separated list, dropping blanks.
func parseList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
