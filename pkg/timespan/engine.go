// ============================================================================
// timespan - Signed durations with placeholder templates
// ============================================================================
//
// Package:     timespan
// Description: Template engine with a compiled template cache
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package timespan

import (
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"

	mdwlog "github.com/msto63/timespan/foundation/core/log"
)

// EngineConfig holds the template cache configuration
type EngineConfig struct {
	TTL             time.Duration // Expiration of a compiled template, 0 keeps templates forever
	CleanupInterval time.Duration // Purge interval for expired templates, 0 disables the janitor
	MaxTemplates    int           // Upper bound of cached templates, 0 is unlimited
}

// DefaultEngineConfig returns default engine configuration
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		TTL:             30 * time.Minute,
		CleanupInterval: time.Hour,
		MaxTemplates:    256,
	}
}

// Engine compiles templates on first use and keeps them in a cache keyed by
// template text. It is safe for concurrent use.
type Engine struct {
	cache  *cache.Cache
	config EngineConfig
	logger *mdwlog.Logger
}

// NewEngine creates a new engine
func NewEngine(cfg EngineConfig) *Engine {
	if cfg.TTL < 0 {
		cfg.TTL = 0
	}
	if cfg.MaxTemplates < 0 {
		cfg.MaxTemplates = 0
	}

	expiration := cfg.TTL
	if expiration == 0 {
		expiration = cache.NoExpiration
	}

	return &Engine{
		cache:  cache.New(expiration, cfg.CleanupInterval),
		config: cfg,
	}
}

// WithLogger returns a copy of the engine that traces compilation and parse
// failures at debug level. The copy shares the template cache.
func (e *Engine) WithLogger(logger *mdwlog.Logger) *Engine {
	clone := *e
	clone.logger = logger
	return &clone
}

// Config returns the engine configuration
func (e *Engine) Config() EngineConfig {
	return e.config
}

// Compile returns the compiled form of source, from the cache when present
func (e *Engine) Compile(source string) *Template {
	if cached, found := e.cache.Get(source); found {
		if tpl, ok := cached.(*Template); ok {
			return tpl
		}
	}

	tpl := Compile(source)

	if e.config.MaxTemplates > 0 && e.cache.ItemCount() >= e.config.MaxTemplates {
		e.cache.DeleteExpired()
	}
	if e.config.MaxTemplates == 0 || e.cache.ItemCount() < e.config.MaxTemplates {
		e.cache.Set(source, tpl, cache.DefaultExpiration)
	}

	if e.logger != nil {
		e.logger.Debug("template compiled", mdwlog.Fields{
			"template":     source,
			"placeholders": len(tpl.groups),
			"valid":        tpl.Valid(),
			"cached":       e.cache.ItemCount(),
		})
	}

	return tpl
}

// Format renders ts with template
func (e *Engine) Format(template string, ts Timespan) string {
	return e.Compile(template).Format(ts)
}

// Parse decodes text with template
func (e *Engine) Parse(template, text string) (*Timespan, error) {
	ts, err := e.Compile(template).Parse(text)
	if err != nil && e.logger != nil {
		e.logger.Debug("value rejected", mdwlog.Fields{
			"template": template,
			"value":    text,
		})
	}
	return ts, err
}

// IsValidTemplate reports whether template contains at least one placeholder
func (e *Engine) IsValidTemplate(template string) bool {
	return e.Compile(template).Valid()
}

// IsValidFormat reports whether value parses under template. It is false for
// templates without placeholders regardless of the value.
func (e *Engine) IsValidFormat(template, value string) bool {
	return e.Compile(template).Match(value)
}

// Len returns the number of cached templates
func (e *Engine) Len() int {
	return e.cache.ItemCount()
}

// Flush drops every cached template
func (e *Engine) Flush() {
	e.cache.Flush()
}

var defaultEngine atomic.Pointer[Engine]

func init() {
	defaultEngine.Store(NewEngine(EngineConfig{MaxTemplates: DefaultEngineConfig().MaxTemplates}))
}

// DefaultEngine returns the engine used by the package-level functions
func DefaultEngine() *Engine {
	return defaultEngine.Load()
}

// SetDefaultEngine replaces the engine used by the package-level functions
func SetDefaultEngine(e *Engine) {
	if e != nil {
		defaultEngine.Store(e)
	}
}

// Format renders ts with template using the default engine
func Format(template string, ts Timespan) string {
	return DefaultEngine().Format(template, ts)
}

// Parse decodes text with template using the default engine. It fails with
// *InvalidFormatError when text does not match.
func Parse(template, text string) (*Timespan, error) {
	return DefaultEngine().Parse(template, text)
}

// CreateFromFormat is Parse with the template first
func CreateFromFormat(template, value string) (*Timespan, error) {
	return Parse(template, value)
}

// IsValidTemplate reports whether template contains at least one placeholder
func IsValidTemplate(template string) bool {
	return DefaultEngine().IsValidTemplate(template)
}

// IsValidFormat reports whether value parses under template
func IsValidFormat(template, value string) bool {
	return DefaultEngine().IsValidFormat(template, value)
}
