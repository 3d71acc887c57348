// File: validation.go
// Title: Configuration Validation Implementation
// Description: Implements rule based validation for configuration values:
//              required keys, expected types, numeric bounds and allowed
//              string values.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Reduced to the checks the CLI settings need, validation
//                       no longer mutates the configuration

package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	mdwerror "github.com/msto63/timespan/foundation/core/error"
)

// ValidationRule describes the constraints for a single key
type ValidationRule struct {
	Required bool     // Key must be present
	Type     string   // string, int, bool, float or duration
	Min      *float64 // Inclusive lower bound for numeric values
	Max      *float64 // Inclusive upper bound for numeric values
	OneOf    []string // Allowed values for strings, compared case-insensitively
}

// ValidationRules maps dot-notation keys to their rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err converts a failed result into a structured error, nil when valid
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return mdwerror.New("configuration validation failed: "+strings.Join(r.Errors, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("errors", r.Errors)
}

// Bound is a helper for the Min and Max fields of a rule
func Bound(v float64) *float64 {
	return &v
}

// Validate checks the configuration against rules. Keys are checked in
// sorted order so error messages are stable.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := &ValidationResult{
		Valid:  true,
		Errors: make([]string, 0),
	}

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}

	return result
}

// validateField validates a single configuration field
func (c *Config) validateField(key string, rule ValidationRule) error {
	value := c.getValue(key)
	if value == nil {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	number, isNumber := toFloat(value)

	switch rule.Type {
	case "":
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("field '%s' must be a string, got %T", key, value)
		}
	case "int":
		if !isNumber || number != float64(int64(number)) {
			return fmt.Errorf("field '%s' must be an integer, got %v", key, value)
		}
	case "float":
		if !isNumber {
			return fmt.Errorf("field '%s' must be a number, got %T", key, value)
		}
	case "bool":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("field '%s' must be a boolean, got %T", key, value)
		}
	case "duration":
		if s, ok := value.(string); ok {
			d, err := time.ParseDuration(s)
			if err != nil {
				return fmt.Errorf("field '%s' is not a valid duration: %v", key, err)
			}
			number, isNumber = d.Seconds(), true
		} else if !isNumber {
			return fmt.Errorf("field '%s' must be a duration, got %T", key, value)
		}
	default:
		return fmt.Errorf("field '%s' has unknown rule type '%s'", key, rule.Type)
	}

	if isNumber {
		if rule.Min != nil && number < *rule.Min {
			return fmt.Errorf("field '%s' value %v is less than minimum %v", key, number, *rule.Min)
		}
		if rule.Max != nil && number > *rule.Max {
			return fmt.Errorf("field '%s' value %v is greater than maximum %v", key, number, *rule.Max)
		}
	}

	if len(rule.OneOf) > 0 {
		s, _ := value.(string)
		for _, allowed := range rule.OneOf {
			if strings.EqualFold(strings.TrimSpace(s), allowed) {
				return nil
			}
		}
		return fmt.Errorf("field '%s' value '%v' must be one of: %s", key, value, strings.Join(rule.OneOf, ", "))
	}

	return nil
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
