// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config provides configuration loading for the timespan
//              tools with TOML and YAML support, environment overrides,
//              file discovery and rule based validation.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.2.0: Adapted for the timespan module

/*
Package config provides configuration management for the timespan tools.

Key Features:
  - TOML (BurntSushi/toml) and YAML (yaml.v3) with detection by extension
  - Dot-notation access with typed getters and defaults
  - Environment overrides: PREFIX_SECTION_KEY wins over the file value
  - Discovery across an ordered list of directories and base names
  - Rule based validation returning structured errors

# Loading

	cfg, err := mdwconfig.LoadWithOptions("timespan.toml", mdwconfig.LoadOptions{
		EnvPrefix: "TIMESPAN",
		Defaults: map[string]interface{}{
			"format.default": "%r%h:%i:%s",
			"cache.size":     256,
		},
	})
	if err != nil {
		return err
	}

	template := cfg.GetString("format.default")
	ttl := cfg.GetDuration("cache.ttl", 10*time.Minute)

With EnvPrefix "TIMESPAN", the variable TIMESPAN_FORMAT_DEFAULT overrides
format.default. Without a prefix the environment is not consulted.

# Discovery

	cfg, err := mdwconfig.Discover(mdwconfig.DefaultDiscoveryOptions())

DefaultDiscoveryOptions searches ./timespan.{toml,yaml,yml},
./config.{toml,yaml,yml} and then the same names below
$HOME/.config/timespan. A missing file yields an empty configuration.

# Validation

	rules := mdwconfig.ValidationRules{
		"log.level":  {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "error"}},
		"cache.size": {Type: "int", Min: mdwconfig.Bound(0)},
	}
	if err := cfg.Validate(rules).Err(); err != nil {
		return err
	}
*/
package config
