package cmd

import (
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	mdwconfig "github.com/msto63/timespan/foundation/core/config"
	mdwerror "github.com/msto63/timespan/foundation/core/error"
	mdwlog "github.com/msto63/timespan/foundation/core/log"
	"github.com/msto63/timespan/pkg/timespan"
)

const envPrefix = "TIMESPAN"

// settings is the resolved configuration of one CLI run
type settings struct {
	ConfigFile    string
	DefaultFormat string
	SignedFormat  string
	LogLevel      mdwlog.Level
	LogFormat     mdwlog.Format
	CacheSize     int
	CacheTTL      time.Duration
}

var (
	current = defaultSettings()
	logger  = mdwlog.Discard()
)

var configDefaults = map[string]interface{}{
	"format.default": timespan.DefaultFormat,
	"format.signed":  timespan.TimeWithSignFormat,
	"log.level":      "warn",
	"log.format":     "console",
	"cache.size":     256,
	"cache.ttl":      "30m",
}

var configRules = mdwconfig.ValidationRules{
	"format.default": {Type: "string"},
	"format.signed":  {Type: "string"},
	"log.level":      {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "warning", "error", "fatal"}},
	"log.format":     {Type: "string", OneOf: []string{"json", "text", "console", "logfmt"}},
	"cache.size":     {Type: "int", Min: mdwconfig.Bound(0)},
	"cache.ttl":      {Type: "duration", Min: mdwconfig.Bound(0)},
}

func defaultSettings() *settings {
	return &settings{
		DefaultFormat: timespan.DefaultFormat,
		SignedFormat:  timespan.TimeWithSignFormat,
		LogLevel:      mdwlog.LevelWarn,
		LogFormat:     mdwlog.FormatConsole,
		CacheSize:     256,
		CacheTTL:      30 * time.Minute,
	}
}

// loadConfig reads the explicit config file or discovers one
func loadConfig(path string) (*mdwconfig.Config, error) {
	if path != "" {
		return mdwconfig.LoadWithOptions(path, mdwconfig.LoadOptions{
			Format:    mdwconfig.FormatAuto,
			EnvPrefix: envPrefix,
			Defaults:  configDefaults,
		})
	}

	options := mdwconfig.DefaultDiscoveryOptions()
	options.EnvPrefix = envPrefix
	options.Defaults = configDefaults
	return mdwconfig.Discover(options)
}

// settingsFromConfig validates cfg and converts it into settings
func settingsFromConfig(cfg *mdwconfig.Config) (*settings, error) {
	if err := cfg.Validate(configRules).Err(); err != nil {
		return nil, err
	}

	s := defaultSettings()
	s.ConfigFile = cfg.FilePath()
	s.DefaultFormat = cfg.GetString("format.default", s.DefaultFormat)
	s.SignedFormat = cfg.GetString("format.signed", s.SignedFormat)
	s.CacheSize = cfg.GetInt("cache.size", s.CacheSize)
	s.CacheTTL = cfg.GetDuration("cache.ttl", s.CacheTTL)

	level, err := mdwlog.ParseLevel(cfg.GetString("log.level"))
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log level").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("cmd.settingsFromConfig")
	}
	s.LogLevel = level

	format, err := mdwlog.ParseFormat(cfg.GetString("log.format"))
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid log format").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("cmd.settingsFromConfig")
	}
	s.LogFormat = format

	for _, key := range []string{"format.default", "format.signed"} {
		if tpl := cfg.GetString(key); !timespan.IsValidTemplate(tpl) {
			return nil, mdwerror.New("template has no placeholder").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("cmd.settingsFromConfig").
				WithDetail("key", key).
				WithDetail("template", tpl)
		}
	}

	return s, nil
}

// setup runs before every command: it resolves settings, builds the logger
// and installs the template engine.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}

	s, err := settingsFromConfig(cfg)
	if err != nil {
		return err
	}

	if verbose {
		s.LogLevel = mdwlog.LevelDebug
	}
	if logFormat != "" {
		format, err := mdwlog.ParseFormat(logFormat)
		if err != nil {
			return mdwerror.Wrap(err, "invalid --log-format").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("cmd.setup")
		}
		s.LogFormat = format
	}

	logger = mdwlog.NewWithConfig(mdwlog.Config{
		Level:  s.LogLevel,
		Format: s.LogFormat,
		Output: cmd.ErrOrStderr(),
		Name:   "timespan",
	}).WithCorrelationID(uuid.NewString()).WithField("command", cmd.Name())
	mdwlog.SetDefault(logger)

	timespan.SetDefaultEngine(timespan.NewEngine(timespan.EngineConfig{
		TTL:          s.CacheTTL,
		MaxTemplates: s.CacheSize,
	}).WithLogger(logger))

	current = s
	logger.Debug("configuration loaded", mdwlog.Fields{
		"config":         s.ConfigFile,
		"default_format": s.DefaultFormat,
		"signed_format":  s.SignedFormat,
		"cache_size":     s.CacheSize,
		"cache_ttl":      s.CacheTTL.String(),
	})

	return nil
}

// resolveTemplate picks the explicit template, else the configured signed
// or default template
func resolveTemplate(template string, signed bool) string {
	switch {
	case template != "":
		return template
	case signed:
		return current.SignedFormat
	default:
		return current.DefaultFormat
	}
}

// addTemplateFlags registers --template and --signed on cmd
func addTemplateFlags(cmd *cobra.Command, template *string, signed *bool) {
	cmd.Flags().StringVarP(template, "template", "t", "", "template (default: format.default from config)")
	cmd.Flags().BoolVar(signed, "signed", false, "use format.signed from config")
}
