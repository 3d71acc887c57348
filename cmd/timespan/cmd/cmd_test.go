package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	mdwerror "github.com/msto63/timespan/foundation/core/error"
	"github.com/msto63/timespan/pkg/timespan"
)

// writeConfig writes a TOML config file into a temp dir
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timespan.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// resetFlags restores every flag of c and its children to its default
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, child := range c.Commands() {
		resetFlags(child)
	}
}

// run executes the CLI with a config file and returns stdout and stderr
func run(t *testing.T, config string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	resetFlags(rootCmd)
	current = defaultSettings()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--config=" + writeConfig(t, config)}, args...))

	err := Execute()
	return stdout.String(), stderr.String(), err
}

func TestFormatCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default template", []string{"format", "5430"}, "01:30:30"},
		{"negative", []string{"format", "--", "-90"}, "-00:01:30"},
		{"signed positive", []string{"format", "--signed", "90"}, "+00:01:30"},
		{"custom template", []string{"format", "-t", "%i min %s sec", "70"}, "01 min 10 sec"},
		{"hms", []string{"format", "--hms", "1,1.5,0"}, "01:01:30"},
		{"hours beyond a day", []string{"format", "97200"}, "27:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatCommand_Human(t *testing.T) {
	out, _, err := run(t, "", "format", "--human", "3661")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", out)
	}
	if lines[0] != "01:01:01" {
		t.Errorf("first line = %q, want %q", lines[0], "01:01:01")
	}
	if !strings.Contains(lines[1], "hour") {
		t.Errorf("second line = %q, want a spelled-out duration", lines[1])
	}
}

func TestFormatCommand_HumanHuge(t *testing.T) {
	out, _, err := run(t, "", "format", "--human", "1e10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "2777777:46:40\n115740 days, 17 hours, 46 minutes, and 40 seconds"
	if got := strings.TrimSpace(out); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestFormatCommand_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"not a number", []string{"format", "abc"}},
		{"missing value", []string{"format"}},
		{"both forms", []string{"format", "--hms", "1,0,0", "60"}},
		{"short hms", []string{"format", "--hms", "1,0"}},
		{"bad hms component", []string{"format", "--hms", "1,x,0"}},
		{"not a number literal", []string{"format", "NaN"}},
		{"infinity", []string{"format", "Inf"}},
		{"negative infinity", []string{"format", "--", "-Inf"}},
		{"out of float range", []string{"format", "1e999"}},
		{"infinite hms component", []string{"format", "--hms", "0,+Inf,0"}},
		{"hms overflowing", []string{"format", "--hms", "1e308,0,0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := run(t, "", tt.args...)
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
				t.Fatalf("expected CodeInvalidInput, got %v", err)
			}
			if ExitCode(err) != 2 {
				t.Errorf("ExitCode = %d, want 2", ExitCode(err))
			}
			if !strings.Contains(stderr, "Error:") {
				t.Errorf("stderr = %q, want an error line", stderr)
			}
		})
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default template", []string{"parse", "01:30:00"}, "5400"},
		{"negative", []string{"parse", "--", "-00:00:15"}, "-15"},
		{"signed template", []string{"parse", "--signed", "+01:00:00"}, "3600"},
		{"custom template", []string{"parse", "-t", "%R%s seconds", "+15 seconds"}, "15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseCommand_Mismatch(t *testing.T) {
	_, _, err := run(t, "", "parse", "1:30")

	var formatErr *timespan.InvalidFormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected InvalidFormatError, got %v", err)
	}
	if ExitCode(err) != 2 {
		t.Errorf("ExitCode = %d, want 2", ExitCode(err))
	}
}

func TestParseCommand_JSON(t *testing.T) {
	out, _, err := run(t, "", "parse", "--json", "--", "-27:30:05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got result
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}

	want := result{
		Seconds:      -99005,
		Hours:        27,
		Minutes:      30,
		Second:       5,
		TotalMinutes: 1650,
		Negative:     true,
		Formatted:    "-27:30:05",
		Signed:       "-27:30:05",
	}
	if got != want {
		t.Errorf("result = %+v, want %+v", got, want)
	}
}

func TestParseCommand_JSONHugeHours(t *testing.T) {
	out, _, err := run(t, "", "parse", "--json", "99999999999999999999:00:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got result
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if got.Hours < 1e19 || got.TotalMinutes < got.Hours || got.Negative {
		t.Errorf("result = %+v, want a non-negative decomposition beyond int64", got)
	}
}

func TestParseCommand_Units(t *testing.T) {
	out, _, err := run(t, "", "parse", "--units", "02:15:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"8100", "total minutes", "135", "+02:15:00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestValidateCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode mdwerror.Code
	}{
		{"valid template", []string{"validate", "%h:%i"}, ""},
		{"valid template and value", []string{"validate", "%h:%i", "12:30"}, ""},
		{"no placeholder", []string{"validate", "no placeholder"}, mdwerror.CodeInvalidTemplate},
		{"value mismatch", []string{"validate", "%h:%i", "12:30:00"}, mdwerror.CodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, "", tt.args...)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !strings.Contains(out, "valid") {
					t.Errorf("output = %q, want %q", out, "valid")
				}
				return
			}
			if !mdwerror.HasCode(err, tt.wantCode) {
				t.Errorf("expected %s, got %v", tt.wantCode, err)
			}
		})
	}
}

func TestDiffCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"same day", []string{"diff", "2026-10-19 08:00", "2026-10-19 17:30"}, "09:30:00"},
		{"unix seconds", []string{"diff", "--seconds", "@0", "@90"}, "90"},
		{"reversed signed", []string{"diff", "--signed", "@3600", "@0"}, "-01:00:00"},
		{"across days", []string{"diff", "2026-10-19", "2026-10-20T03:00:00Z"}, "27:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiffCommand_InvalidInstant(t *testing.T) {
	_, _, err := run(t, "", "diff", "yesterday", "@0")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Fatalf("expected CodeInvalidInput, got %v", err)
	}
}

func TestAddCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"single expression", []string{"add", "01:00:00", "+30 minutes"}, "01:30:00"},
		{"several expressions", []string{"add", "01:00:00", "+1 hour", "--", "-15 minutes", "30s"}, "01:45:30"},
		{"below zero", []string{"add", "--signed", "+00:10:00", "--", "-1 hour"}, "-00:50:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAddCommand_InvalidExpression(t *testing.T) {
	_, _, err := run(t, "", "add", "01:00:00", "soon")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Fatalf("expected CodeInvalidInput, got %v", err)
	}
}

func TestSumCommand(t *testing.T) {
	out, _, err := run(t, "", "sum", "01:15:00", "00:50:00", "00:00:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(out); got != "02:05:30" {
		t.Errorf("output = %q, want %q", got, "02:05:30")
	}

	out, _, err = run(t, "", "sum", "--signed", "+01:00:00", "--", "-02:00:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(out); got != "-01:00:00" {
		t.Errorf("output = %q, want %q", got, "-01:00:00")
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "timespan v") {
		t.Errorf("output = %q, want a version line", out)
	}
}

func TestConfigFile(t *testing.T) {
	config := `
[format]
default = "%h:%i"
signed = "%R%h:%i"

[cache]
size = 8
ttl = "5m"
`
	out, _, err := run(t, config, "format", "5400")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(out); got != "01:30" {
		t.Errorf("output = %q, want %q", got, "01:30")
	}
	if current.CacheSize != 8 {
		t.Errorf("CacheSize = %d, want 8", current.CacheSize)
	}
	if got := timespan.DefaultEngine().Config().MaxTemplates; got != 8 {
		t.Errorf("engine MaxTemplates = %d, want 8", got)
	}

	out, _, err = run(t, config, "format", "--signed", "5400")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(out); got != "+01:30" {
		t.Errorf("output = %q, want %q", got, "+01:30")
	}
}

func TestConfigEnvOverride(t *testing.T) {
	t.Setenv("TIMESPAN_FORMAT_DEFAULT", "%i:%s")

	out, _, err := run(t, "", "format", "90")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(out); got != "01:30" {
		t.Errorf("output = %q, want %q", got, "01:30")
	}
}

func TestConfigInvalid(t *testing.T) {
	tests := []struct {
		name   string
		config string
	}{
		{"unknown log level", "[log]\nlevel = \"loud\"\n"},
		{"negative cache size", "[cache]\nsize = -1\n"},
		{"template without placeholder", "[format]\ndefault = \"plain\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.config, "format", "60")
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
				t.Fatalf("expected CodeInvalidConfig, got %v", err)
			}
			if ExitCode(err) != 3 {
				t.Errorf("ExitCode = %d, want 3", ExitCode(err))
			}
		})
	}
}

func TestVerboseLogging(t *testing.T) {
	_, stderr, err := run(t, "", "--verbose", "--log-format=logfmt", "format", "60")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stderr, "configuration loaded") {
		t.Errorf("stderr = %q, want the debug log line", stderr)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain error", errors.New("boom"), 1},
		{"invalid input", mdwerror.New("x").WithCode(mdwerror.CodeInvalidInput), 2},
		{"not found", mdwerror.New("x").WithCode(mdwerror.CodeNotFound), 3},
		{"internal", mdwerror.New("x").WithCode(mdwerror.CodeInternal), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
