package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Vaaaaal/flyout-menu-control/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envContentPath = "FLYOUT_MENU_CONTENT"
	envWidth       = "FLYOUT_MENU_WIDTH"
	envHeight      = "FLYOUT_MENU_HEIGHT"
	envOpenMs      = "FLYOUT_MENU_OPEN_MS"
	envCloseMs     = "FLYOUT_MENU_CLOSE_MS"
	envNavTimeout  = "FLYOUT_MENU_NAV_TIMEOUT_MS"
	envTarget      = "FLYOUT_MENU_TARGET"
	envShowFooter  = "FLYOUT_MENU_FOOTER"
	envWatch       = "FLYOUT_MENU_WATCH"
	envVerbose     = "FLYOUT_MENU_VERBOSE"
	envTrace       = "FLYOUT_MENU_TRACE"
	envLogFile     = "FLYOUT_MENU_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("flyout-menu-control", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	contentPath := fs.String("content", envOrDefault(env, envContentPath, "testdata/menu.json"), "path to the CMS menu export file")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	openMs := fs.Int("open-ms", envOrInt(env, envOpenMs, 120), "panel open transition duration in milliseconds")
	closeMs := fs.Int("close-ms", envOrInt(env, envCloseMs, 80), "panel close transition duration in milliseconds")
	navTimeoutMs := fs.Int("nav-timeout-ms", envOrInt(env, envNavTimeout, 10000), "stall guard for a whole navigation sequence (0 disables)")
	target := fs.String("target", envOrDefault(env, envTarget, ""), "node id or name to navigate to on startup")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	watch := fs.Bool("watch", envOrBool(env, envWatch, true), "reload the menu when the content file changes")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for navigation requests")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *openMs < 0 || *closeMs < 0 {
		return Config{}, fmt.Errorf("transition durations must be >= 0 (got open %d, close %d)", *openMs, *closeMs)
	}
	if *navTimeoutMs < 0 {
		return Config{}, fmt.Errorf("nav timeout must be >= 0 (got %d)", *navTimeoutMs)
	}

	cfg := Config{
		App: app.Config{
			ContentPath:  *contentPath,
			Width:        *width,
			Height:       *height,
			OpenMs:       *openMs,
			CloseMs:      *closeMs,
			NavTimeoutMs: *navTimeoutMs,
			Target:       *target,
			ShowFooter:   *footer,
			Watch:        *watch,
			Verbose:      *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"content":      *contentPath,
			"width":        strconv.Itoa(*width),
			"height":       strconv.Itoa(*height),
			"openMs":       strconv.Itoa(*openMs),
			"closeMs":      strconv.Itoa(*closeMs),
			"navTimeoutMs": strconv.Itoa(*navTimeoutMs),
			"target":       *target,
			"footer":       strconv.FormatBool(*footer),
			"watch":        strconv.FormatBool(*watch),
			"trace":        strconv.FormatBool(*trace),
			"verbose":      strconv.FormatBool(*verbose),
			"logFile":      *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.ContentPath) == "" {
		return fmt.Errorf("content path must not be empty")
	}
	return nil
}
