package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const (
	defaultLogFormat     = LogFormatText
	defaultLogLevel      = slog.LevelInfo
	defaultToolMode      = ToolModeEcho
	defaultSnapshotLimit = 3
	defaultPrompt        = "hello mcp"
)

type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// ToolMode selects the invoker behind the mcp_tool step.
type ToolMode string

const (
	// ToolModeEcho answers locally without an MCP session.
	ToolModeEcho ToolMode = "echo"
	// ToolModeMCP routes every query through the in-process demo MCP server.
	ToolModeMCP ToolMode = "mcp"
)

// Config controls the demo driver. Every field has a working default.
type Config struct {
	LogFormat     LogFormat
	LogLevel      slog.Level
	ToolMode      ToolMode
	SnapshotLimit int
	Prompt        string
}

// Load reads optional overrides from environment variables.
func Load() (Config, error) {
	return load(os.LookupEnv)
}

func load(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if level, ok := lookupTrimmed(lookup, "MCPDEMO_LOG_LEVEL"); ok {
		parsed, err := parseLogLevel(level)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = parsed
	}
	if format, ok := lookupTrimmed(lookup, "MCPDEMO_LOG_FORMAT"); ok {
		parsed, err := parseLogFormat(format)
		if err != nil {
			return Config{}, err
		}
		cfg.LogFormat = parsed
	}
	if mode, ok := lookupTrimmed(lookup, "MCPDEMO_TOOL_MODE"); ok {
		cfg.ToolMode = ToolMode(strings.ToLower(mode))
	}
	if limit, ok := lookupTrimmed(lookup, "MCPDEMO_SNAPSHOT_LIMIT"); ok {
		parsed, err := strconv.Atoi(limit)
		if err != nil {
			return Config{}, fmt.Errorf("parse MCPDEMO_SNAPSHOT_LIMIT: %w", err)
		}
		cfg.SnapshotLimit = parsed
	}
	// The prompt is taken verbatim so that an explicitly empty query stays possible.
	if prompt, ok := lookup("MCPDEMO_PROMPT"); ok {
		cfg.Prompt = prompt
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func Default() Config {
	return Config{
		LogFormat:     defaultLogFormat,
		LogLevel:      defaultLogLevel,
		ToolMode:      defaultToolMode,
		SnapshotLimit: defaultSnapshotLimit,
		Prompt:        defaultPrompt,
	}
}

func (c Config) Validate() error {
	switch c.ToolMode {
	case ToolModeEcho, ToolModeMCP:
	default:
		return fmt.Errorf(
			"validate config: unsupported MCPDEMO_TOOL_MODE %q (allowed: %q, %q)",
			c.ToolMode,
			ToolModeEcho,
			ToolModeMCP,
		)
	}

	if c.SnapshotLimit <= 0 {
		return fmt.Errorf("validate config: MCPDEMO_SNAPSHOT_LIMIT must be > 0, got %d", c.SnapshotLimit)
	}

	switch c.LogLevel {
	case slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError:
	default:
		return fmt.Errorf(
			"validate config: unsupported MCPDEMO_LOG_LEVEL %q (allowed: %q, %q, %q, %q)",
			c.LogLevel.String(),
			slog.LevelDebug.String(),
			slog.LevelInfo.String(),
			slog.LevelWarn.String(),
			slog.LevelError.String(),
		)
	}

	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf(
			"validate config: unsupported MCPDEMO_LOG_FORMAT %q (allowed: %q, %q)",
			c.LogFormat,
			LogFormatText,
			LogFormatJSON,
		)
	}

	return nil
}

func lookupTrimmed(lookup func(string) (string, bool), key string) (string, bool) {
	value, ok := lookup(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

func parseLogLevel(input string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf(
			"parse MCPDEMO_LOG_LEVEL: unsupported value %q (allowed: %q, %q, %q, %q)",
			input,
			slog.LevelDebug.String(),
			slog.LevelInfo.String(),
			slog.LevelWarn.String(),
			slog.LevelError.String(),
		)
	}
}

func parseLogFormat(input string) (LogFormat, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case string(LogFormatText):
		return LogFormatText, nil
	case string(LogFormatJSON):
		return LogFormatJSON, nil
	default:
		return "", fmt.Errorf(
			"parse MCPDEMO_LOG_FORMAT: unsupported value %q (allowed: %q, %q)",
			input,
			LogFormatText,
			LogFormatJSON,
		)
	}
}
