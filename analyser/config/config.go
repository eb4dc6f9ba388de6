package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Level is a diagnostic log level, yaml-decodable from its lowercase name.
type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *Level) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "debug":
		*l = LevelDebug
	case "info":
		*l = LevelInfo
	case "warn":
		*l = LevelWarn
	case "error":
		*l = LevelError
	default:
		return fmt.Errorf("config: unknown log level %q", s)
	}
	return nil
}

// Config is the analyser's run configuration.
type Config struct {
	// PlaceholderOp is the operator name graph.DetectInputs treats as a
	// graph input marker.
	PlaceholderOp string `yaml:"placeholder_op"`
	// LogLevel gates telemetry.Logger output.
	LogLevel Level `yaml:"log_level"`
}

// Default returns the configuration op.Placeholder and the rest of
// package op were written against.
func Default() Config {
	return Config{PlaceholderOp: "Placeholder", LogLevel: LevelInfo}
}

// Load decodes a Config from YAML, starting from Default() so a partial
// document only overrides the fields it sets.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}
