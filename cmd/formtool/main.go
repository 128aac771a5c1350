package main

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"wedform/internal/config"
	"wedform/internal/engine"
	"wedform/internal/metadata"
)

const usage = `Usage:
  formtool form [role]                    print the form definition for a role as JSON
  formtool validate <role> <payload.json> validate a payload file against a role's form
  formtool roles                          list registered roles
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	reg := metadata.DefaultRegistry()
	if cfg.Catalog.Dir != "" {
		if err := metadata.LoadDir(cfg.Catalog.Dir, reg); err != nil {
			logger.Fatal("load catalog dir", zap.Error(err))
		}
	}
	factory := engine.NewFactory(reg)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	switch os.Args[1] {
	case "form":
		role := cfg.Catalog.DefaultRole
		if len(os.Args) >= 3 {
			role = os.Args[2]
		}
		form, err := factory.CreateForm(role)
		if err != nil {
			logger.Fatal("create form", zap.Error(err))
		}
		printJSON(form)

	case "validate":
		if len(os.Args) != 4 {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		form, err := factory.CreateForm(os.Args[2])
		if err != nil {
			logger.Fatal("create form", zap.Error(err))
		}
		payload, err := readPayload(os.Args[3])
		if err != nil {
			logger.Fatal("read payload", zap.Error(err))
		}
		result := engine.ValidateForm(form, payload)
		printJSON(result)
		if !result.Valid {
			os.Exit(1)
		}

	case "roles":
		printJSON(reg.Roles())

	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func readPayload(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("parse payload: %w", err)
	}
	return payload, nil
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "encode output: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
