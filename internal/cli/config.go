package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	fediskema "github.com/reoring/fediskema"
)

// fileConfig is the YAML shape of --config.
type fileConfig struct {
	Mode          string `yaml:"mode"`
	Unknown       string `yaml:"unknown"`
	DuplicateKeys string `yaml:"duplicate_keys"`
	MaxDepth      int    `yaml:"max_depth"`
	MaxBytes      int64  `yaml:"max_bytes"`
	MaxNesting    int    `yaml:"max_nesting"`
	FailFast      bool   `yaml:"fail_fast"`
}

func loadConfig(path string) (fileConfig, error) {
	var fc fileConfig
	if path == "" {
		return fc, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fc, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, nil
}

// parseOpt maps the config to fediskema options.
func (fc fileConfig) parseOpt() (fediskema.ParseOpt, error) {
	opt := fediskema.ParseOpt{
		MaxDepth:   fc.MaxDepth,
		MaxBytes:   fc.MaxBytes,
		MaxNesting: fc.MaxNesting,
		FailFast:   fc.FailFast,
	}
	var err error
	if opt.Mode, err = parseMode(fc.Mode); err != nil {
		return opt, err
	}
	if opt.Unknown, err = parseUnknown(fc.Unknown); err != nil {
		return opt, err
	}
	if opt.Strictness.OnDuplicateKey, err = parseSeverity(fc.DuplicateKeys); err != nil {
		return opt, err
	}
	return opt, nil
}

func parseMode(s string) (fediskema.Mode, error) {
	switch strings.ToLower(s) {
	case "", "strict":
		return fediskema.ModeStrict, nil
	case "lenient":
		return fediskema.ModeLenient, nil
	}
	return 0, fmt.Errorf("invalid mode %q (want strict|lenient)", s)
}

func parseUnknown(s string) (fediskema.UnknownPolicy, error) {
	switch strings.ToLower(s) {
	case "", "strip":
		return fediskema.UnknownStrip, nil
	case "passthrough":
		return fediskema.UnknownPassthrough, nil
	case "strict":
		return fediskema.UnknownStrict, nil
	}
	return 0, fmt.Errorf("invalid unknown-key policy %q (want strip|passthrough|strict)", s)
}

func parseSeverity(s string) (fediskema.Severity, error) {
	switch strings.ToLower(s) {
	case "", "ignore":
		return fediskema.Ignore, nil
	case "warn":
		return fediskema.Warn, nil
	case "error":
		return fediskema.Error, nil
	}
	return 0, fmt.Errorf("invalid duplicate-key severity %q (want ignore|warn|error)", s)
}
