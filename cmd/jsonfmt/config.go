package main

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/d1ced/jsondoc"
)

// Environment variables read by jsonfmt. Flags take precedence over them,
// they take precedence over the config file.
const (
	envIndent   = "JSONFMT_INDENT"
	envCompact  = "JSONFMT_COMPACT"
	envConfig   = "JSONFMT_CONFIG"
	envLogLevel = "JSONFMT_LOG_LEVEL"
)

const maxIndentWidth = 16

// config controls how inputs are checked and written.
type config struct {
	// Indent is one level of indentation: a string of spaces and tabs, a
	// number of spaces or the word "tab".
	Indent   string `yaml:"indent"`
	Compact  bool   `yaml:"compact"`
	Check    bool   `yaml:"check"`
	Verify   bool   `yaml:"verify"`
	LogLevel string `yaml:"log_level"`
}

func defaultConfig() config {
	return config{
		Indent:   jsondoc.DefaultIndent,
		LogLevel: "info",
	}
}

// loadConfigFile overlays the YAML file at path onto c. Keys missing from
// the file keep their current value, unknown keys are an error.
func (c *config) loadConfigFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading config file")
	}
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrapf(err, "parsing config file %s", path)
	}
	return nil
}

// applyEnv overlays the JSONFMT_* variables found by lookup onto c.
func (c *config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(envIndent); ok {
		c.Indent = v
	}
	if v, ok := lookup(envCompact); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", envCompact)
		}
		c.Compact = b
	}
	if v, ok := lookup(envLogLevel); ok {
		c.LogLevel = v
	}
	return nil
}

// indent resolves the Indent setting to the string written per level.
func (c *config) indent() (string, error) {
	s := c.Indent
	if s == "tab" {
		return "\t", nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > maxIndentWidth {
			return "", errors.Errorf("indent width %d out of range [0, %d]", n, maxIndentWidth)
		}
		return strings.Repeat(" ", n), nil
	}
	if strings.Trim(s, " \t") != "" {
		return "", errors.Errorf("indent %q may only hold spaces and tabs", s)
	}
	return s, nil
}

func (c *config) validate() error {
	if _, err := c.indent(); err != nil {
		return err
	}
	if _, err := levelOption(c.LogLevel); err != nil {
		return err
	}
	if c.Compact && c.Check {
		return errors.New("compact and check are mutually exclusive")
	}
	return nil
}

func levelOption(name string) (level.Option, error) {
	switch name {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	}
	return nil, errors.Errorf("unknown log level %q", name)
}

func newLogger(w io.Writer, name string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	opt, err := levelOption(name)
	if err != nil {
		opt = level.AllowInfo()
	}
	logger = level.NewFilter(logger, opt)
	return log.With(logger, "ts", log.DefaultTimestampUTC)
}
