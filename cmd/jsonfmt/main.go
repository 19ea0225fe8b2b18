// Command jsonfmt validates JSON documents and writes them compact or
// indented.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/d1ced/jsondoc"
)

// stdinName is the file argument that selects standard input.
const stdinName = "-"

var errInvalidInput = errors.New("invalid input")

// fmtCommand formats or checks each of files.
type fmtCommand struct {
	files      *[]string
	configFile *string
	indent     *string
	compact    *bool
	check      *bool
	verify     *bool
	logLevel   *string

	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	lookupEnv func(string) (string, bool)
}

// config layers defaults, the config file, the environment and the flags.
func (cmd *fmtCommand) config() (config, error) {
	cfg := defaultConfig()
	path := *cmd.configFile
	if path == "" {
		path, _ = cmd.lookupEnv(envConfig)
	}
	if path != "" {
		if err := cfg.loadConfigFile(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.applyEnv(cmd.lookupEnv); err != nil {
		return cfg, err
	}
	if *cmd.indent != "" {
		cfg.Indent = *cmd.indent
	}
	if *cmd.logLevel != "" {
		cfg.LogLevel = *cmd.logLevel
	}
	cfg.Compact = cfg.Compact || *cmd.compact
	cfg.Check = cfg.Check || *cmd.check
	cfg.Verify = cfg.Verify || *cmd.verify
	return cfg, cfg.validate()
}

func (cmd *fmtCommand) run(c *kingpin.ParseContext) error {
	cfg, err := cmd.config()
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	logger := newLogger(cmd.stderr, cfg.LogLevel)
	indent, _ := cfg.indent()

	files := *cmd.files
	if len(files) == 0 {
		files = []string{stdinName}
	}
	failed := 0
	for _, name := range files {
		if !cmd.process(logger, cfg, indent, name) {
			failed++
		}
	}
	if failed > 0 {
		return errors.Wrapf(errInvalidInput, "%d of %d inputs failed", failed, len(files))
	}
	return nil
}

// process handles a single input and reports whether it succeeded.
func (cmd *fmtCommand) process(logger log.Logger, cfg config, indent, name string) bool {
	data, err := cmd.read(name)
	if err != nil {
		level.Error(logger).Log("msg", "failed to read input", "file", name, "err", err)
		return false
	}
	level.Debug(logger).Log("msg", "read input", "file", name, "size", humanize.Bytes(uint64(len(data))))

	d, err := jsondoc.ParseBytes(data)
	if cfg.Verify {
		if other := jsoniter.ConfigCompatibleWithStandardLibrary.Valid(data); other != (err == nil) {
			level.Warn(logger).Log("msg", "validators disagree", "file", name,
				"jsondoc", err == nil, "jsoniter", other)
		}
	}
	if err != nil {
		var serr *jsondoc.SyntaxError
		if errors.As(err, &serr) {
			reportSyntaxError(cmd.stderr, name, data, serr)
		}
		level.Debug(logger).Log("msg", "invalid input", "file", name, "err", err)
		return false
	}

	if cfg.Check {
		level.Info(logger).Log("msg", "valid", "file", name, "values", d.Root().Total())
		return true
	}
	if cfg.Compact {
		_, err = d.Root().WriteJSON(cmd.stdout)
	} else {
		_, err = d.Root().WriteIndent(cmd.stdout, indent)
	}
	if err == nil {
		_, err = io.WriteString(cmd.stdout, "\n")
	}
	if err != nil {
		level.Error(logger).Log("msg", "failed to write output", "file", name, "err", err)
		return false
	}
	return true
}

func (cmd *fmtCommand) read(name string) ([]byte, error) {
	if name == stdinName {
		return io.ReadAll(cmd.stdin)
	}
	return os.ReadFile(name)
}

func addFmtCommand(app *kingpin.Application, cmd *fmtCommand) {
	app.Action(cmd.run)
	cmd.configFile = app.Flag("config", "YAML file with default settings.").PlaceHolder("FILE").String()
	cmd.indent = app.Flag("indent", `Indentation per level: spaces and tabs, a number of spaces or "tab".`).PlaceHolder("INDENT").String()
	cmd.compact = app.Flag("compact", "Write without any whitespace.").Short('c').Bool()
	cmd.check = app.Flag("check", "Only validate the inputs.").Short('n').Bool()
	cmd.verify = app.Flag("verify", "Cross-check validity with a second decoder and warn on disagreement.").Bool()
	cmd.logLevel = app.Flag("log.level", "Only log messages with the given severity or above.").PlaceHolder("LEVEL").Enum("debug", "info", "warn", "error")
	cmd.files = app.Arg("file", `Files to read, "-" for standard input.`).Strings()
}

func newApp(cmd *fmtCommand) *kingpin.Application {
	app := kingpin.New("jsonfmt", "Validate JSON documents and write them compact or indented.")
	app.HelpFlag.Short('h')
	addFmtCommand(app, cmd)
	return app
}

func main() {
	cmd := &fmtCommand{
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		lookupEnv: os.LookupEnv,
	}
	if _, err := newApp(cmd).Parse(os.Args[1:]); err != nil {
		exitWithErr(err)
	}
}

func exitWithErr(err error) {
	fmt.Fprintln(os.Stderr, "jsonfmt:", err)
	os.Exit(1)
}
