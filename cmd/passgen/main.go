package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/EpicMandM/passgen/internal/app"
	"github.com/EpicMandM/passgen/internal/clipboard"
	"github.com/EpicMandM/passgen/internal/config"
	"github.com/EpicMandM/passgen/internal/logger"
	"github.com/EpicMandM/passgen/internal/render"
	"github.com/EpicMandM/passgen/internal/service"
)

type App struct {
	logger   *logger.Logger
	cfg      *config.Config
	settings *config.Settings
	session  *app.Session

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// options holds parsed flags. Zero values mean "use settings".
type options struct {
	length       int
	lengthSet    bool
	count        int
	format       string
	copy         bool
	settingsPath string
	envFile      string
	// batch is set when any generation flag was given; otherwise the
	// interactive prompt runs.
	batch bool
}

// errUsage marks flag errors the flag set has already reported with usage.
var errUsage = errors.New("usage error")

func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	if code := a.exitCode(a.run(os.Args[1:])); code != 0 {
		os.Exit(code)
	}
}

// exitCode maps a run error to a process status, logging only errors the
// user has not already been shown.
func (a *App) exitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		return 2
	case service.IsValidation(err):
		// Already shown to the user by the notifier.
		return 1
	default:
		a.logger.Error("Application error", logger.Error(err))
		return 1
	}
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *App {
	return &App{
		logger: logger.NewWithWriter(stderr),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	var opts options

	fs.IntVar(&opts.length, "length", 0, "Password length (default from settings)")
	fs.IntVar(&opts.length, "l", 0, "Password length (shorthand)")
	fs.IntVar(&opts.count, "count", 0, "Number of passwords to generate (default from settings)")
	fs.IntVar(&opts.count, "c", 0, "Number of passwords (shorthand)")
	fs.StringVar(&opts.format, "format", "", "Output format: plain, table or json (default from settings)")
	fs.StringVar(&opts.format, "f", "", "Output format (shorthand)")
	fs.BoolVar(&opts.copy, "copy", false, "Copy the last generated password to the clipboard")
	fs.StringVar(&opts.settingsPath, "settings", "", "Path to a TOML or YAML settings file (overrides PASSGEN_SETTINGS)")
	fs.StringVar(&opts.envFile, "env", ".env", "Path to an optional .env file")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, err
		}
		return opts, fmt.Errorf("%w: %w", errUsage, err)
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "length", "l":
			opts.lengthSet = true
			opts.batch = true
		case "count", "c", "format", "f", "copy":
			opts.batch = true
		}
	})
	if fs.NArg() > 0 {
		fmt.Fprintf(fs.Output(), "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return opts, fmt.Errorf("%w: unexpected arguments: %s", errUsage, strings.Join(fs.Args(), " "))
	}
	return opts, nil
}

func (a *App) run(args []string) error {
	fs := flag.NewFlagSet("passgen", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	opts, err := parseFlags(fs, args)
	if err != nil {
		return err
	}

	if err := a.initialize(opts); err != nil {
		return err
	}

	if !opts.batch {
		return a.runInteractive()
	}
	return a.runBatch(opts)
}

func (a *App) initialize(opts options) error {
	cfg, err := config.LoadWithFile(opts.envFile)
	if err != nil {
		a.logger.Error("Failed to load configuration", logger.Error(err), logger.F("path", opts.envFile))
		return err
	}
	a.cfg = cfg

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger.SetLevel(level)

	settingsPath := cfg.SettingsPath
	if opts.settingsPath != "" {
		settingsPath = opts.settingsPath
	}
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		a.logger.Error("Failed to load settings", logger.Error(err), logger.F("path", settingsPath))
		return err
	}
	a.settings = settings

	sampler, err := service.NewSampler(cfg.Source)
	if err != nil {
		return err
	}
	generator, err := service.NewPasswordGenerator(service.DefaultPool(), sampler)
	if err != nil {
		return err
	}

	a.session = app.New(generator, clipboard.NewWithWriter(a.stderr), &terminalNotifier{out: a.stderr}, a.logger, settings.Generator.SoftCeiling)
	a.logger.Debug("Generator initialized",
		logger.Source(cfg.Source),
		logger.Length(settings.Generator.DefaultLength),
		logger.Ceiling(settings.Generator.SoftCeiling))
	return nil
}

func (a *App) runBatch(opts options) error {
	length := a.settings.Generator.DefaultLength
	if opts.lengthSet {
		length = opts.length
	}
	count := a.settings.Output.Count
	if opts.count != 0 {
		count = opts.count
	}
	format := a.settings.Output.Format
	if opts.format != "" {
		format = opts.format
	}

	gens, err := a.session.GenerateBatch(length, count)
	if err != nil {
		return err
	}
	a.logger.Info("Batch generated", logger.Count(len(gens)), logger.Length(length), logger.Format(format))

	if err := render.Write(a.stdout, format, gens); err != nil {
		return err
	}

	if opts.copy {
		if err := a.session.Copy(); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(a.stderr, "Copied!")
	}
	return nil
}

// runInteractive repeats the enter-length, generate, copy cycle until EOF
// or "q". Input errors are reported and the prompt is shown again.
func (a *App) runInteractive() error {
	scanner := bufio.NewScanner(a.stdin)

	fmt.Fprintln(a.stdout, "=== Password Generator ===")
	for {
		fmt.Fprint(a.stdout, "Enter password length (q to quit): ")
		if !scanner.Scan() {
			fmt.Fprintln(a.stdout)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "q" || line == "quit" {
			return nil
		}

		g, err := a.session.Generate(line)
		if err != nil {
			if service.IsValidation(err) {
				continue
			}
			return err
		}
		fmt.Fprintf(a.stdout, "Password: %s\n", g.Password)

		fmt.Fprint(a.stdout, "Copy to clipboard? [y/N]: ")
		if !scanner.Scan() {
			fmt.Fprintln(a.stdout)
			return scanner.Err()
		}
		if parseYesNo(scanner.Text()) {
			if err := a.session.Copy(); err != nil {
				fmt.Fprintf(a.stderr, "Error: %v\n", err)
				continue
			}
			fmt.Fprintln(a.stdout, "Copied!")
		}
	}
}

// parseYesNo returns true for "y" / "yes" (case-insensitive), false otherwise.
func parseYesNo(s string) bool {
	s = strings.TrimSpace(strings.ToLower(s))
	return s == "y" || s == "yes"
}
