// Package main is the entry point for the textsubject command.
//
// textsubject loads a file, binds one subject to a set of selections,
// replays a list of actions and prints the resulting text and selections.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dshills/textsubject/internal/config"
	"github.com/dshills/textsubject/internal/engine"
	"github.com/dshills/textsubject/internal/engine/buffer"
	"github.com/dshills/textsubject/internal/logging"
	"github.com/dshills/textsubject/internal/subject"
	"github.com/dshills/textsubject/internal/subject/subjectio"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errUsage reports bad arguments; the usage text has already been printed.
var errUsage = errors.New("usage")

type options struct {
	configPath  string
	subjectName string
	logLevel    string
	selections  string
	jump        int
	jsonOutput  bool
	printConfig bool
	showVersion bool

	file    string
	actions []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 2
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "textsubject %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	if err := execute(opts, stdin, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("textsubject", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.subjectName, "subject", "", "Subject to bind (default from config)")
	fs.StringVar(&opts.subjectName, "s", "", "Subject to bind (shorthand)")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.selections, "selections", "", "Initial selections as a JSON array")
	fs.IntVar(&opts.jump, "jump", 0, "Also print up to n labelled jump targets")
	fs.BoolVar(&opts.jsonOutput, "json", false, "Print the result as JSON")
	fs.BoolVar(&opts.printConfig, "print-config", false, "Print the effective configuration and exit")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "textsubject - text-object navigation and editing\n\n")
		fmt.Fprintf(stderr, "Usage: textsubject [options] file|- [actions...]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nActions:\n")
		for _, name := range actionNames() {
			fmt.Fprintf(stderr, "  %s\n", name)
		}
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  textsubject -s word main.go right right delete\n")
		fmt.Fprintf(stderr, "  textsubject -s bracket -json main.go fix\n")
		fmt.Fprintf(stderr, "  textsubject -s subword - search:B < file.txt\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.showVersion || opts.printConfig {
		return opts, nil
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return opts, errUsage
	}
	opts.file = fs.Arg(0)
	opts.actions = fs.Args()[1:]

	if opts.logLevel != "" {
		if _, ok := logging.ParseLevel(opts.logLevel); !ok {
			return opts, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", opts.logLevel)
		}
	}
	return opts, nil
}

func execute(opts options, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.subjectName != "" {
		cfg.Subjects.Default = opts.subjectName
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if opts.printConfig {
		return config.Encode(stdout, cfg)
	}

	level, _ := cfg.LogLevel()
	logCfg := logging.DefaultConfig()
	logCfg.Level = level
	logCfg.Output = stderr
	log := logging.New(logCfg)

	buf, err := readBuffer(opts.file, stdin)
	if err != nil {
		return err
	}
	editor := engine.New(engine.WithBuffer(buf), engine.WithLogger(log))

	if opts.selections != "" {
		sels, err := parseSelections(opts.selections)
		if err != nil {
			return err
		}
		editor.SetSelections(sels)
	}

	name, _ := cfg.DefaultSubject()
	subjOpts, err := cfg.SubjectOptions(name)
	if err != nil {
		return err
	}
	subj, err := subject.New(editor, name, cfg.Options(name), append(subjOpts, subject.WithLogger(log))...)
	if err != nil {
		return err
	}

	for _, a := range opts.actions {
		act, err := parseAction(a)
		if err != nil {
			return err
		}
		if err := act.apply(subj); err != nil {
			if errors.Is(err, subjectio.ErrUseHostLineCommand) {
				log.Warn("%s: %v", a, err)
				continue
			}
			return fmt.Errorf("%s: %w", a, err)
		}
	}

	targets := jumpTargets(subj, opts.jump)
	if opts.jsonOutput {
		out, err := renderJSON(subj, editor, targets)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, out)
		return err
	}
	return renderText(stdout, editor, targets)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadFromReader(strings.NewReader(""))
	}
	return config.Load(path)
}

func readBuffer(path string, stdin io.Reader) (*buffer.Buffer, error) {
	if path == "-" {
		return buffer.NewBufferFromReader(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return buffer.NewBufferFromReader(f)
}
