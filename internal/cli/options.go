// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"covfix/internal/config"
	"covfix/internal/version"
)

// Options holds all CLI flags.
type Options struct {
	// Files
	Filter string
	Covar  string
	Output string

	// Splice parameters
	Width     int
	Delimiter string

	// Artifacts
	Report     string
	ConfigFile string

	// Misc
	Quiet   bool
	Verbose bool
	Version bool
}

// Delim returns the delimiter as a single byte. Valid only after Validate.
func (o Options) Delim() byte { return o.Delimiter[0] }

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: splice labels from a filter CSV onto flat covariance values

Version: %s

Running with no flags repairs the default export files in place
(%s + %s -> %s).

Usage of %s:
`, name, version.Version,
			config.DefaultFilter, config.DefaultCovar, config.DefaultOutput, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Precedence: explicitly set flags > config file > built-in defaults.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	def := config.Default()

	// Files
	fs.StringVar(&opt.Filter, "filter", def.Filter, "filter CSV providing row labels ["+config.DefaultFilter+"]")
	fs.StringVar(&opt.Covar, "covar", def.Covar, "covariance CSV providing the flat value stream ["+config.DefaultCovar+"]")
	fs.StringVar(&opt.Output, "output", def.Output, "destination file, '-' for stdout ["+config.DefaultOutput+"]")
	fs.StringVar(&opt.Output, "o", def.Output, "alias of --output")

	// Splice parameters
	fs.IntVar(&opt.Width, "width", def.Width, "values per output row [9]")
	fs.StringVar(&opt.Delimiter, "delimiter", def.Delimiter, "single-character field delimiter [,]")

	// Artifacts
	fs.StringVar(&opt.Report, "report", "", "write a canonical JSON repair report to PATH")
	fs.StringVar(&opt.ConfigFile, "config", "", "YAML config file (flags override file values)")

	// Misc
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress diagnostics [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Verbose, "verbose", false, "enable debug logging [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	if opt.ConfigFile != "" {
		cfg, err := config.Load(opt.ConfigFile)
		if err != nil {
			return opt, err
		}
		set := map[string]bool{}
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if !set["filter"] {
			opt.Filter = cfg.Filter
		}
		if !set["covar"] {
			opt.Covar = cfg.Covar
		}
		if !set["output"] && !set["o"] {
			opt.Output = cfg.Output
		}
		if !set["width"] {
			opt.Width = cfg.Width
		}
		if !set["delimiter"] {
			opt.Delimiter = cfg.Delimiter
		}
	}

	return opt, Validate(&opt)
}

// Validate applies the CLI invariants.
func Validate(o *Options) error {
	if o.Filter == "" {
		return errors.New("--filter must not be empty")
	}
	if o.Covar == "" {
		return errors.New("--covar must not be empty")
	}
	if o.Output == "" {
		return errors.New("--output must not be empty")
	}
	if o.Width < 1 {
		return errors.New("--width must be ≥ 1")
	}
	if len(o.Delimiter) != 1 {
		return fmt.Errorf("--delimiter must be a single character, got %q", o.Delimiter)
	}
	return nil
}
