package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bcomnes/semver-bump/internal/config"
	"github.com/bcomnes/semver-bump/internal/logging"
	semverbump "github.com/bcomnes/semver-bump/pkg"
)

// options holds the global flags shared by every bump command.
type options struct {
	configPath string
	format     string
	logLevel   string
	verbose    bool
}

var commandHelp = map[semverbump.Kind]struct{ use, short, long string }{
	semverbump.Major: {
		use:   "major",
		short: "Bump the major version number for a breaking change",
	},
	semverbump.Minor: {
		use:   "minor",
		short: "Bump the minor version number for a new feature",
	},
	semverbump.Patch: {
		use:   "patch",
		short: "Bump the patch version number for a bug fix",
	},
	semverbump.Prerelease: {
		use:   "prerelease [identifier]",
		short: "Bump the number at the end of the pre-release identifier",
		long: `Bump the number at the end of the pre-release identifier.

The counter is the run of digits ending the last identifier, joined by '.', '-'
or nothing at all: 1.2.3-alpha.4, 1.2.3-ceti-alpha-4 and 1.2.3-cetialpha4 all
count up by one. When there is no counter, one starting at 1 is added.

Passing an identifier switches to it with a fresh counter (1.2.3-alpha.4 with
"beta" gives 1.2.3-beta.1), unless it names the current identifier, in which
case the counter is bumped as usual. Build metadata is dropped.`,
	},
	semverbump.Build: {
		use:   "build [identifier]",
		short: "Bump the number at the end of the build identifier",
		long: `Bump the number at the end of the build identifier.

Works like the prerelease command but on the build metadata, whose numeric
identifiers may have leading zeros. The counter is bumped as a number, so
build.007 becomes build.8. The pre-release identifier is left untouched.`,
	},
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	c := &cobra.Command{
		Use:   "semver-bump",
		Short: "Bump a semantic version read from stdin",
		Long: `Read a semver-compliant version number from stdin, bump the component
named by the command and write the result to stdout.

Examples:
  echo 1.2.3 | semver-bump minor                    # 1.3.0
  echo 1.2.3-rc.1 | semver-bump prerelease          # 1.2.3-rc.2
  echo 1.2.3-alpha.4 | semver-bump prerelease beta  # 1.2.3-beta.1
  echo 1.0.3+build-4 | semver-bump build            # 1.0.3+build-5`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Usage()
			return errors.New("a bump command is required (one of: major, minor, patch, prerelease, build)")
		},
	}

	flags := c.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default is ./"+config.DefaultFile+" if present)")
	flags.StringVar(&opts.format, "format", "", "output format: "+strings.Join(config.Formats(), ", ")+" (default text)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.BoolVar(&opts.verbose, "verbose", false, "enable debug logging to stderr")

	for _, kind := range semverbump.Kinds() {
		c.AddCommand(newBumpCmd(kind, opts))
	}
	return c
}

func newBumpCmd(kind semverbump.Kind, opts *options) *cobra.Command {
	help := commandHelp[kind]
	c := &cobra.Command{
		Use:   help.use,
		Short: help.short,
		Long:  help.long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var replacement string
			if len(args) > 0 {
				replacement = args[0]
			}
			return runBump(cmd, kind, replacement, opts)
		},
	}
	if kind == semverbump.Prerelease || kind == semverbump.Build {
		c.Args = cobra.MaximumNArgs(1)
	}
	return c
}

func runBump(cmd *cobra.Command, kind semverbump.Kind, replacement string, opts *options) error {
	cfg, err := opts.resolve()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	current, err := readVersion(cmd.InOrStdin())
	if err != nil {
		return err
	}
	log.Debug("read version", zap.String("input", current), zap.String("format", cfg.Format))

	res, err := semverbump.New(semverbump.WithLogger(log)).Explain(current, kind, replacement)
	if err != nil {
		return err
	}
	return writeResult(cmd.OutOrStdout(), cfg.Format, res)
}

// resolve loads the config file and lets flags override it.
func (o *options) resolve() (*config.Config, error) {
	level := o.logLevel
	if o.verbose {
		level = "debug"
	}
	return config.Load(o.configPath, config.Config{Format: o.format, LogLevel: level})
}

// readVersion reads the first line of r without its line terminator. Nothing
// else is trimmed, so stray whitespace is reported by the parser.
func readVersion(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "failed to read version from stdin")
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
