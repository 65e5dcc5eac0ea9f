package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jacoelho/jee"
	"github.com/jacoelho/jee/errors"
	"github.com/jacoelho/jee/pkg/xmlbind"
	"github.com/jacoelho/jee/wls"
)

// errFailed marks a run that reported its failure already.
var errFailed = stderrors.New("failed")

var kinds = []jee.Kind{jee.PersistenceUnitRefKind, wls.SecurityPluginKind}

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case stderrors.Is(err, errFailed):
		return 1
	default:
		if writeErr := writef(stderr, "error: %v\n", err); writeErr != nil {
			return 1
		}
		return 2
	}
}

type cli struct {
	stdout   io.Writer
	stderr   io.Writer
	logger   *logrus.Logger
	logLevel string
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdout: stdout, stderr: stderr, logger: logrus.New()}
	c.logger.SetOutput(stderr)
	c.logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	root := &cobra.Command{
		Use:           "jeelint",
		Short:         "Check and convert Java EE descriptor elements",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			level, err := logrus.ParseLevel(c.logLevel)
			if err != nil {
				return err
			}
			c.logger.SetLevel(level)
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	root.AddCommand(c.validateCommand(), c.convertCommand())
	return root
}

func (c *cli) validateCommand() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "validate [--strict] <file>...",
		Short: "Validate descriptor documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			opts := xmlbind.NewUnmarshalOptions().
				WithStrictCardinality(strict).
				WithLogger(c.logger)
			failed := false
			for _, path := range args {
				ok, err := c.validateFile(path, opts)
				if err != nil {
					return err
				}
				failed = failed || !ok
			}
			if failed {
				return errFailed
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "require at least one injection-target per reference")
	return cmd
}

func (c *cli) validateFile(path string, opts xmlbind.UnmarshalOptions) (bool, error) {
	_, err := c.readDocument(path, opts)
	if err != nil {
		if stderrors.Is(err, errFailed) {
			return false, writef(c.stderr, "%s fails to validate\n", path)
		}
		return false, err
	}
	return true, writef(c.stdout, "%s validates\n", path)
}

// readDocument decodes path. Validation failures are printed and reported
// as errFailed.
func (c *cli) readDocument(path string, opts xmlbind.UnmarshalOptions) (*jee.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c.logger.WithField("file", path).Debug("reading document")
	d, err := jee.UnmarshalDocument(f, opts, kinds...)
	if err == nil {
		return d, nil
	}
	violations, ok := errors.AsValidations(err)
	if !ok {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	for _, v := range violations {
		if err := writeln(c.stderr, v.Error()); err != nil {
			return nil, err
		}
	}
	return nil, errFailed
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
