package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/macropower/pcdgen/pkg/log"
)

var (
	ErrLogHandlerFailed = errors.New("log handler failed")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrGenerateFailed   = errors.New("generate failed")
)

const rootExample = `  # Generate the Fortran 90 module 'constants.F90' with all constants.
  pcdgen --lang f90 --filename constants.F90

  # Generate the C++ header 'constants.h' with only 'mathematics' constants.
  pcdgen --lang cxx --groups mathematics --filename constants.h

  # List the groups available in a specific database.
  pcdgen groups --database path/to/pcd.yaml
`

// NewRootCmd returns the root command, which generates a constants file.
func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	rootArgs := NewRootArgs()
	args := NewGenerateArgs(rootArgs)

	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		Example:       rootExample,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       GetVersionString(),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			return runGenerate(cc, args, pArgs)
		},
	}

	cmd.PersistentFlags().StringVar(rootArgs.logLevel, "log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(rootArgs.logFormat, "log_format", "text", "Set the log format (text, logfmt, json)")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		h, err := log.CreateHandlerWithStrings(
			cc.ErrOrStderr(),
			rootArgs.GetLogLevel(),
			rootArgs.GetLogFormat(),
		)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}

		slog.SetDefault(slog.New(h))

		slog.Debug("ready to go")

		return nil
	}

	addGenerateFlags(cmd, args)

	cmd.AddCommand(NewVersionCmd())
	cmd.AddCommand(NewGroupsCmd(rootArgs))

	return cmd
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
