package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/todoapi/todoapi/internal/logging"
)

// globalOptions holds the persistent flags and what is derived from them.
type globalOptions struct {
	endpoint   string
	jsonOutput bool
	logLevel   string
	logFile    string

	logger   zerolog.Logger
	closeLog func()
}

func newRootCmd(opts *globalOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "todo",
		Short:         "Todo API client",
		Long:          `A CLI for reading and updating tasks on a todo API server, and for running a local one.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, closer, err := logging.New(opts.logLevel, opts.logFile)
			if err != nil {
				return &configError{err: err}
			}
			opts.logger = logger
			opts.closeLog = closer
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			opts.close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.endpoint, "endpoint", "", "Base URL of the todo API (overrides config and TODO_API_ENDPOINT)")
	flags.BoolVar(&opts.jsonOutput, "json", false, "Output as JSON")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error, disabled)")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newGetCmd(opts))
	rootCmd.AddCommand(newUpdateCmd(opts))
	rootCmd.AddCommand(newServeCmd(opts))

	return rootCmd
}

func (o *globalOptions) close() {
	if o.closeLog != nil {
		o.closeLog()
		o.closeLog = nil
	}
}

// execute runs the CLI with args and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	opts := &globalOptions{logger: zerolog.Nop()}
	defer opts.close()

	rootCmd := newRootCmd(opts)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		printError(stderr, err, opts.jsonOutput)
		return mapErrorToExitCode(err)
	}
	return ExitSuccess
}
