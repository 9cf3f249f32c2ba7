// Package cli provides the command-line interface for aed.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/thimc/aed/internal/config"
	"github.com/thimc/aed/internal/editor"
)

// Version information (set at build time).
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "aed [file]",
		Short: "aed - the standard text editor, addresses first",
		Long: `aed is a line editor in the style of ed(1).

Commands are read from standard input, one per line. Each line starts with
an optional address expression such as "1,$", ".;+" or ",", followed by a
command letter. When standard input is not a terminal the first error ends
the session.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if cfg.File != "" {
				logger.Debug("using config file", "path", cfg.File)
			}

			opts := []editor.Option{
				editor.WithStdout(cmd.OutOrStdout()),
				editor.WithStderr(cmd.ErrOrStderr()),
				editor.WithLogger(logger),
				editor.WithSilent(cfg.Silent),
				editor.WithVerbose(cfg.Verbose),
				editor.WithPrompt(cfg.Prompt),
			}
			if style := errorStyle(cfg, cmd.ErrOrStderr()); style != nil {
				opts = append(opts, editor.WithErrorStyle(style))
			}

			in := cmd.InOrStdin()
			if f, ok := in.(*os.File); ok && isTerminal(f) {
				lr, err := newLineReader(cfg, f, cmd.OutOrStdout(), cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				defer func() { _ = lr.Close() }()
				opts = append(opts, editor.WithReader(lr))
			} else {
				opts = append(opts, editor.WithStdin(in), editor.WithScript(true))
			}
			if len(args) == 1 {
				opts = append(opts, editor.WithFile(args[0]))
			}
			return editor.NewEditor(opts...).Run(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./aed.yaml or ~/.aed.yaml)")
	flags.StringP("prompt", "p", "", "Use the given prompt string")
	flags.BoolP("silent", "s", false, "Suppress byte counts and diagnostics")
	flags.BoolP("verbose", "v", false, "Print error messages instead of ?")
	flags.String("color", config.DefaultColor, "Style error messages (auto|always|never)")
	flags.String("history-file", "", "Save interactive command history to this file")
	flags.String("log-level", config.DefaultLogLevel, "Log level (debug|info|warn|error)")
	flags.String("log-format", config.DefaultLogFormat, "Log format (text|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("color", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.ColorAuto, config.ColorAlways, config.ColorNever}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "aed: %v\n", err)
		return err
	}
	return nil
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "aed v%s\n", version)
		},
	}
}

func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
