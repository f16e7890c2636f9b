package cmd

import (
	"os"
	"os/signal"

	"github.com/bnema/asne/internal/adapters/process"
	"github.com/bnema/asne/internal/adapters/render/report"
	"github.com/bnema/asne/internal/application"
	"github.com/bnema/asne/internal/domain"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Execute runs the launcher and reports how the parent should terminate.
func Execute() domain.Termination {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, process.ForwardedSignals...)
	defer signal.Stop(signals)

	root, result := newRootCmd(signals)
	if err := root.Execute(); err != nil {
		report.Write(root.ErrOrStderr(), err)
		return domain.ExitCode(1)
	}

	return *result
}

func newRootCmd(signals <-chan os.Signal) (*cobra.Command, *domain.Termination) {
	result := domain.ExitCode(0)

	rootCmd := &cobra.Command{
		Use:                "asne [args...]",
		Short:              "Launch the asne binary for this platform",
		Long:               "asne resolves the prebuilt binary for the current platform, relays its standard streams, answers interactive prompts when unattended and mirrors its exit status.",
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		Args:               cobra.ArbitraryArgs,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd, &result
	}

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		session := application.Session{
			Stdin:       cmd.InOrStdin(),
			Stdout:      cmd.OutOrStdout(),
			Stderr:      cmd.ErrOrStderr(),
			Signals:     signals,
			Environment: application.DetectEnvironment(os.Getenv, app.config.CIEnv, isTerminal(cmd.OutOrStdout())),
		}

		termination, err := app.launcher.Launch(cmd.Context(), args, session)
		result = termination
		return err
	}

	return rootCmd, &result
}

func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
