package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/boxlab/internal/style"
	"github.com/alexisbeaulieu97/boxlab/internal/tui"
)

type rootFlags struct {
	configPath  string
	logFile     string
	verbose     bool
	noAltScreen bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "boxlab",
		Short:         "Explore the CSS box model in your terminal",
		Long:          "boxlab renders three nested elements and lets you tune their padding, margin, size, position, display and background while a live preview follows.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().BoolVar(&flags.noAltScreen, "no-alt-screen", false, "Draw inline instead of on the alternate screen")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newDefaultsCmd())

	return cmd
}

func runTUI(cmd *cobra.Command, flags *rootFlags) error {
	app, err := loadApp(flags)
	if err != nil {
		return err
	}
	defer app.Close()

	sheet := style.NewSheet()
	watchSheet(sheet, app.log)

	programOpts := []tea.ProgramOption{
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	}
	if app.cfg.UI.UseAltScreen() && !flags.noAltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	program := tea.NewProgram(tui.NewModel(sheet, app.tuiOptions()), programOpts...)
	if _, err := program.Run(); err != nil {
		app.log.Error(err, "tui exited with error")
		return fmt.Errorf("run interface: %w", err)
	}
	return nil
}
