// Package app wires werk's commands to the tracking engine
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/werk-cli/werk/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the werk app instance.
func Get() *cli.App {
	werkApp := &cli.App{
		Name: "werk",
		Usage: `
		werk is a personal time tracker for the command-line. Start a project,
		pause, resume or switch as you go, and werk accumulates the time spent
		on each project per day.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:      "start",
				Aliases:   []string{"s"},
				Usage:     "Start tracking a project, creating it if needed",
				ArgsUsage: "<project>",
				Action:    startAction,
			},
			{
				Name:      "list",
				Aliases:   []string{"l"},
				Usage:     "List all projects or the named one",
				ArgsUsage: "[project]",
				Flags:     []cli.Flag{jsonFlag, tableFlag},
				Action:    listAction,
			},
			{
				Name:      "day",
				Aliases:   []string{"d"},
				Usage:     "Show the time tracked on a day (mm/dd/yy, 'today', '2 days ago')",
				ArgsUsage: "<day>",
				Flags:     []cli.Flag{jsonFlag},
				Action:    dayAction,
			},
			{
				Name:   "status",
				Usage:  "Print the project tracked by a running timer",
				Action: statusAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			dataFileFlag,
			backendFlag,
			notifyFlag,
			noColorFlag,
		},
		Before: beforeAction,
		After:  afterAction,
	}

	return werkApp
}
