package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	dataFileFlag = &cli.StringFlag{
		Name:    "data-file",
		Aliases: []string{"f"},
		Usage:   "Read and write projects at this path instead of the default data file",
	}

	backendFlag = &cli.StringFlag{
		Name:    "backend",
		Aliases: []string{"b"},
		Usage:   "Storage backend: json, bolt or sqlite (default: json)",
	}

	notifyFlag = &cli.BoolFlag{
		Name:    "notify",
		Aliases: []string{"n"},
		Usage:   "Show a desktop notification when a session is stopped",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output in JSON format",
	}

	tableFlag = &cli.BoolFlag{
		Name:    "table",
		Aliases: []string{"t"},
		Usage:   "Summarise all projects in a table",
	}
)
