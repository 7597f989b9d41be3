package main

import (
	"fmt"
	"os"

	"github.com/dtnitsch/rentledger/internal/analyze"
	"github.com/dtnitsch/rentledger/internal/history"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "rentledger",
		Usage: "turn exported trading-bot chat transcripts into revenue summaries",
		Commands: []*cli.Command{
			{
				Name:      "analyze",
				Usage:     "analyze a transcript export and print the summary",
				ArgsUsage: "<transcript file>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "file",
						Usage: "transcript file to analyze (alternative to the positional argument)",
					},
					&cli.StringFlag{
						Name:  "kind",
						Value: "auto",
						Usage: "transcript container: html, json or auto",
					},
					&cli.StringFlag{
						Name:  "sender",
						Usage: "bot account name to keep when reading JSON exports",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "output format: json or yaml",
					},
					&cli.StringFlag{
						Name:  "config",
						Value: "rentledger.yaml",
						Usage: "optional config file with CLI defaults",
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "history database path",
					},
					&cli.BoolFlag{
						Name:  "no-store",
						Usage: "skip recording this run in the history database",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
				Action: analyze.AnalyzeAction,
			},
			{
				Name:  "history",
				Usage: "list recorded analysis runs",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "db",
						Usage: "history database path",
					},
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "maximum number of runs to list",
					},
				},
				Action: history.HistoryAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
