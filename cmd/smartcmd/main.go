// Package main is the entry point for the Smartcmd CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	scli "github.com/smartcmd/smartcmd/internal/cli"
	"github.com/smartcmd/smartcmd/pkg/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:                  "smartcmd",
		Usage:                 "Context-aware command completion engine",
		Version:               version.Version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("SMARTCMD_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "lang",
				Value:   "en",
				Usage:   "Display language for descriptions",
				Sources: cli.EnvVars("SMARTCMD_LANG"),
			},
			&cli.StringFlag{
				Name:    "definitions",
				Usage:   "Extra definitions directory (highest precedence)",
				Sources: cli.EnvVars("SMARTCMD_DEFINITIONS"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "complete",
				Usage:     "Print completion suggestions for a partial input line",
				ArgsUsage: "<line>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "cursor",
						Value: -1,
						Usage: "Cursor position in the line (-1 = end of line)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					line := strings.Join(cmd.Args().Slice(), " ")
					return scli.Complete(scli.CompleteParams{
						Line:           line,
						Cursor:         int(cmd.Int("cursor")),
						Lang:           cmd.String("lang"),
						DefinitionsDir: cmd.String("definitions"),
						LogLevel:       cmd.String("log-level"),
					})
				},
			},
			{
				Name:      "search",
				Usage:     "Fuzzy-search the whole catalog by name, description and example",
				ArgsUsage: "<query>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Value:   10,
						Usage:   "Maximum number of results",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return scli.Search(scli.SearchParams{
						Query:          strings.Join(cmd.Args().Slice(), " "),
						Lang:           cmd.String("lang"),
						Limit:          int(cmd.Int("limit")),
						DefinitionsDir: cmd.String("definitions"),
						LogLevel:       cmd.String("log-level"),
					})
				},
			},
			{
				Name:      "examples",
				Usage:     "List example invocations for a command path",
				ArgsUsage: "<command> [subcommand...]",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return scli.Examples(scli.ExamplesParams{
						Path:           strings.Join(cmd.Args().Slice(), " "),
						Lang:           cmd.String("lang"),
						DefinitionsDir: cmd.String("definitions"),
						LogLevel:       cmd.String("log-level"),
					})
				},
			},
			{
				Name:  "list",
				Usage: "Show the loaded command catalog",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return scli.List(scli.ListParams{
						Lang:           cmd.String("lang"),
						DefinitionsDir: cmd.String("definitions"),
						LogLevel:       cmd.String("log-level"),
					})
				},
			},
			{
				Name:      "validate",
				Usage:     "Validate a command definition file",
				ArgsUsage: "<definition-file>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return scli.Validate(scli.ValidateParams{
						Path: cmd.Args().First(),
					})
				},
			},
			{
				Name:  "init",
				Usage: "Create a sample definition file in ./definitions",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "dir",
						Usage: "Target directory (defaults to ./definitions)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return scli.InitSample(scli.InitSampleParams{
						Dir: cmd.String("dir"),
					})
				},
			},
			{
				Name:      "schema",
				Usage:     "Display or export the JSON Schema for definition files",
				ArgsUsage: "[output-file]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (prints to stdout if not specified)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					outputPath := cmd.String("output")
					if outputPath == "" && cmd.Args().Len() > 0 {
						outputPath = cmd.Args().Get(0)
					}
					return scli.Schema(scli.SchemaParams{
						OutputPath: outputPath,
					})
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
