package main

import (
	"context"
	"fmt"
	"os"

	urfavecli "github.com/urfave/cli/v3"

	"github.com/cybertec-postgresql/vb6scan/internal/cli"
	"github.com/cybertec-postgresql/vb6scan/internal/source"
)

const version = "1.0.0"

func main() {
	app := &urfavecli.Command{
		Name:    "vb6scan",
		Usage:   "Visual Basic 6 token scanner and inventory tool",
		Version: version,
		Commands: []*urfavecli.Command{
			{
				Name:      "scan",
				Usage:     "Scan VB6 sources and save the token inventory",
				ArgsUsage: "[path or project.vbp]",
				Action:    scanCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "YAML config file",
					},
					&urfavecli.StringSliceFlag{
						Name:  "ext",
						Usage: "Source file extension to include (repeatable)",
					},
					&urfavecli.StringFlag{
						Name:  "encoding",
						Usage: "Source encoding (auto, utf-8, windows-1252)",
					},
					&urfavecli.IntFlag{
						Name:  "parallel",
						Usage: "Maximum concurrent file scans (1 = sequential)",
					},
					&urfavecli.StringFlag{
						Name:  "output-file",
						Usage: "Inventory output path",
					},
					&urfavecli.BoolFlag{
						Name:  "verbose",
						Usage: "Enable debug output",
					},
				},
			},
			{
				Name:   "report",
				Usage:  "Generate a report from a saved inventory",
				Action: reportCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:  "format",
						Usage: "Output format (json, text, or html)",
						Value: "text",
					},
					&urfavecli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (use - for stdout)",
						Value:   "-",
					},
					&urfavecli.StringFlag{
						Name:  "inventory-file",
						Usage: "Inventory input path",
						Value: cli.DefaultInventoryFile,
					},
					&urfavecli.BoolFlag{
						Name:  "summary",
						Usage: "Print per-file totals only",
					},
				},
			},
			{
				Name:      "tokens",
				Usage:     "Print the token stream of one file",
				ArgsUsage: "<file>",
				Action:    tokensCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:  "encoding",
						Usage: "Source encoding (auto, utf-8, windows-1252)",
						Value: "auto",
					},
					&urfavecli.BoolFlag{
						Name:  "external",
						Usage: "Only print tokens recognized by the external scanner",
					},
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// scanCommand handles the 'vb6scan scan' command
func scanCommand(ctx context.Context, cmd *urfavecli.Command) error {
	config, err := cli.LoadConfig(cmd.String("config"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	cli.ApplyFlagsToConfig(config,
		cmd.StringSlice("ext"),
		cmd.String("encoding"),
		int(cmd.Int("parallel")),
		cmd.String("output-file"),
		cmd.Bool("verbose"))

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	searchPath := cmd.Args().First()
	if searchPath == "" {
		searchPath = "."
	}

	exitCode, err := cli.Scan(ctx, config, searchPath, os.Stdout)
	if err != nil {
		return err
	}

	if exitCode != 0 {
		os.Exit(exitCode)
	}

	return nil
}

// reportCommand handles the 'vb6scan report' command
func reportCommand(_ context.Context, cmd *urfavecli.Command) error {
	inventoryFile := cmd.String("inventory-file")
	if cmd.Bool("summary") {
		return cli.ReportSummary(inventoryFile, os.Stdout)
	}
	return cli.Report(inventoryFile, cmd.String("format"), cmd.String("output"))
}

// tokensCommand handles the 'vb6scan tokens' command
func tokensCommand(_ context.Context, cmd *urfavecli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return fmt.Errorf("tokens: missing file argument")
	}

	enc, err := source.ParseEncoding(cmd.String("encoding"))
	if err != nil {
		return err
	}

	return cli.Tokens(path, enc, cmd.Bool("external"), os.Stdout)
}
