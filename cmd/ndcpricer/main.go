package main

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	internalcli "github.com/oShenny/ndc-pricer/internal/cli"
	"github.com/oShenny/ndc-pricer/internal/config"
	"github.com/oShenny/ndc-pricer/internal/logger"
)

var version = "0.1.0"

// buildRunDependencies creates all dependencies needed for a pricer run
func buildRunDependencies() (internalcli.RunDependencies, error) {
	var deps internalcli.RunDependencies

	runConfig, err := config.LoadRunConfig()
	if err != nil {
		return deps, fmt.Errorf("invalid run configuration: %w", err)
	}
	deps.Config = runConfig
	deps.Site = config.LoadSiteConfig()
	deps.Log = logger.New(os.Stdout, runConfig.LogLevel)
	deps.RunID = uuid.NewString()

	return deps, nil
}

// RunCommand returns the run command
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Check NDC offer position and pricing across all configured test sets",
		Action: func(c *cli.Context) error {
			deps, err := buildRunDependencies()
			if err != nil {
				return err
			}
			return internalcli.RunPricer(deps)
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "ndcpricer",
		Usage:   "NDC offer verification tool",
		Version: version,
		Commands: []*cli.Command{
			RunCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
