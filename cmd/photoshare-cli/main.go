// Package main is the entry point for the photoshare-cli application.
// It registers the maintenance commands (schema migration and user administration)
// and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/Mykyta-Harashchenko/PhotoShare-Project/cmd/photoshare-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "photoshare-cli",
		Short: "PhotoShare maintenance CLI tool",
		Long: `photoshare-cli is a command-line tool for operating a PhotoShare deployment.
It migrates the database schema and administers user accounts (roles and blocking)
without going through the REST API.

The configuration is read the same way the REST API reads it:
- CONFIG_PATH points to an optional YAML file (default ./configs/rest-app.yaml)
- PHOTOSHARE_* environment variables and a .env file override it`,
		SilenceUsage: true,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	// Register migration commands
	if err := commands.InitMigrateCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize migrate commands: %w", err)
	}

	// Register user administration commands
	if err := commands.InitUserCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize user commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
