package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/lifehub/core/cmd/api/commands"
)

// @title LifeHub API
// @version 1.0
// @description Personal productivity tracker covering tasks, habits, addiction recovery and goals

// @contact.name LifeHub Support
// @contact.url https://github.com/lifehub/core

// @license.name MIT
// @license.url https://github.com/lifehub/core/blob/main/LICENSE

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	rootCmd := &cobra.Command{
		Use:   "lifehub",
		Short: "LifeHub API Server",
		Long:  `LifeHub is a personal productivity tracker for tasks, habits, addiction recovery and long-term goals.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewUserCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
