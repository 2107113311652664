// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the credit-lift-nexus CLI, a manual
// smoke-test client for the credit report processor function.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the credit-lift-nexus CLI.
var rootCmd = &cobra.Command{
	Use:   "credit-lift-nexus",
	Short: "Smoke-test client for the credit report processor",
	Long: `credit-lift-nexus exercises the credit report processor function with a
single POST request and prints the outcome. It targets either a local
functions-framework instance (the default) or a deployed function URL.

Use the smoke subcommand to send a request and the history subcommand to
inspect recorded runs.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./credit-lift-nexus.yaml or ~/.config/credit-lift-nexus/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("credit-lift-nexus")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "credit-lift-nexus"))
		}
	}

	viper.SetEnvPrefix("CREDIT_LIFT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
