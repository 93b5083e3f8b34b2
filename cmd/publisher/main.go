package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/customer-page-service/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "publisher",
	Short: "Publish orders to the order feed and create customer sessions",
	Long: `publisher feeds the customer page service during development.

  publisher order < order.json             # publish one order to the configured feed
  publisher order --file order.json        # same, from a file
  publisher session --id 42 --email a@b.c  # create a customer session and print its token`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", os.Getenv("CONFIG_FILE"), "path to the YAML config file")
	rootCmd.AddCommand(newOrderCmd(), newSessionCmd())
}

func loadConfig() (config.Config, error) {
	return config.Load(cfgFile)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
