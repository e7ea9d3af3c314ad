package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// serverURL is the base URL of the CampusShare API.
var serverURL string

var rootCmd = &cobra.Command{
	Use:   "campusshare",
	Short: "CampusShare command line client",
	Long:  `Register students, list and search shareable resources, record exchanges and redeem rewards against a running CampusShare server.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "Base URL of the CampusShare API")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
