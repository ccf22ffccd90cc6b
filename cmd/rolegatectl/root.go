package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rolegatectl",
	Short: "Discord role gate for NFT minting",
	Long: `rolegatectl runs and manages the rolegate server, which verifies
Discord guild role membership over OAuth2 and gates NFT minting on it.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
