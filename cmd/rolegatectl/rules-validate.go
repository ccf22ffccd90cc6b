package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rolegate/pkg/config"
)

// rulesValidateCmd represents the rules validate command
var rulesValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a rules file",
	Long: `Validate a standalone YAML rules file without starting the server.

Example:
  rolegatectl rules validate /etc/rolegate/rules.yml`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rules, err := config.LoadRules(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid rules file: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("OK: %d rule(s)\n", len(rules))
		for key, rule := range rules {
			fmt.Printf("  %s: role %s in guild %s\n", key, rule.RoleID, rule.GuildID)
		}
	},
}

func init() {
	rulesCmd.AddCommand(rulesValidateCmd)
}
