package main

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"rolegate/pkg/config"
	"rolegate/pkg/discord"
)

// authorizeURLCmd represents the authorize-url command
var authorizeURLCmd = &cobra.Command{
	Use:   "authorize-url",
	Short: "Print the Discord authorize URL for the current configuration",
	Long: `Print the Discord OAuth2 authorize URL the /login route would
redirect to, for pasting into docs or for a manual test of the
application settings.

Example:
  rolegatectl authorize-url
  rolegatectl authorize-url --redirect https://mint.example.com/result`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
			os.Exit(1)
		}
		if cfg.ClientID == "" || cfg.RedirectURI == "" {
			fmt.Fprintln(os.Stderr, "client_id and redirect_uri must be configured")
			os.Exit(1)
		}

		exchanger := discord.NewExchanger(discord.ExchangerConfig{
			ClientID:    cfg.ClientID,
			RedirectURI: cfg.RedirectURI,
			Scopes:      cfg.Scopes,
			APIBaseURL:  cfg.DiscordAPIURL,
		}, nil)

		redirectURI := ""
		if redirect, _ := cmd.Flags().GetString("redirect"); redirect != "" {
			redirectURI = cfg.RedirectURI + "?redirect=" + url.QueryEscape(redirect)
		}

		fmt.Println(exchanger.AuthCodeURL(redirectURI))
	},
}

func init() {
	rootCmd.AddCommand(authorizeURLCmd)
	authorizeURLCmd.Flags().String("redirect", "", "frontend URL to bounce the gate answer to")
}
