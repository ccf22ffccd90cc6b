package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// waitCmd represents the wait command
var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait for the rolegate server to be ready",
	Long: `Wait for the rolegate server to be ready by polling the health endpoint.

Polls until the server answers or the timeout elapses.

Example:
  rolegatectl wait
  rolegatectl wait --port 8080 --timeout 60s`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetInt("port")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		if err := waitForServer(port, timeout); err != nil {
			fmt.Fprintf(os.Stderr, "Server did not become ready: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(waitCmd)
	waitCmd.Flags().IntP("port", "p", defaultPortInt(), "Server port to check")
	waitCmd.Flags().DurationP("timeout", "t", 90*time.Second, "How long to keep polling")
}

func waitForServer(port int, timeout time.Duration) error {
	url := fmt.Sprintf("http://localhost:%d/health", port)
	client := &http.Client{Timeout: 2 * time.Second}
	deadline := time.Now().Add(timeout)

	fmt.Println("Waiting for rolegate to be ready...")

	for {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode < 300 {
				fmt.Println()
				fmt.Println("rolegate is ready!")
				return nil
			}
		}

		if time.Now().After(deadline) {
			fmt.Println()
			return fmt.Errorf("rolegate is not ready after %s", timeout)
		}

		fmt.Print(".")
		time.Sleep(time.Second)
	}
}
