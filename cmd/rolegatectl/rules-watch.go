package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"rolegate/pkg/config"
)

// rulesWatchCmd represents the rules watch command
var rulesWatchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Watch a rules file and validate it on every change",
	Long: `Watch a rules file and re-validate it whenever it is modified.

The server loads rules once at startup, so this command is a deployment
aid: run it next to whatever edits the rules file to catch a broken
file before the next server restart.

Example:
  rolegatectl rules watch /etc/rolegate/rules.yml`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := watchRules(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch rules: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rulesCmd.AddCommand(rulesWatchCmd)
}

func watchRules(filename string) error {
	if _, err := config.LoadRules(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: current file is invalid: %v\n", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filename); err != nil {
		return fmt.Errorf("failed to watch file %s: %w", filename, err)
	}

	fmt.Printf("Watching %s for rule changes\n", filename)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				fmt.Printf("[%s] File modified, validating...\n", time.Now().Format(time.RFC3339))

				rules, err := config.LoadRules(filename)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Invalid rules file: %v\n", err)
				} else {
					fmt.Printf("OK: %d rule(s)\n", len(rules))
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-sigChan:
			fmt.Println("\nShutting down...")
			return nil
		}
	}
}
