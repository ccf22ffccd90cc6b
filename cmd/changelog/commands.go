package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all versions in the changelog",
	RunE: func(cmd *cobra.Command, args []string) error {
		releases, err := loadReleases(cmd)
		if err != nil {
			return err
		}

		for _, release := range releases {
			if release.Date != "" {
				fmt.Printf("%s (%s)\n", release.Version, release.Date)
			} else {
				fmt.Println(release.Version)
			}
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <version>",
	Short: "Print a version's release notes",
	Long: `Print the release notes of one version, for piping into release
tooling.

Example:
  changelog show 0.2.0
  changelog show v0.2.0`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		releases, err := loadReleases(cmd)
		if err != nil {
			return err
		}

		release := findRelease(releases, args[0])
		if release == nil {
			return fmt.Errorf("version %s not found in changelog", args[0])
		}

		fmt.Println(release.Notes)
		if release.Link != "" {
			fmt.Printf("\n[%s]: %s\n", release.Version, release.Link)
		}
		return nil
	},
}

var (
	semverPattern  = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
	isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the changelog's version sections",
	Long: `Check that every version section has a semantic version, an ISO 8601
release date and a comparison link, and that an Unreleased section
exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		releases, err := loadReleases(cmd)
		if err != nil {
			return err
		}

		var problems []string
		unreleased := false
		for _, release := range releases {
			if release.Unreleased() {
				unreleased = true
				continue
			}
			if !semverPattern.MatchString(release.Version) {
				problems = append(problems, fmt.Sprintf("version %q is not semantic (X.Y.Z)", release.Version))
			}
			if !isoDatePattern.MatchString(release.Date) {
				problems = append(problems, fmt.Sprintf("version %q needs an ISO 8601 release date", release.Version))
			}
			if release.Link == "" {
				problems = append(problems, fmt.Sprintf("version %q has no link definition", release.Version))
			}
		}
		if !unreleased {
			problems = append(problems, "missing [Unreleased] section")
		}

		if len(problems) == 0 {
			fmt.Println("changelog OK")
			return nil
		}
		for _, p := range problems {
			fmt.Printf("  %s\n", p)
		}
		os.Exit(1)
		return nil
	},
}

func loadReleases(cmd *cobra.Command) ([]Release, error) {
	file, _ := cmd.Flags().GetString("file")
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return parseReleases(content), nil
}

func init() {
	for _, cmd := range []*cobra.Command{listCmd, showCmd, checkCmd} {
		cmd.Flags().StringP("file", "f", "CHANGELOG.md", "Path to the changelog file")
		rootCmd.AddCommand(cmd)
	}
}
