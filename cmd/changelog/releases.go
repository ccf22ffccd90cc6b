package main

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Release is one version section of the changelog
type Release struct {
	Version string
	Date    string
	Notes   string
	Link    string
}

// Unreleased reports whether this is the [Unreleased] section
func (r Release) Unreleased() bool {
	return strings.EqualFold(r.Version, "unreleased")
}

// parseReleases splits a Keep a Changelog file into its version
// sections. The markdown is parsed with goldmark and sections are cut
// at the level-2 headings.
func parseReleases(source []byte) []Release {
	md := goldmark.New()
	ctx := parser.NewContext()
	doc := md.Parser().Parse(text.NewReader(source), parser.WithContext(ctx))

	links := make(map[string]string)
	for _, ref := range ctx.References() {
		links[strings.ToLower(string(ref.Label()))] = string(ref.Destination())
	}

	type section struct {
		release    Release
		start, end int
	}
	var sections []section

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level != 2 {
			return ast.WalkContinue, nil
		}

		version, date := splitHeading(headingText(heading, source))
		lines := heading.Lines()
		if lines.Len() == 0 {
			return ast.WalkContinue, nil
		}

		sections = append(sections, section{
			release: Release{
				Version: version,
				Date:    date,
				Link:    links[strings.ToLower(version)],
			},
			start: lines.At(0).Start,
			end:   lines.At(lines.Len() - 1).Stop,
		})
		return ast.WalkContinue, nil
	})

	releases := make([]Release, 0, len(sections))
	for i, s := range sections {
		notesEnd := len(source)
		if i+1 < len(sections) {
			notesEnd = sections[i+1].start
		}
		s.release.Notes = strings.TrimSpace(string(source[s.end:notesEnd]))
		releases = append(releases, s.release)
	}
	return releases
}

// findRelease matches a version with or without a leading "v"
func findRelease(releases []Release, version string) *Release {
	version = strings.TrimPrefix(version, "v")
	for i := range releases {
		if strings.TrimPrefix(releases[i].Version, "v") == version {
			return &releases[i]
		}
	}
	return nil
}

func headingText(heading *ast.Heading, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(heading, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if textNode, ok := n.(*ast.Text); ok {
				buf.Write(textNode.Segment.Value(source))
			}
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

// splitHeading pulls "[1.2.3] - 2026-01-31" apart into version and date
func splitHeading(heading string) (version, date string) {
	heading = strings.TrimSpace(heading)
	heading = strings.TrimPrefix(heading, "[")

	if idx := strings.Index(heading, "]"); idx != -1 {
		version = heading[:idx]
		heading = heading[idx+1:]
	} else if idx := strings.Index(heading, " - "); idx != -1 {
		version = strings.TrimSpace(heading[:idx])
		heading = heading[idx:]
	} else {
		return heading, ""
	}

	if idx := strings.Index(heading, "- "); idx != -1 {
		date = strings.TrimSpace(heading[idx+2:])
	}
	return version, date
}
