package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleChangelog = `# Changelog

All notable changes to this project will be documented in this file.

## [Unreleased]

### Added
- Nothing yet

## [0.2.0] - 2026-02-10

### Added
- Multi-guild rules and the /check-role/{guild} endpoint

### Fixed
- Redirect handling for frontends with existing query strings

## [0.1.0] - 2026-01-05

### Added
- Initial OAuth2 flow and role gate

[Unreleased]: https://example.com/compare/v0.2.0...HEAD
[0.2.0]: https://example.com/compare/v0.1.0...v0.2.0
[0.1.0]: https://example.com/releases/v0.1.0
`

func TestParseReleases(t *testing.T) {
	releases := parseReleases([]byte(sampleChangelog))

	assert.Len(t, releases, 3)

	assert.True(t, releases[0].Unreleased())
	assert.Empty(t, releases[0].Date)

	assert.Equal(t, "0.2.0", releases[1].Version)
	assert.Equal(t, "2026-02-10", releases[1].Date)
	assert.Contains(t, releases[1].Notes, "Multi-guild rules")
	assert.Contains(t, releases[1].Notes, "Redirect handling")
	assert.NotContains(t, releases[1].Notes, "Initial OAuth2 flow")
	assert.Equal(t, "https://example.com/compare/v0.1.0...v0.2.0", releases[1].Link)

	assert.Equal(t, "0.1.0", releases[2].Version)
}

func TestFindRelease(t *testing.T) {
	releases := parseReleases([]byte(sampleChangelog))

	assert.NotNil(t, findRelease(releases, "0.1.0"))
	assert.NotNil(t, findRelease(releases, "v0.1.0"))
	assert.Nil(t, findRelease(releases, "9.9.9"))
}

func TestSplitHeading(t *testing.T) {
	cases := []struct {
		heading     string
		wantVersion string
		wantDate    string
	}{
		{"[1.2.3] - 2026-01-31", "1.2.3", "2026-01-31"},
		{"[Unreleased]", "Unreleased", ""},
		{"1.2.3 - 2026-01-31", "1.2.3", "2026-01-31"},
		{"1.2.3", "1.2.3", ""},
	}

	for _, tc := range cases {
		version, date := splitHeading(tc.heading)
		assert.Equal(t, tc.wantVersion, version, tc.heading)
		assert.Equal(t, tc.wantDate, date, tc.heading)
	}
}
