package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GuildRoleRule identifies one (guild, role) pair of interest. Rules are
// loaded once at process start and are immutable for the process lifetime.
type GuildRoleRule struct {
	// Key is the short name the rule is addressed by (e.g. "nads").
	// Set from the map key on load, never from the file body.
	Key string `yaml:"-" json:"key"`

	GuildID   string `yaml:"guild_id" json:"guildId"`
	GuildName string `yaml:"guild_name" json:"guildName"`
	RoleID    string `yaml:"role_id" json:"roleId"`
	RoleName  string `yaml:"role_name" json:"roleName"`
}

// Validate checks that the rule carries the IDs needed for a member lookup
func (r GuildRoleRule) Validate() error {
	if r.GuildID == "" {
		return fmt.Errorf("guild_id is required")
	}
	if r.RoleID == "" {
		return fmt.Errorf("role_id is required")
	}
	return nil
}

// rulesFile is the on-disk shape of a standalone rules file
type rulesFile struct {
	Rules map[string]GuildRoleRule `yaml:"rules"`
}

// LoadRules reads guild rules from a standalone YAML file
func LoadRules(path string) (map[string]GuildRoleRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}

	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}
	if len(file.Rules) == 0 {
		return nil, fmt.Errorf("rules file %s defines no rules", path)
	}

	for key, rule := range file.Rules {
		if err := rule.Validate(); err != nil {
			return nil, fmt.Errorf("rule %q: %w", key, err)
		}
	}

	return file.Rules, nil
}
