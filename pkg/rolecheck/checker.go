package rolecheck

import (
	"context"
	"slices"

	"rolegate/pkg/config"
	"rolegate/pkg/discord"
)

// MemberFetcher is the seam to the guild member lookup
type MemberFetcher interface {
	GuildMember(ctx context.Context, accessToken, guildID string) (*discord.Member, error)
}

// Checker evaluates configured guild rules against a fresh membership
// snapshot. It holds no state between requests; every check re-fetches.
type Checker struct {
	fetcher MemberFetcher
}

func NewChecker(fetcher MemberFetcher) *Checker {
	return &Checker{fetcher: fetcher}
}

// CheckRule performs one member lookup and reports whether the rule's
// role ID is among the roles the user holds in that guild
func (c *Checker) CheckRule(ctx context.Context, accessToken string, rule config.GuildRoleRule) (bool, error) {
	member, err := c.fetcher.GuildMember(ctx, accessToken, rule.GuildID)
	if err != nil {
		return false, err
	}
	return slices.Contains(member.Roles, rule.RoleID), nil
}

// CheckAll evaluates every rule independently. One rule's upstream
// failure is recorded on its own entry and never aborts the others.
func (c *Checker) CheckAll(ctx context.Context, accessToken string, rules map[string]config.GuildRoleRule) map[string]RuleResult {
	results := make(map[string]RuleResult, len(rules))
	for key, rule := range rules {
		result := RuleResult{
			GuildName: rule.GuildName,
			RoleName:  rule.RoleName,
		}
		hasRole, err := c.CheckRule(ctx, accessToken, rule)
		if err != nil {
			result.Error = discord.AsError(err).Message
		} else {
			result.HasRole = hasRole
		}
		results[key] = result
	}
	return results
}

// Gate evaluates the gate rule into the clean canMint contract. A
// definite "no role" answer (including a 404 not-a-member) names the
// missing role; an unverifiable check (upstream failure) says so
// instead of masquerading as a membership answer.
func (c *Checker) Gate(ctx context.Context, accessToken string, rule config.GuildRoleRule) GateResult {
	hasRole, err := c.CheckRule(ctx, accessToken, rule)
	switch {
	case err == nil && hasRole:
		return GateResult{CanMint: true, Message: MessageGranted}
	case err == nil:
		return GateResult{Message: deniedMessage(rule)}
	default:
		if discord.AsError(err).Code == discord.CodeNotAMember {
			return GateResult{Message: deniedMessage(rule)}
		}
		return GateResult{Message: MessageUnverified}
	}
}

func deniedMessage(rule config.GuildRoleRule) string {
	roleName := rule.RoleName
	if roleName == "" {
		roleName = "required role"
	}
	return "Access denied: " + roleName + " required"
}
