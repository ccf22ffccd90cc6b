package rolecheck

const (
	MessageGranted    = "Access granted: You can mint this NFT"
	MessageUnverified = "Access denied: Unable to verify Discord role"
)

// Result is the response shape of a single explicit role check
type Result struct {
	HasRole bool   `json:"hasRole"`
	GuildID string `json:"guildId"`
	RoleID  string `json:"roleId"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// RuleResult is one entry of a multi-rule evaluation
type RuleResult struct {
	HasRole   bool   `json:"hasRole"`
	GuildName string `json:"guildName"`
	RoleName  string `json:"roleName"`
	Error     string `json:"error,omitempty"`
}

// GateResult is the minting gate's answer. AccessToken is only set on
// flows that hand the token back to the caller for reuse.
type GateResult struct {
	CanMint     bool   `json:"canMint"`
	Message     string `json:"message"`
	AccessToken string `json:"accessToken,omitempty"`
}
