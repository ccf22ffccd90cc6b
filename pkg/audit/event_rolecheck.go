package audit

import "fmt"

// RoleCheckEvent records the outcome of a guild role membership check.
// It never carries tokens, only identifiers.
type RoleCheckEvent struct {
	Username     string
	ClientIP     string
	GuildID      string
	RoleID       string
	HasRole      bool
	ErrorMessage string
}

func (e RoleCheckEvent) MessageID() string {
	return "rolecheck"
}

func (e RoleCheckEvent) Message() string {
	user := e.Username
	if user == "" {
		user = "unknown user"
	}
	if e.ErrorMessage != "" {
		return fmt.Sprintf("%s role check for role %s in guild %s failed: %s", user, e.RoleID, e.GuildID, e.ErrorMessage)
	}
	if e.HasRole {
		return fmt.Sprintf("%s holds role %s in guild %s", user, e.RoleID, e.GuildID)
	}
	return fmt.Sprintf("%s does not hold role %s in guild %s", user, e.RoleID, e.GuildID)
}

func (e RoleCheckEvent) Severity() Severity {
	if e.ErrorMessage != "" {
		return SeverityWarning
	}
	return SeverityInfo
}

func (e RoleCheckEvent) Facility() int {
	return FacilityAuth
}

func (e RoleCheckEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if e.ErrorMessage != "" {
		result = "failure"
	}
	sd := map[string]map[string]string{
		SDIDSubject: {
			"guild": e.GuildID,
			"role":  e.RoleID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "rolecheck",
			"result":    result,
		},
	}
	if e.Username != "" {
		sd[SDIDAuth] = map[string]string{"user": e.Username}
	}
	return sd
}
