package audit

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger()
	logger.SetWriter(&buf)

	event := RoleCheckEvent{
		Username: "wumpus",
		ClientIP: "192.168.1.1",
		GuildID:  "111222333",
		RoleID:   "444555666",
		HasRole:  true,
	}

	logger.Log(event)

	output := buf.String()

	// Check RFC5424 format components
	if !strings.Contains(output, "rolegate") {
		t.Error("Expected app name 'rolegate' in output")
	}
	if !strings.Contains(output, "rolecheck") {
		t.Error("Expected message ID 'rolecheck' in output")
	}
	if !strings.Contains(output, "wumpus") {
		t.Error("Expected username in output")
	}
	if !strings.Contains(output, "192.168.1.1") {
		t.Error("Expected client IP in output")
	}
	if !strings.Contains(output, "holds role 444555666 in guild 111222333") {
		t.Error("Expected success message in output")
	}
	if !strings.HasPrefix(output, "<") {
		t.Error("Expected RFC5424 PRI prefix in output")
	}
}

func TestRoleCheckEvent(t *testing.T) {
	tests := []struct {
		name      string
		event     RoleCheckEvent
		wantMsg   string
		wantSev   Severity
		wantMsgID string
	}{
		{
			name: "role held",
			event: RoleCheckEvent{
				Username: "wumpus",
				GuildID:  "g1",
				RoleID:   "r1",
				HasRole:  true,
			},
			wantMsg:   "holds role",
			wantSev:   SeverityInfo,
			wantMsgID: "rolecheck",
		},
		{
			name: "role missing",
			event: RoleCheckEvent{
				Username: "wumpus",
				GuildID:  "g1",
				RoleID:   "r1",
				HasRole:  false,
			},
			wantMsg:   "does not hold role",
			wantSev:   SeverityInfo,
			wantMsgID: "rolecheck",
		},
		{
			name: "check failed",
			event: RoleCheckEvent{
				Username:     "wumpus",
				GuildID:      "g1",
				RoleID:       "r1",
				ErrorMessage: "Rate limited - try again later",
			},
			wantMsg:   "failed: Rate limited",
			wantSev:   SeverityWarning,
			wantMsgID: "rolecheck",
		},
		{
			name: "anonymous user",
			event: RoleCheckEvent{
				GuildID: "g1",
				RoleID:  "r1",
			},
			wantMsg:   "unknown user",
			wantSev:   SeverityInfo,
			wantMsgID: "rolecheck",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.event.Message(), tt.wantMsg) {
				t.Errorf("Message() = %q, want substring %q", tt.event.Message(), tt.wantMsg)
			}
			if tt.event.Severity() != tt.wantSev {
				t.Errorf("Severity() = %d, want %d", tt.event.Severity(), tt.wantSev)
			}
			if tt.event.MessageID() != tt.wantMsgID {
				t.Errorf("MessageID() = %q, want %q", tt.event.MessageID(), tt.wantMsgID)
			}
		})
	}
}

func TestRoleCheckEventStructuredData(t *testing.T) {
	event := RoleCheckEvent{
		Username: "wumpus",
		ClientIP: "10.0.0.1",
		GuildID:  "g1",
		RoleID:   "r1",
		HasRole:  true,
	}

	sd := event.StructuredData()

	if sd[SDIDAuth]["user"] != "wumpus" {
		t.Errorf("Expected user in %s, got %v", SDIDAuth, sd[SDIDAuth])
	}
	if sd[SDIDSubject]["guild"] != "g1" || sd[SDIDSubject]["role"] != "r1" {
		t.Errorf("Expected guild and role in %s, got %v", SDIDSubject, sd[SDIDSubject])
	}
	if sd[SDIDAction]["result"] != "success" {
		t.Errorf("Expected success result, got %v", sd[SDIDAction])
	}
}

func TestTokenExchangeEvent(t *testing.T) {
	success := TokenExchangeEvent{ClientIP: "10.0.0.1", Success: true}
	if !strings.Contains(success.Message(), "successfully exchanged") {
		t.Errorf("Message() = %q", success.Message())
	}
	if success.Severity() != SeverityInfo {
		t.Errorf("Severity() = %d, want %d", success.Severity(), SeverityInfo)
	}

	failure := TokenExchangeEvent{ClientIP: "10.0.0.1", ErrorMessage: "invalid_grant"}
	if !strings.Contains(failure.Message(), "failed to exchange an authorization code: invalid_grant") {
		t.Errorf("Message() = %q", failure.Message())
	}
	if failure.Severity() != SeverityWarning {
		t.Errorf("Severity() = %d, want %d", failure.Severity(), SeverityWarning)
	}
	if failure.StructuredData()[SDIDAction]["result"] != "failure" {
		t.Error("Expected failure result in structured data")
	}
}

func TestEscapeSDValue(t *testing.T) {
	escaped := escapeSDValue(`va"lue\with]chars`)
	want := `"va\"lue\\with\]chars"`
	if escaped != want {
		t.Errorf("escapeSDValue() = %s, want %s", escaped, want)
	}
}
