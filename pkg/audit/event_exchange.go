package audit

import "fmt"

// TokenExchangeEvent records an OAuth2 authorization code exchange
type TokenExchangeEvent struct {
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e TokenExchangeEvent) MessageID() string {
	return "exchange"
}

func (e TokenExchangeEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s successfully exchanged an authorization code", e.ClientIP)
	}
	msg := fmt.Sprintf("%s failed to exchange an authorization code", e.ClientIP)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e TokenExchangeEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e TokenExchangeEvent) Facility() int {
	return FacilityAuth
}

func (e TokenExchangeEvent) StructuredData() map[string]map[string]string {
	result := "success"
	if !e.Success {
		result = "failure"
	}
	return map[string]map[string]string{
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "exchange",
			"result":    result,
		},
	}
}
