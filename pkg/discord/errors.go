package discord

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

//go:generate go run github.com/dmarkham/enumer -type Code -trimprefix Code -transform snake -output code.gen.go

// Code classifies a failure of the verification flow
type Code int

const (
	CodeMissingCode Code = iota
	CodeMissingAccessToken
	CodeTokenExchangeFailed
	CodeAccessDenied
	CodeNotAMember
	CodeRateLimited
	CodeUpstreamUnavailable
	CodeUnknownGuildRule
	CodeInternal
)

// Error is a typed failure produced at the boundary of an outbound
// Discord call. Status carries the upstream HTTP status when one was
// received, 0 for transport failures.
type Error struct {
	Code    Code
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (upstream status %d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// HTTPStatus maps the domain error to the local response status
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeMissingCode, CodeMissingAccessToken:
		return http.StatusBadRequest
	case CodeAccessDenied:
		return http.StatusForbidden
	case CodeNotAMember, CodeUnknownGuildRule:
		return http.StatusNotFound
	case CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

var (
	ErrMissingCode        = &Error{Code: CodeMissingCode, Message: "No authorization code provided"}
	ErrMissingAccessToken = &Error{Code: CodeMissingAccessToken, Message: "Access token required"}
)

// memberLookupError translates the upstream status of a guild member
// lookup into a domain error. Every caller of the member endpoint goes
// through this one mapping.
func memberLookupError(status int) *Error {
	switch status {
	case http.StatusForbidden:
		return &Error{
			Code:    CodeAccessDenied,
			Status:  status,
			Message: "Access denied - user may not be in the guild or lacks permissions",
		}
	case http.StatusNotFound:
		return &Error{
			Code:    CodeNotAMember,
			Status:  status,
			Message: "User is not a member of this guild",
		}
	case http.StatusTooManyRequests:
		return &Error{
			Code:    CodeRateLimited,
			Status:  status,
			Message: "Rate limited - try again later",
		}
	default:
		return &Error{
			Code:    CodeUpstreamUnavailable,
			Status:  status,
			Message: "Failed to check role",
		}
	}
}

// UnknownGuildRuleError reports a rule key that is not configured,
// listing the keys that are
func UnknownGuildRuleError(key string, available []string) *Error {
	return &Error{
		Code:    CodeUnknownGuildRule,
		Message: fmt.Sprintf("Guild '%s' not found. Available guilds: %s", key, strings.Join(available, ", ")),
	}
}

// AsError unwraps err into a domain *Error, falling back to an internal
// error so routes always have a status and message to respond with
func AsError(err error) *Error {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &Error{Code: CodeInternal, Message: "Internal server error"}
}
