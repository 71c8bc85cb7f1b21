package core

// error_messages.go maps technical errors to user-facing messages with a
// support code. The only hard failure of the dashboard is loading the
// dataset; everything after that degrades to empty results, so most codes
// here belong to the load path or to malformed requests.
//
// Codes are grouped by category:
//
//	LOAD001 - Dataset unreachable       Patterns: "fetch dataset"
//	LOAD002 - Missing column            Patterns: "missing required column"
//	LOAD003 - Invalid row               Patterns: "invalid row"
//	LOAD004 - Empty dataset             Patterns: "empty dataset"
//	LOAD005 - Database source           Patterns: "query dataset", "connect dataset"
//	REQ001  - Bad filter value          Patterns: "invalid filter"
//	REQ002  - Bad page                  Patterns: "invalid page"
//	RATE001 - Too many requests         Patterns: "rate limit"
//	CTX001  - Cancelled                 Patterns: "context canceled"
//	CTX002  - Timeout                   Patterns: "context deadline exceeded", "timeout"
//	ERR000  - Fallback

import (
	"fmt"
	"strings"
)

// UserMessage is a user-friendly error description.
type UserMessage struct {
	Message string // What happened
	Action  string // What to do about it
	Code    string // Support reference
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	{
		pattern: "fetch dataset",
		msg: UserMessage{
			Message: "The salary dataset could not be downloaded",
			Action:  "Check DATASET_SOURCE and network access, then restart",
			Code:    "LOAD001",
		},
	},
	{
		pattern: "missing required column",
		msg: UserMessage{
			Message: "The dataset is missing a required column",
			Action:  "The CSV must contain ano, senioridade, contrato, tamanho_empresa, cargo, usd, remoto and residencia",
			Code:    "LOAD002",
		},
	},
	{
		pattern: "invalid row",
		msg: UserMessage{
			Message: "The dataset contains a malformed row",
			Action:  "Fix the reported line; ano must be an integer and usd a non-negative number",
			Code:    "LOAD003",
		},
	},
	{
		pattern: "empty dataset",
		msg: UserMessage{
			Message: "The dataset has no rows",
			Action:  "Point DATASET_SOURCE at a file with data rows",
			Code:    "LOAD004",
		},
	},
	{
		pattern: "query dataset",
		msg: UserMessage{
			Message: "The dataset table could not be read",
			Action:  "Check DATASET_TABLE and database permissions",
			Code:    "LOAD005",
		},
	},
	{
		pattern: "connect dataset",
		msg: UserMessage{
			Message: "Unable to connect to the dataset database",
			Action:  "Check the connection string in DATASET_SOURCE",
			Code:    "LOAD005",
		},
	},
	{
		pattern: "invalid filter",
		msg: UserMessage{
			Message: "A filter value could not be understood",
			Action:  "Years must be whole numbers",
			Code:    "REQ001",
		},
	},
	{
		pattern: "invalid page",
		msg: UserMessage{
			Message: "The requested page does not exist",
			Action:  "Use a page number of 1 or more",
			Code:    "REQ002",
		},
	},
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a minute before trying again",
			Code:    "RATE001",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "CTX001",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Please try again",
			Code:    "CTX002",
		},
	},
	{
		pattern: "timeout",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Please try again",
			Code:    "CTX002",
		},
	},
}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message. Patterns
// are matched case-insensitively in declaration order; the first match wins.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}
	return defaultMessage
}

// FormatUserError renders "Message (Code: XXX). Action".
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err matches a known pattern.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
