package capex

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset is returned when the store answers successfully but the
// projects list is empty. An empty sheet is almost always a misconfigured
// deployment rather than a genuinely blank portfolio.
var ErrEmptyDataset = errors.New("store returned no projects: check that the spreadsheet has Projects, OrderDetails and GlobalBudgets sheets and that the web app is deployed with access to it")

// RemoteError is a failure reported by the store itself: the HTTP exchange
// succeeded but the action was refused.
type RemoteError struct {
	Action  string
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("store rejected action %q", e.Action)
	}
	return fmt.Sprintf("store rejected action %q: %s", e.Action, e.Message)
}

// InvalidResponseError is returned when the store body cannot be interpreted.
// Snippet holds the beginning of the offending body, which for a
// misconfigured Apps Script deployment is typically an HTML login page.
type InvalidResponseError struct {
	Reason  string
	Snippet string
}

func (e *InvalidResponseError) Error() string {
	if e.Snippet == "" {
		return "invalid store response: " + e.Reason
	}
	return fmt.Sprintf("invalid store response: %s (body starts with %q)", e.Reason, e.Snippet)
}
