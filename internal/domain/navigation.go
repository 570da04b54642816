package domain

// OutcomeKind enumerates gate decisions.
type OutcomeKind string

const (
	OutcomeProceed  OutcomeKind = "proceed"
	OutcomeRedirect OutcomeKind = "redirect"
)

// NavigationOutcome is the result of evaluating one navigation attempt.
type NavigationOutcome struct {
	Kind     OutcomeKind `json:"outcome"`
	Location string      `json:"location,omitempty"`
}

// Proceed lets the navigation continue.
func Proceed() NavigationOutcome {
	return NavigationOutcome{Kind: OutcomeProceed}
}

// RedirectTo sends the navigation to location instead.
func RedirectTo(location string) NavigationOutcome {
	return NavigationOutcome{Kind: OutcomeRedirect, Location: location}
}

// IsRedirect reports whether the outcome is a redirect.
func (o NavigationOutcome) IsRedirect() bool {
	return o.Kind == OutcomeRedirect
}
