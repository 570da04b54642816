package dto

// ShellURLRequest carries a URL the window host is about to load or open.
type ShellURLRequest struct {
	URL string `json:"url"`
}

// NavigationDecision answers whether a URL may load in the portal window.
type NavigationDecision struct {
	URL     string `json:"url"`
	Allowed bool   `json:"allowed"`
}

// WindowOpenDecision answers a new-window request.
type WindowOpenDecision struct {
	URL    string `json:"url"`
	Action string `json:"action"`
}
