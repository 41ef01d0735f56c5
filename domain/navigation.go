package domain

// NavigationTarget tells the storefront which page to open next.
type NavigationTarget struct {
	Page   string            `json:"page"`
	Params map[string]string `json:"params,omitempty"`
}

// AgentResponse is the envelope every agent command resolves to.
type AgentResponse struct {
	Action      Intent            `json:"action"`
	Message     string            `json:"message"`
	Navigation  *NavigationTarget `json:"navigation,omitempty"`
	Data        any               `json:"data,omitempty"`
	Summary     string            `json:"summary,omitempty"`
	Status      string            `json:"status"`
	Suggestions []string          `json:"suggestions,omitempty"`
	SessionID   string            `json:"session_id,omitempty"`
}
