package models

// DraftRequest is the payload for the AI drafting assistants.
type DraftRequest struct {
	Topic    string `json:"topic" binding:"required"`
	Audience string `json:"audience,omitempty"` // e.g. "students", "faculty"
	Tone     string `json:"tone,omitempty"`     // e.g. "formal", "friendly"
	Notes    string `json:"notes,omitempty"`    // free-form points to include
}

// DraftResponse carries the generated text back to the authoring UI.
type DraftResponse struct {
	Content string `json:"content"`
}
