package llm

// Part is a single piece of content. Only text parts are produced.
type Part struct {
	Text string `json:"text"`
}

// Content is one turn of a conversation-shaped request.
type Content struct {
	Role  Role   `json:"role,omitempty"` // empty for single-shot requests
	Parts []Part `json:"parts"`
}

// Text returns the text of the first part, or "" when there are no parts.
func (c Content) Text() string {
	if len(c.Parts) == 0 {
		return ""
	}
	return c.Parts[0].Text
}
