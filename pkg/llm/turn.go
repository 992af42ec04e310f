package llm

// Role names the speaker of a turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// NewTurn creates a single-text turn for the given role.
func NewTurn(role Role, text string) Content {
	return Content{
		Role:  role,
		Parts: []Part{{Text: text}},
	}
}

// UserTurn is shorthand for NewTurn(RoleUser, text).
func UserTurn(text string) Content {
	return NewTurn(RoleUser, text)
}

// ModelTurn is shorthand for NewTurn(RoleModel, text).
func ModelTurn(text string) Content {
	return NewTurn(RoleModel, text)
}
