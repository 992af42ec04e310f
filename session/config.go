package session

import (
	"io"
	"time"

	"github.com/papercomputeco/promptlab/pkg/examples"
)

// Config is the session configuration.
type Config struct {
	// Variant selects how requests are assembled and what is printed
	// around each reply.
	Variant Variant

	// In is read line by line for commands and chat messages.
	In io.Reader

	// Out receives the transcript.
	Out io.Writer

	// Markdown renders replies as terminal markdown instead of plain text.
	Markdown bool

	// Now is the clock used by local functions; time.Now when nil.
	Now func() time.Time
}

// Variant describes one prompting demo.
type Variant struct {
	Name     string
	Short    string
	Title    string
	Intro    string
	Farewell string

	// Examples builds the demonstrations replayed before each message.
	// Nil means none.
	Examples func() *examples.List

	// Roles sets the user role on the outgoing message. Single-shot
	// variants send the message without a role.
	Roles bool

	// Editable enables the add, list and clear commands.
	Editable bool

	// Functions runs detected function calls after each reply.
	Functions bool

	// Tokens prints word-count estimates for prompt and reply.
	Tokens bool
}
