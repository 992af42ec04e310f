package session

import "github.com/papercomputeco/promptlab/pkg/examples"

var (
	Basic = Variant{
		Name:     "basic",
		Short:    "Send each message on its own",
		Title:    "Welcome to Gemini",
		Intro:    "Start chatting with Gemini! Type 'exit' to quit.",
		Farewell: "Goodbye!",
	}

	OneShot = Variant{
		Name:     "one-shot",
		Short:    "Replay one example conversation before each message",
		Title:    "Welcome to Gemini (One-Shot)",
		Intro:    "This chatbot uses one-shot prompting: it always includes a cute example conversation to guide the AI's style!\nType 'exit' to quit.",
		Farewell: "Goodbye! Stay pawsitive! 🐾",
		Examples: examples.OneShot,
		Roles:    true,
	}

	MultiShot = Variant{
		Name:     "multi-shot",
		Short:    "Replay several example conversations before each message",
		Title:    "Welcome to Gemini (Multi-Shot)",
		Intro:    "This chatbot uses multi-shot prompting: it always includes several adorable example conversations to guide the AI's style!\nType 'exit' to quit.",
		Farewell: "Goodbye! Stay curious and cuddly! 🐾",
		Examples: examples.MultiShot,
		Roles:    true,
	}

	Dynamic = Variant{
		Name:  "dynamic",
		Short: "Edit the example conversations during the session",
		Title: "Welcome to Gemini (Dynamic Prompting)",
		Intro: "You can add or remove example Q&A pairs to guide the AI's style during this session!\n" +
			"Commands:\n" +
			"  /add     - Add a new example Q&A pair\n" +
			"  /list    - List current examples\n" +
			"  /clear   - Remove all examples\n" +
			"  /exit    - Quit",
		Farewell: "Goodbye! You can always come back and teach me new tricks! 🦄",
		Examples: func() *examples.List { return examples.New() },
		Roles:    true,
		Editable: true,
	}

	Functions = Variant{
		Name:      "functions",
		Short:     "Run local functions the model asks for",
		Title:     "Welcome to Gemini (Function Calling Demo)",
		Intro:     "Ask the model to call a function, e.g.:\n  get_time\n  add_numbers(3, 5)\nType 'exit' to quit.",
		Farewell:  "Goodbye! Function calling session ended.",
		Functions: true,
	}

	Tokens = Variant{
		Name:     "tokens",
		Short:    "Estimate tokens used by each prompt and reply",
		Title:    "Welcome to Gemini (Token Counting Demo)",
		Intro:    "This chatbot estimates and displays the number of tokens (words) used in each prompt and response.\nType 'exit' to quit.",
		Farewell: "Goodbye! Token counting session ended.",
		Tokens:   true,
	}
)

// Variants returns every demo in display order.
func Variants() []Variant {
	return []Variant{Basic, OneShot, MultiShot, Dynamic, Functions, Tokens}
}
