// Package session implements the line-oriented chat loop shared by every
// prompting demo. A Session owns the example turns for its lifetime; nothing
// is persisted.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/papercomputeco/promptlab/pkg/examples"
	"github.com/papercomputeco/promptlab/pkg/function"
	"github.com/papercomputeco/promptlab/pkg/gemini"
	"github.com/papercomputeco/promptlab/pkg/llm"
	"github.com/papercomputeco/promptlab/pkg/tokens"
)

// Completer sends one generateContent request.
type Completer interface {
	Generate(ctx context.Context, req *llm.GenerateRequest) (*llm.GenerateResponse, error)
}

// State is the lifecycle of a Session.
type State int

const (
	Running State = iota
	Terminated
)

// Session is a single interactive chat.
type Session struct {
	variant    Variant
	examples   *examples.List
	completer  Completer
	dispatcher *function.Dispatcher
	logger     *zap.Logger

	in  *bufio.Reader
	out io.Writer
	ui  *printer

	state   State
	readErr error
}

// New creates a Session. The example list is built once from the variant and
// lives until the session ends.
func New(config Config, completer Completer, logger *zap.Logger) (*Session, error) {
	if completer == nil {
		return nil, errors.New("session requires a completer")
	}
	if config.In == nil || config.Out == nil {
		return nil, errors.New("session requires input and output")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Session{
		variant:    config.Variant,
		completer:  completer,
		dispatcher: &function.Dispatcher{Now: config.Now},
		logger:     logger,
		in:         bufio.NewReader(config.In),
		out:        config.Out,
		ui:         newPrinter(config.Out, config.Markdown),
	}
	if config.Variant.Examples != nil {
		s.examples = config.Variant.Examples()
	}

	return s, nil
}

// Examples returns the session's example list, or nil for variants without
// examples.
func (s *Session) Examples() *examples.List {
	return s.examples
}

// State reports whether the loop is still accepting input.
func (s *Session) State() State {
	return s.state
}

// Run prints the banner and processes input until exit, quit or end of input.
// Request failures are reported on the transcript and never end the loop.
func (s *Session) Run(ctx context.Context) error {
	s.ui.banner(s.variant)

	for s.state == Running {
		if err := ctx.Err(); err != nil {
			s.state = Terminated
			return err
		}

		line, ok := s.readLine("User: ")
		if !ok {
			s.terminate()
			break
		}
		s.handle(ctx, line)
	}

	return s.readErr
}

func (s *Session) handle(ctx context.Context, line string) {
	cmd := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(line)), "/")

	switch {
	case cmd == "exit" || cmd == "quit":
		s.terminate()
	case s.variant.Editable && cmd == "add":
		s.add()
	case s.variant.Editable && cmd == "list":
		s.list()
	case s.variant.Editable && cmd == "clear":
		s.examples.Clear()
		fmt.Fprintln(s.out, "All examples cleared!")
		fmt.Fprintln(s.out)
	default:
		s.send(ctx, line)
	}
}

func (s *Session) terminate() {
	s.state = Terminated
	fmt.Fprintln(s.out, s.variant.Farewell)
}

// add reads an example pair. End of input before both halves are read
// leaves the list untouched and ends the session.
func (s *Session) add() {
	fmt.Fprintln(s.out, "Enter the example user message:")
	user, ok := s.readLine("  Example User: ")
	if !ok {
		s.terminate()
		return
	}

	fmt.Fprintln(s.out, "Enter the example model response:")
	model, ok := s.readLine("  Example Model: ")
	if !ok {
		s.terminate()
		return
	}

	s.examples.Add(user, model)
	s.logger.Debug("example added", zap.Int("turns", s.examples.Len()))

	fmt.Fprintln(s.out, "Example added!")
	fmt.Fprintln(s.out)
}

func (s *Session) list() {
	if s.examples.Empty() {
		fmt.Fprintln(s.out, "No dynamic examples set.")
		return
	}

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Current dynamic examples:")
	for i, p := range s.examples.Pairs() {
		fmt.Fprintf(s.out, "  %d. User: %s\n     Model: %s\n", i, p.User, p.Model)
	}
}

// send builds a fresh request from the examples and text. The example list
// is read but never modified here.
func (s *Session) send(ctx context.Context, text string) {
	turn := llm.Content{Parts: []llm.Part{{Text: text}}}
	if s.variant.Roles {
		turn.Role = llm.RoleUser
	}

	contents := []llm.Content{turn}
	if s.examples != nil {
		contents = s.examples.Contents(turn)
	}

	if s.variant.Tokens {
		fmt.Fprintf(s.out, "[Prompt tokens used: %d]\n", tokens.Count(text))
	}

	resp, err := s.completer.Generate(ctx, &llm.GenerateRequest{Contents: contents})
	if err != nil {
		s.reportError(err)
		return
	}

	reply, err := resp.Text()
	if err != nil {
		s.reportError(fmt.Errorf("unexpected response: %w", err))
		return
	}

	s.ui.reply(reply)

	if s.variant.Tokens {
		fmt.Fprintf(s.out, "[Response tokens used: %d]\n\n", tokens.Count(reply))
	}

	if s.variant.Functions {
		if result, ok := s.dispatcher.Dispatch(function.Parse(reply)); ok {
			fmt.Fprintf(s.out, "[Function result]: %s\n\n", result)
		}
	}
}

func (s *Session) reportError(err error) {
	s.logger.Debug("generateContent failed", zap.Error(err))

	var statusErr *gemini.StatusError
	if errors.As(err, &statusErr) {
		s.ui.errorf("Error: %d - %s", statusErr.Code, statusErr.Reason)
		if details := statusErr.DetailsJSON(); details != "" {
			fmt.Fprintln(s.out, "Details:", details)
		} else if statusErr.Raw != "" {
			fmt.Fprintln(s.out, "Response:", statusErr.Raw)
		}
		return
	}

	s.ui.errorf("Error communicating with Gemini: %v", err)
}

// readLine reads one line of any length. A final line without a newline is
// still returned; end of input with nothing pending reports false.
func (s *Session) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)

	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.readErr = err
		}
		if line == "" {
			fmt.Fprintln(s.out)
			return "", false
		}
	}
	return strings.TrimRight(line, "\r\n"), true
}
