// Package examples holds the ordered user/model demonstration turns that are
// replayed ahead of every chat message.
package examples

import (
	"iter"

	"github.com/papercomputeco/promptlab/pkg/llm"
)

// Pair is one user/model demonstration.
type Pair struct {
	User  string
	Model string
}

// List is an ordered sequence of example turns. It always holds an even
// number of turns alternating user then model.
type List struct {
	turns []llm.Content
}

// New creates a List seeded with the given pairs, in order.
func New(pairs ...Pair) *List {
	l := &List{turns: make([]llm.Content, 0, 2*len(pairs))}
	for _, p := range pairs {
		l.Add(p.User, p.Model)
	}
	return l
}

// Add appends a user turn and a model turn as one pair. Empty text is allowed.
func (l *List) Add(user, model string) {
	l.turns = append(l.turns, llm.UserTurn(user), llm.ModelTurn(model))
}

// Clear removes every example.
func (l *List) Clear() {
	l.turns = l.turns[:0]
}

// Len returns the number of turns, which is twice the number of pairs.
func (l *List) Len() int {
	return len(l.turns)
}

// Empty reports whether the list holds no examples.
func (l *List) Empty() bool {
	return len(l.turns) == 0
}

// Pairs yields each pair with its 1-based position. Every call starts a
// fresh walk over the current contents.
func (l *List) Pairs() iter.Seq2[int, Pair] {
	return func(yield func(int, Pair) bool) {
		for i := 0; i+1 < len(l.turns); i += 2 {
			p := Pair{User: l.turns[i].Text(), Model: l.turns[i+1].Text()}
			if !yield(i/2+1, p) {
				return
			}
		}
	}
}

// Contents returns a new slice holding the example turns followed by next.
// The list itself is not modified.
func (l *List) Contents(next llm.Content) []llm.Content {
	out := make([]llm.Content, 0, len(l.turns)+1)
	out = append(out, l.turns...)
	return append(out, next)
}
