// Package fivewhys implements the question/answer chain of the
// 5-Whys method: a dynamically growing list of slots with a derived
// visible prefix, AI suggestion bookkeeping, and summary generation.
package fivewhys

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/resolvai/resolvai/internal/domain"
)

// DefaultQuestion returns the placeholder question for slot index i.
func DefaultQuestion(i int) string {
	return fmt.Sprintf("Por quê %d?", i+1)
}

// Slot is one (question, answer) pair in the chain. Token is a stable
// identifier so an in-flight AI suggestion stays bound to this slot
// even if the slot layout changes before the suggestion resolves.
type Slot struct {
	Token    string
	Question string
	Answer   string
}

// IsDefault reports whether the slot's question is still the untouched
// placeholder for index i.
func (s Slot) IsDefault(i int) bool {
	q := strings.TrimSpace(s.Question)
	return q == "" || q == DefaultQuestion(i)
}

// Filled reports whether the slot counts as filled at index i: its
// answer is non-empty or its question was customized by the user.
func (s Slot) Filled(i int) bool {
	return strings.TrimSpace(s.Answer) != "" || !s.IsDefault(i)
}

// Chain holds the ordered slot list plus the token of the slot an AI
// answer suggestion is pending for, if any.
type Chain struct {
	slots        []Slot
	pendingToken string
}

// NewChain creates a chain with a single default slot.
func NewChain() *Chain {
	c := &Chain{}
	c.grow(1)
	return c
}

// NewChainFromStudy rebuilds a chain from a stored 5-Whys payload,
// appending one empty slot so the investigation can continue.
func NewChainFromStudy(data *domain.FiveWhysData) *Chain {
	c := &Chain{}
	for i, q := range data.Questions {
		c.grow(i + 1)
		c.slots[i].Question = q
		if i < len(data.Answers) {
			c.slots[i].Answer = data.Answers[i]
		}
	}
	c.grow(len(data.Questions) + 1)
	return c
}

// grow lazily materializes slots up to length n with default questions.
func (c *Chain) grow(n int) {
	for len(c.slots) < n {
		c.slots = append(c.slots, Slot{
			Token:    uuid.New().String(),
			Question: DefaultQuestion(len(c.slots)),
		})
	}
}

// Len returns the materialized slot count.
func (c *Chain) Len() int { return len(c.slots) }

// Slot returns a copy of the slot at index i.
func (c *Chain) Slot(i int) Slot { return c.slots[i] }

// VisiblePrefix returns how many slots are visible: always at least
// one, plus one for each consecutive filled predecessor. Growth stops
// at the first slot that is default-and-empty.
func (c *Chain) VisiblePrefix() int {
	count := 1
	for i := 1; i < len(c.slots); i++ {
		if c.slots[i-1].Filled(i - 1) {
			count = i + 1
		} else {
			break
		}
	}
	return count
}

// CanAddSlot reports whether the user may append another slot: only
// when every materialized slot is visible and the last one is filled.
func (c *Chain) CanAddSlot() bool {
	last := c.VisiblePrefix() - 1
	if last != len(c.slots)-1 {
		return false
	}
	return c.slots[last].Filled(last)
}

// AddSlot appends one default slot. No-op when CanAddSlot is false,
// preventing runaway empty slots.
func (c *Chain) AddSlot() bool {
	if !c.CanAddSlot() {
		return false
	}
	c.grow(len(c.slots) + 1)
	return true
}

// SetAnswer writes an answer into slot i, materializing slots up to i
// if needed. A manual edit clears any AI suggestion pending for that
// slot so a stale suggestion never overrides the user's text.
func (c *Chain) SetAnswer(i int, answer string) {
	c.grow(i + 1)
	c.slots[i].Answer = answer
	if c.pendingToken == c.slots[i].Token {
		c.pendingToken = ""
	}
}

// SetQuestion overrides the question text of slot i.
func (c *Chain) SetQuestion(i int, question string) {
	c.grow(i + 1)
	c.slots[i].Question = question
}

// AppendFollowUp adds an accepted AI follow-up question with its
// answer as a new slot pair at the next free index.
func (c *Chain) AppendFollowUp(question, answer string) {
	i := len(c.slots)
	c.grow(i + 1)
	c.slots[i].Question = question
	c.slots[i].Answer = answer
}

// MarkPending records that an AI answer suggestion was dispatched for
// slot i and returns the slot's stable token.
func (c *Chain) MarkPending(i int) string {
	c.grow(i + 1)
	c.pendingToken = c.slots[i].Token
	return c.slots[i].Token
}

// ApplySuggestion writes a resolved AI suggestion into the slot bound
// to token. Returns false when the token no longer names a slot (the
// slot set changed since dispatch) or a manual edit cleared it; the
// suggestion is then dropped instead of landing on the wrong slot.
func (c *Chain) ApplySuggestion(token, suggestion string) bool {
	if token == "" || c.pendingToken != token {
		return false
	}
	for i := range c.slots {
		if c.slots[i].Token == token {
			c.slots[i].Answer = suggestion
			c.pendingToken = ""
			return true
		}
	}
	c.pendingToken = ""
	return false
}

// FilledAnswers returns the non-empty answers of the first n slots, in
// order. Used as AI context: a suggestion for slot i only sees the
// answers before it.
func (c *Chain) FilledAnswers(n int) []string {
	if n > len(c.slots) {
		n = len(c.slots)
	}
	var answers []string
	for i := 0; i < n; i++ {
		if a := strings.TrimSpace(c.slots[i].Answer); a != "" {
			answers = append(answers, a)
		}
	}
	return answers
}

// ErrNothingFilled is returned by Summary when no slot qualifies for
// inclusion. It is a user-facing validation failure, not a fault.
var ErrNothingFilled = fmt.Errorf(`preencha pelo menos o primeiro "Por quê?" e sua resposta`)

// Summary builds the persisted payload: slots are included while they
// are filled, stopping at the first default-and-empty slot after at
// least one inclusion. RootCause is the last non-empty included
// answer, or the last included question when nothing was answered.
func (c *Chain) Summary(problem string) (*domain.FiveWhysData, error) {
	type item struct {
		question string
		answer   string
	}
	var items []item
	for i, s := range c.slots {
		q := strings.TrimSpace(s.Question)
		if q == "" {
			q = DefaultQuestion(i)
		}
		a := strings.TrimSpace(s.Answer)
		if s.Filled(i) {
			items = append(items, item{question: q, answer: a})
		} else if len(items) > 0 {
			break
		}
	}
	if len(items) == 0 {
		return nil, ErrNothingFilled
	}

	questions := make([]string, 0, len(items))
	var answers []string
	for _, it := range items {
		questions = append(questions, it.question)
		if it.answer != "" {
			answers = append(answers, it.answer)
		}
	}

	rootCause := items[len(items)-1].question
	if len(answers) > 0 {
		rootCause = answers[len(answers)-1]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Problema inicial: %s", problem)
	for _, it := range items {
		answer := it.answer
		if answer == "" {
			answer = "(sem resposta)"
		}
		fmt.Fprintf(&b, "\n\n%s\nResposta: %s", it.question, answer)
	}
	fmt.Fprintf(&b, "\n\nCausa raiz identificada: %s", rootCause)

	return &domain.FiveWhysData{
		Problem:   problem,
		Questions: questions,
		Answers:   answers,
		RootCause: rootCause,
		Analysis:  b.String(),
	}, nil
}
