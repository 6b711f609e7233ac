// Package study implements the linear study-session state machine: a
// resettable walk through a deck's cards with a reveal-then-advance
// interaction per card. Transitions are pure functions so the rendering layer
// can stay a straight function of the current state.
package study

// State is the position of a study session: which card is showing, whether
// its back is revealed, and whether the session has finished. The zero value
// is the start of a fresh session.
type State struct {
	Index     int
	Revealed  bool
	Completed bool
}

type Action int

const (
	// Show reveals the current card's back.
	Show Action = iota
	// Forward advances to the next card, or completes the session on the
	// last card. Only available once the back is revealed.
	Forward
	// Back steps to the previous card, re-hidden. Only available once the
	// back is revealed and when not on the first card.
	Back
)

// Transition returns the state following action a. Illegal actions (advancing
// before reveal, stepping back from the first card, anything after
// completion, anything on an empty deck) leave the state unchanged.
func Transition(s State, a Action, cardCount int) State {
	if cardCount == 0 || s.Completed {
		return s
	}
	switch a {
	case Show:
		if !s.Revealed {
			s.Revealed = true
		}
	case Forward:
		if !s.Revealed {
			return s
		}
		if s.Index < cardCount-1 {
			return State{Index: s.Index + 1}
		}
		return State{Index: s.Index, Completed: true}
	case Back:
		if !s.Revealed || s.Index == 0 {
			return s
		}
		return State{Index: s.Index - 1}
	}
	return s
}

// ForwardLabel is the label for the forward control: "Next" until the last
// card, "Done" on it.
func ForwardLabel(s State, cardCount int) string {
	if s.Index == cardCount-1 {
		return "Done"
	}
	return "Next"
}

// CanBack reports whether the back control is available in state s.
func CanBack(s State) bool {
	return s.Revealed && !s.Completed && s.Index > 0
}
