package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/flashdeck/flashdeck/internal/study"
)

// Study runs a linear study session over the open deck's cards. The session
// always starts fresh at the first card with the answer hidden.
func (a *App) Study(ctx context.Context) error {
	if !a.hasOpenDeck() {
		return fmt.Errorf("no deck open (run: open <n>)")
	}
	if len(a.cards) == 0 {
		printlnFn("Add cards to study.")
		return nil
	}

	st := study.State{}
	for {
		a.renderStudy(st)
		if st.Completed {
			return nil
		}
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return nil
		}
		switch strings.TrimSpace(line) {
		case "s":
			st = study.Transition(st, study.Show, len(a.cards))
		case "n":
			st = study.Transition(st, study.Forward, len(a.cards))
		case "p":
			st = study.Transition(st, study.Back, len(a.cards))
		case "q":
			return nil
		}
	}
}

func (a *App) renderStudy(st study.State) {
	if st.Completed {
		printlnFn("Study session done!")
		return
	}
	c := a.cards[st.Index]
	printlnFn(fmt.Sprintf("Card %d/%d", st.Index+1, len(a.cards)))
	printlnFn("Q: " + c.Front)
	if !st.Revealed {
		printlnFn("A: ?")
		printlnFn("[s] Show answer  [q] quit")
		return
	}
	printlnFn("A: " + c.Back)
	controls := ""
	if study.CanBack(st) {
		controls = "[p] Prev  "
	}
	controls += "[n] " + study.ForwardLabel(st, len(a.cards)) + "  [q] quit"
	printlnFn(controls)
}
