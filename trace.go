package feistel

import (
	"fmt"
	"strings"
)

// Round is a snapshot of the (L, R) state during a transform.
type Round struct {
	// Step is the position of the round in the walk, 1 through Rounds.
	// Step 0 is the entry state, before any round has run.
	Step int

	// Number is the encryption round number, 1 through Rounds. Decryption
	// visits the rounds in reverse, so its first step is round 4.
	Number int

	// Subkey is the subkey mixed into the round function.
	Subkey uint8

	// F is the round function output XORed into the left half.
	F uint8

	// L and R are the halves after the round.
	L, R uint8
}

// Trace records every intermediate state of one transform.
type Trace struct {
	Mode   Mode
	Input  uint16
	Rounds []Round
	Output uint16
}

// Trace runs the transform for mode over block and records the state after
// entry and after each round. The recorded Output equals what Encrypt or
// Decrypt returns for the same block.
func (c *Cipher) Trace(mode Mode, block uint16) (*Trace, error) {
	if !mode.Valid() {
		return nil, &InvalidModeError{Mode: mode.String()}
	}

	t := &Trace{
		Mode:   mode,
		Input:  block,
		Rounds: make([]Round, 0, Rounds+1),
	}
	t.Output = c.process(mode, block, func(r Round) {
		t.Rounds = append(t.Rounds, r)
	})

	log.Tracef("%v", newLogClosure(t.String))

	return t, nil
}

// String renders the trace one state per line.
func (t *Trace) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s:", t.Mode, FormatBlock(t.Input))
	for _, r := range t.Rounds {
		if r.Step == 0 {
			fmt.Fprintf(&b, " entry L=%s R=%s;",
				FormatHalf(r.L), FormatHalf(r.R))
			continue
		}
		fmt.Fprintf(&b, " step %d (round %d, k=%s, F=%s) L=%s R=%s;",
			r.Step, r.Number, FormatHalf(r.Subkey), FormatHalf(r.F),
			FormatHalf(r.L), FormatHalf(r.R))
	}
	fmt.Fprintf(&b, " output %s", FormatBlock(t.Output))
	return b.String()
}
