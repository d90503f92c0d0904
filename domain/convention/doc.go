// Package convention implements the scripted partner's bidding system: a
// strong club with a 14-16 no-trump, Stayman, Jacoby and Texas transfers,
// a minor-suit transfer, Gerber and the Josephine top-honors ask.
//
// # Engine
//
// An Engine is bound to one hand for one auction. It is driven from outside:
// Start is the first activation, and every later activation is Resume with
// the partner's most recent call. Each activation either proposes a call with
// a rationale, reports ErrComplete when the sequence needs nothing more from
// this seat, or reports an *UnhandledError when the rule base has no answer
// for the auction. A proposed pass is a normal proposal, never an error.
//
// # Decision Tree
//
// The system is a tree of named states. Each state owns an ordered ladder of
// rules; the first rule whose condition holds decides the node that runs:
//
//   - propose: make a call and suspend at a named state
//   - terminal: make a call that ends the sequence
//   - delegate: enter a sub-procedure (Stayman, Gerber, Josephine) with the same call
//   - end: finish the sequence without a call
//
// The rule base is intentionally partial. A state with no matching rule is
// reported as unhandled rather than guessed.
package convention
