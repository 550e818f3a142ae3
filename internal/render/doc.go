// Package render implements the terminal renderer: a declarative grid of
// styled cells, double-buffered, reconciled against the screen by emitting
// the minimal sequence of cursor-move, style-change, and print operations.
//
// The flow per frame: Terminal.Draw clears the in-progress buffer, hands a
// Frame to the caller to compose into, diffs the result against the buffer
// mirroring the screen, writes the delta as ANSI sequences, then swaps the
// two buffers.
package render
