// Package keymode turns modal keyboard input into editing events.
//
// The package is a parser, not an editor: it owns no text buffer and
// performs no terminal I/O. A host feeds it one Key at a time and
// receives zero or more Events through a callback. The host applies
// those events to whatever buffer representation it uses.
//
//	parser := keymode.NewViParser()
//	parser.Parse(keymode.Char('d'), false, apply)
//	parser.Parse(keymode.Char('w'), false, apply)
//
// The two calls above emit EventSelectStart, a word motion, and
// EventDelete, which together mean "delete the next word". Multi-key
// commands accumulate inside the parser until enough input has arrived
// to resolve them, so hosts never need their own pending-key state.
package keymode
