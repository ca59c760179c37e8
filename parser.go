package keymode

// Parser consumes keys one at a time and emits editing events.
//
// The selection argument tells the parser whether the host currently
// has a selection, which changes what operators apply to. Events are
// delivered to emit in the order the host must apply them.
type Parser interface {
	// Reset drops any partially entered command and returns the parser
	// to its initial mode.
	Reset()

	// Parse consumes one key.
	Parse(key Key, selection bool, emit func(Event))
}
