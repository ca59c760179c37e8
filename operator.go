package keymode

// Operator is a pending action that consumes a motion or text object,
// such as the "d" of "dw". The zero value means no operator is pending.
type Operator int

const (
	OperatorNone Operator = iota
	OperatorAutoIndent
	OperatorChange
	OperatorDelete
	OperatorShiftLeft
	OperatorShiftRight
	OperatorSwapCase
	OperatorYank
)

func (o Operator) String() string {
	switch o {
	case OperatorAutoIndent:
		return "AutoIndent"
	case OperatorChange:
		return "Change"
	case OperatorDelete:
		return "Delete"
	case OperatorShiftLeft:
		return "ShiftLeft"
	case OperatorShiftRight:
		return "ShiftRight"
	case OperatorSwapCase:
		return "SwapCase"
	case OperatorYank:
		return "Yank"
	}
	return "None"
}
