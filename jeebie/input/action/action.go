package action

// Action represents input actions the inspector can perform
type Action int

const (
	// Operand and bit selection
	SelectPrevOperand Action = iota
	SelectNextOperand
	SelectHigherBit
	SelectLowerBit

	// Bit operations on the selection
	ApplyTest
	ApplyReset
	ApplySet

	// Inspector features
	InspectorSnapshot
	InspectorQuit

	// Debug controls
	DebugLogLevelIncrease
	DebugLogLevelDecrease
)

func (a Action) String() string {
	switch a {
	case SelectPrevOperand:
		return "SelectPrevOperand"
	case SelectNextOperand:
		return "SelectNextOperand"
	case SelectHigherBit:
		return "SelectHigherBit"
	case SelectLowerBit:
		return "SelectLowerBit"
	case ApplyTest:
		return "ApplyTest"
	case ApplyReset:
		return "ApplyReset"
	case ApplySet:
		return "ApplySet"
	case InspectorSnapshot:
		return "InspectorSnapshot"
	case InspectorQuit:
		return "InspectorQuit"
	case DebugLogLevelIncrease:
		return "DebugLogLevelIncrease"
	case DebugLogLevelDecrease:
		return "DebugLogLevelDecrease"
	default:
		return "Unknown"
	}
}
