package input

import "github.com/valerio/jeebie-bitunit/jeebie/input/action"

// DefaultKeyMap provides default key mappings for the inspector.
// Backends can use these mappings as a base and override/extend as needed.
var DefaultKeyMap = map[string]action.Action{
	// Selection
	"Up":    action.SelectPrevOperand,
	"Down":  action.SelectNextOperand,
	"Left":  action.SelectHigherBit,
	"Right": action.SelectLowerBit,

	// Bit operations
	"t": action.ApplyTest,
	"r": action.ApplyReset,
	"s": action.ApplySet,

	// Inspector controls
	"p":      action.InspectorSnapshot,
	"Escape": action.InspectorQuit,
	"Ctrl+C": action.InspectorQuit,
	"q":      action.InspectorQuit,

	// Debug controls
	"+": action.DebugLogLevelIncrease,
	"=": action.DebugLogLevelIncrease, // Alternative without shift
	"-": action.DebugLogLevelDecrease,
	"_": action.DebugLogLevelDecrease, // Alternative with shift
}

// GetDefaultMapping returns the default action for a key, if one exists
func GetDefaultMapping(key string) (action.Action, bool) {
	act, ok := DefaultKeyMap[key]
	return act, ok
}
