package input

import (
	"log/slog"

	"github.com/valerio/jeebie-bitunit/jeebie/input/action"
)

// Manager handles input actions and their associated callbacks
type Manager struct {
	handlers map[action.Action][]func()
}

func NewManager() *Manager {
	return &Manager{
		handlers: make(map[action.Action][]func()),
	}
}

// On registers a callback for a specific action
func (m *Manager) On(act action.Action, callback func()) {
	m.handlers[act] = append(m.handlers[act], callback)
}

// Trigger runs the callbacks registered for act and reports whether any ran.
func (m *Manager) Trigger(act action.Action) bool {
	callbacks := m.handlers[act]
	if len(callbacks) == 0 {
		slog.Debug("No handler for action", "action", act)
		return false
	}
	for _, callback := range callbacks {
		callback()
	}
	return true
}

// TriggerKey looks up key in DefaultKeyMap and triggers its action.
func (m *Manager) TriggerKey(key string) bool {
	act, ok := GetDefaultMapping(key)
	if !ok {
		return false
	}
	return m.Trigger(act)
}
