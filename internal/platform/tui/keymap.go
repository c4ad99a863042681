package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions using the
// bindings from the config file. Configured bindings win over the built-in
// pause/restart/quit keys.
type KeyMapper struct {
	bindings map[string]core.Action
}

// NewKeyMapper builds a key mapper from the configured bindings.
func NewKeyMapper(cfg *config.Config) *KeyMapper {
	km := &KeyMapper{bindings: make(map[string]core.Action)}
	km.bind(cfg.MoveLeft, core.ActionLeft)
	km.bind(cfg.MoveRight, core.ActionRight)
	km.bind(cfg.RotateCW, core.ActionRotateCW)
	km.bind(cfg.RotateACW, core.ActionRotateACW)
	km.bind(cfg.SoftDrop, core.ActionSoftDrop)
	if cfg.HardDrop != nil {
		km.bind(*cfg.HardDrop, core.ActionHardDrop)
	}
	if cfg.Hold != nil {
		km.bind(*cfg.Hold, core.ActionHold)
	}

	for key, action := range map[string]core.Action{
		"esc":    core.ActionPause,
		"r":      core.ActionRestart,
		"q":      core.ActionQuit,
		"ctrl+c": core.ActionQuit,
	} {
		if _, taken := km.bindings[key]; !taken {
			km.bindings[key] = action
		}
	}
	return km
}

func (km *KeyMapper) bind(k config.Key, action core.Action) {
	km.bindings[teaKey(k)] = action
}

// teaKey converts a configured key to the string Bubble Tea reports for it.
// The shift and ctrl modifiers attach to the matching arrow key, which is how
// terminals deliver them.
func teaKey(k config.Key) string {
	switch k.Code {
	case config.KeyChar:
		return string(k.Char)
	case config.KeyLeft:
		return "left"
	case config.KeyRight:
		return "right"
	case config.KeyUp:
		return "up"
	case config.KeyDown:
		return "down"
	case config.KeyLShift:
		return "shift+left"
	case config.KeyRShift:
		return "shift+right"
	case config.KeyLCtrl:
		return "ctrl+left"
	case config.KeyRCtrl:
		return "ctrl+right"
	case config.KeyEsc:
		return "esc"
	default:
		return ""
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	a, ok := km.bindings[msg.String()]
	if !ok {
		return core.ActionNone, false
	}
	return a, a == core.ActionQuit
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
