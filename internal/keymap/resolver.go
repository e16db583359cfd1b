package keymap

import "github.com/charmbracelet/bubbles/key"

// Resolver maps key strings to actions.
type Resolver struct {
	bindings map[string]Action      // key -> action
	byAction map[Action]key.Binding // action -> binding (for help)
}

// NewResolver creates a resolver from bindings. A key bound twice resolves
// to the last binding.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action]key.Binding),
	}
	for _, b := range bindings {
		for _, k := range b.Key.Keys() {
			r.bindings[k] = b.Action
		}
		r.byAction[b.Action] = b.Key
	}
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(k string) Action {
	return r.bindings[k]
}

// KeysFor returns the keys bound to an action.
func (r *Resolver) KeysFor(action Action) []string {
	b, ok := r.byAction[action]
	if !ok {
		return nil
	}
	return b.Keys()
}

// ShortHelp implements help.KeyMap.
func (r *Resolver) ShortHelp() []key.Binding {
	return r.helpFor(ActionPlayPause, ActionNextTrack, ActionToggleLike, ActionHelp, ActionQuit)
}

// FullHelp implements help.KeyMap, one column per context.
func (r *Resolver) FullHelp() [][]key.Binding {
	var columns [][]key.Binding
	for _, context := range []string{"playback", "display", "global"} {
		var actions []Action
		for _, b := range ByContext(context) {
			actions = append(actions, b.Action)
		}
		if col := r.helpFor(actions...); len(col) > 0 {
			columns = append(columns, col)
		}
	}
	return columns
}

func (r *Resolver) helpFor(actions ...Action) []key.Binding {
	result := make([]key.Binding, 0, len(actions))
	for _, a := range actions {
		if b, ok := r.byAction[a]; ok {
			result = append(result, b)
		}
	}
	return result
}
