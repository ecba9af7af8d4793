package sticky

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Left     key.Binding
	Right    key.Binding
	Home     key.Binding
	Touching key.Binding
	Copy     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "u"), key.WithHelp("u", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "d"), key.WithHelp("d", "page down")),
		Left:     key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h", "left")),
		Right:    key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l", "right")),
		Home:     key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "reset")),
		Touching: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "touching")),
		Copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy log")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.PageDown, k.Left, k.Right, k.Home, k.Touching, k.Copy, k.Quit}
}
