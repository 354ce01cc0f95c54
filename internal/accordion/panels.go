package accordion

import (
	"errors"
	"sync"
)

// ErrUnknownPanel indicates that the panel name is not registered.
var ErrUnknownPanel = errors.New("unknown panel")

// Management page panels.
const (
	PanelAddBank       = "addBank"
	PanelAddObjective  = "addObjective"
	PanelBankList      = "bankList"
	PanelObjectiveList = "objectiveList"
)

// Panels is a set of independently collapsible sections. Unlike Controller,
// any number of panels may be open at once.
type Panels struct {
	mu    sync.Mutex
	order []string
	open  map[string]bool
}

// NewPanels returns the given panels, all closed.
func NewPanels(names ...string) *Panels {
	p := &Panels{
		order: names,
		open:  make(map[string]bool, len(names)),
	}

	for _, n := range names {
		p.open[n] = false
	}

	return p
}

// NewManagementPanels returns the panels of the management page.
func NewManagementPanels() *Panels {
	return NewPanels(PanelAddBank, PanelAddObjective, PanelBankList, PanelObjectiveList)
}

// Toggle flips the named panel and returns its new state.
func (p *Panels) Toggle(name string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	open, ok := p.open[name]
	if !ok {
		return false, ErrUnknownPanel
	}

	p.open[name] = !open

	return !open, nil
}

// PanelState is the open flag of one panel.
type PanelState struct {
	Name string `json:"name"`
	Open bool   `json:"open"`
}

// States returns every panel in registration order.
func (p *Panels) States() []PanelState {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]PanelState, len(p.order))
	for i, n := range p.order {
		out[i] = PanelState{Name: n, Open: p.open[n]}
	}

	return out
}
