// Package nav owns the header menu: the ordered link set and the open/closed
// state of the compact (small viewport) menu.
package nav

import "github.com/waiooaung/portfolio/internal/content"

// Layout selects which rendering of the menu links are built for.
type Layout int

const (
	Wide Layout = iota
	Compact
)

func (l Layout) String() string {
	if l == Compact {
		return "compact"
	}
	return "wide"
}

type State struct {
	MenuOpen bool
}

type EventKind int

const (
	EventToggle EventKind = iota
	EventSelect
)

type Event struct {
	Kind EventKind
	ID   content.SectionID
}

// Next is the menu transition function. Toggle flips the menu and selecting
// any link closes it. Link ids are not checked here.
func Next(s State, e Event) State {
	switch e.Kind {
	case EventToggle:
		s.MenuOpen = !s.MenuOpen
	case EventSelect:
		s.MenuOpen = false
	}
	return s
}

// Link is a rendered menu entry.
type Link struct {
	ID         content.SectionID
	Label      string
	Href       string
	ClosesMenu bool
}

// Controller holds the menu state of one page shell. It is not safe for
// concurrent use; each shell drives its own controller from one goroutine.
type Controller struct {
	links []content.NavLink
	state State
}

func New(links []content.NavLink) *Controller {
	return &Controller{links: append([]content.NavLink(nil), links...)}
}

func (c *Controller) State() State { return c.state }

func (c *Controller) MenuOpen() bool { return c.state.MenuOpen }

func (c *Controller) ToggleMenu() State {
	c.state = Next(c.state, Event{Kind: EventToggle})
	return c.state
}

func (c *Controller) SelectLink(id content.SectionID) State {
	c.state = Next(c.state, Event{Kind: EventSelect, ID: id})
	return c.state
}

// Links returns the menu in link order for the given layout.
func (c *Controller) Links(layout Layout) []Link {
	out := make([]Link, 0, len(c.links))
	for _, l := range c.links {
		out = append(out, Link{
			ID:         l.ID,
			Label:      l.Label,
			Href:       l.Href(),
			ClosesMenu: layout == Compact,
		})
	}
	return out
}
