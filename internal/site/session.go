package site

import (
	"encoding/json"
	"strconv"

	"github.com/google/uuid"

	"github.com/waiooaung/portfolio/internal/content"
	"github.com/waiooaung/portfolio/internal/nav"
	"github.com/waiooaung/portfolio/internal/scroll"
)

// Message types exchanged on the live shell channel.
const (
	MsgScroll      = "scroll"
	MsgToggleMenu  = "toggle_menu"
	MsgSelectLink  = "select_link"
	MsgScrollToTop = "scroll_to_top"

	MsgState    = "state"
	MsgScrollTo = "scroll_to"
	MsgError    = "error"
)

// inbound is a browser event. select_link is only sent by the compact menu.
type inbound struct {
	Type   string  `json:"type"`
	Offset float64 `json:"offset,omitempty"`
	ID     string  `json:"id,omitempty"`
}

// outbound is a state update or command for the browser. On the wire each
// type carries only its own fields (see MarshalJSON).
type outbound struct {
	Type          string          `json:"type"`
	MenuOpen      bool            `json:"menu_open"`
	ShowScrollTop bool            `json:"show_scroll_top"`
	Top           float64         `json:"top"`
	Behavior      scroll.Behavior `json:"behavior"`
	Error         string          `json:"error"`
}

type stateReply struct {
	Type          string `json:"type"`
	MenuOpen      bool   `json:"menu_open"`
	ShowScrollTop bool   `json:"show_scroll_top"`
}

type scrollToReply struct {
	Type     string          `json:"type"`
	Top      float64         `json:"top"`
	Behavior scroll.Behavior `json:"behavior"`
}

type errorReply struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

func (o outbound) MarshalJSON() ([]byte, error) {
	switch o.Type {
	case MsgState:
		return json.Marshal(stateReply{Type: o.Type, MenuOpen: o.MenuOpen, ShowScrollTop: o.ShowScrollTop})
	case MsgScrollTo:
		return json.Marshal(scrollToReply{Type: o.Type, Top: o.Top, Behavior: o.Behavior})
	default:
		return json.Marshal(errorReply{Type: o.Type, Error: o.Error})
	}
}

// Session is the server half of one mounted page shell. It owns the shell's
// menu controller and scroll watcher and is driven by a single goroutine.
// A Session is the watcher's scroll source and its scroller at once:
// browser scroll events feed the subscription, scroll requests are queued
// as outbound commands.
type Session struct {
	ID uuid.UUID

	menu     *nav.Controller
	watcher  *scroll.Watcher
	listener func(offset float64)
	queued   []outbound
}

func NewSession(links []content.NavLink, opts scroll.Options) *Session {
	s := &Session{
		ID:   uuid.New(),
		menu: nav.New(links),
	}
	s.watcher = scroll.New(opts, s)
	return s
}

// Mount subscribes the watcher to this session's scroll events. Every
// successful Mount must be followed by Unmount.
func (s *Session) Mount() error {
	return s.watcher.Subscribe(s)
}

func (s *Session) Unmount() {
	s.watcher.Unsubscribe()
}

// Subscribe implements scroll.Source.
func (s *Session) Subscribe(fn func(offset float64)) func() {
	s.listener = fn
	return func() { s.listener = nil }
}

// ScrollTo implements scroll.Scroller.
func (s *Session) ScrollTo(top float64, behavior scroll.Behavior) error {
	s.queued = append(s.queued, outbound{Type: MsgScrollTo, Top: top, Behavior: behavior})
	return nil
}

func (s *Session) state() outbound {
	return outbound{
		Type:          MsgState,
		MenuOpen:      s.menu.MenuOpen(),
		ShowScrollTop: s.watcher.Visible(),
	}
}

// Handle applies one browser event and returns the replies in send order.
// Every event, even a bad one, is answered with the current state.
func (s *Session) Handle(msg inbound) []outbound {
	var out []outbound
	switch msg.Type {
	case MsgScroll:
		if s.listener != nil {
			s.listener(msg.Offset)
		}
	case MsgToggleMenu:
		s.menu.ToggleMenu()
	case MsgSelectLink:
		s.menu.SelectLink(content.SectionID(msg.ID))
	case MsgScrollToTop:
		if err := s.watcher.ScrollToTop(); err != nil {
			out = append(out, outbound{Type: MsgError, Error: err.Error()})
		}
	default:
		out = append(out, outbound{Type: MsgError, Error: "unknown message type " + strconv.Quote(msg.Type)})
	}
	out = append(out, s.queued...)
	s.queued = s.queued[:0]
	return append(out, s.state())
}
