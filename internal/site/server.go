// Package site hosts the composed portfolio page: it serves the page and its
// assets over HTTP, runs the live page-shell channel and exports the page as
// static files.
package site

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/waiooaung/portfolio/internal/content"
	"github.com/waiooaung/portfolio/internal/page"
	"github.com/waiooaung/portfolio/internal/scroll"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	pageTemplate = "index.html"
	shellPath    = "/ws/shell"
)

// Config holds server configuration.
type Config struct {
	Port   int
	Live   bool // serve the live page-shell channel
	Scroll scroll.Options
	// Now feeds the footer year; time.Now when nil.
	Now    func() time.Time
}

type Server struct {
	cfg        Config
	model      content.Model
	page       page.Page
	templates  *template.Template
	engine     *gin.Engine
	httpServer *http.Server
	upgrader   websocket.Upgrader
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	t, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return t, nil
}

// Static returns the embedded asset tree rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

var funcs = template.FuncMap{
	// safeURL passes through hrefs built by the section renderers, such as
	// tel: links, that html/template would otherwise reject.
	"safeURL": func(s string) template.URL { return template.URL(s) },
}

// New composes the page once from m and builds the router.
func New(cfg Config, m content.Model) (*Server, error) {
	tmpl, err := Templates()
	if err != nil {
		return nil, err
	}

	shell := page.Shell{
		ScrollThreshold: cfg.Scroll.Threshold,
		ScrollBehavior:  cfg.Scroll.Behavior,
	}
	if cfg.Live {
		shell.LiveURL = shellPath[1:]
	}

	s := &Server{
		cfg:       cfg,
		model:     m,
		page:      page.Composer{Now: cfg.Now, Shell: shell}.Compose(m),
		templates: tmpl,
	}
	s.engine = s.buildRouter()
	return s, nil
}

func (s *Server) buildRouter() *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(s.templates)

	r.StaticFS("/static", http.FS(Static()))

	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, pageTemplate, s.page)
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if s.cfg.Live {
		r.GET(shellPath, s.handleShell)
	}
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Page returns the composed page.
func (s *Server) Page() page.Page { return s.page }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("site: listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// handleShell runs one page shell for the lifetime of the connection.
func (s *Server) handleShell(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("site: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	sess := NewSession(s.model.Nav, s.cfg.Scroll)
	if err := sess.Mount(); err != nil {
		log.Printf("site: shell %s: mount: %v", sess.ID, err)
		return
	}
	defer sess.Unmount()

	if err := conn.WriteJSON(sess.state()); err != nil {
		log.Printf("site: shell %s: write: %v", sess.ID, err)
		return
	}

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("site: shell %s: read: %v", sess.ID, err)
			}
			return
		}

		var msg inbound
		var replies []outbound
		if err := json.Unmarshal(raw, &msg); err != nil {
			replies = []outbound{{Type: MsgError, Error: "invalid message format"}, sess.state()}
		} else {
			replies = sess.Handle(msg)
		}

		for _, r := range replies {
			if err := conn.WriteJSON(r); err != nil {
				log.Printf("site: shell %s: write: %v", sess.ID, err)
				return
			}
		}
	}
}
