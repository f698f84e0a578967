package main

import (
	"fmt"
	"sync"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/gnuchess-board-go/internal/config"
	"github.com/lgbarn/gnuchess-board-go/internal/errors"
	"github.com/lgbarn/gnuchess-board-go/internal/output"
	"github.com/lgbarn/gnuchess-board-go/internal/parser"
	"github.com/lgbarn/gnuchess-board-go/internal/session"
	"github.com/lgbarn/gnuchess-board-go/internal/worker"
)

// liveSession is a session with its own engine. mu serialises requests.
type liveSession struct {
	mu     sync.Mutex
	s      *session.Session
	engine session.Engine
}

// Server exposes sessions over HTTP.
type Server struct {
	cfg       *config.Config
	newEngine worker.EngineFactory

	mu       sync.Mutex
	sessions map[string]*liveSession
}

// NewServer creates a server with no sessions.
func NewServer(cfg *config.Config, newEngine worker.EngineFactory) *Server {
	return &Server{
		cfg:       cfg,
		newEngine: newEngine,
		sessions:  make(map[string]*liveSession),
	}
}

func runServe(cfg *config.Config, newEngine worker.EngineFactory) error {
	app := NewServer(cfg, newEngine).App()
	cfg.Logf(config.Summary, "listening on %s\n", cfg.Server.Addr)
	return app.Listen(cfg.Server.Addr)
}

// App builds the fiber application.
func (srv *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	api := app.Group("/api")
	api.Post("/sessions", srv.CreateSession)
	api.Get("/sessions", srv.ListSessions)
	api.Get("/sessions/:id", srv.GetSession)
	api.Post("/sessions/:id/move", srv.withSession(srv.Move))
	api.Post("/sessions/:id/robot", srv.withSession(srv.Robot))
	api.Post("/sessions/:id/hint", srv.withSession(srv.Hint))
	api.Post("/sessions/:id/undo", srv.withSession(srv.Undo))
	api.Post("/parse", srv.Parse)

	return app
}

func (srv *Server) lookup(id string) (*liveSession, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	ls, ok := srv.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnknownSession, id)
	}
	return ls, nil
}

func notFound(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// withSession finds the session named in the path and holds its lock
// while h runs.
func (srv *Server) withSession(h func(c *fiber.Ctx, ls *liveSession) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ls, err := srv.lookup(c.Params("id"))
		if err != nil {
			return notFound(c, err)
		}
		ls.mu.Lock()
		defer ls.mu.Unlock()
		return h(c, ls)
	}
}

func (srv *Server) reports(c *fiber.Ctx, ls *liveSession, reports ...*session.Report) error {
	out := make([]*output.JSONReport, 0, len(reports))
	for _, r := range reports {
		out = append(out, output.ReportToJSON(ls.s, r, srv.cfg.Output.ShowRoster))
	}
	return c.JSON(fiber.Map{
		"reports": out,
	})
}

// CreateSession starts a new game and returns its id.
func (srv *Server) CreateSession(c *fiber.Ctx) error {
	srv.mu.Lock()
	if len(srv.sessions) >= srv.cfg.Server.MaxSessions {
		srv.mu.Unlock()
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "session limit reached",
		})
	}
	ls := &liveSession{s: session.New(srv.cfg), engine: srv.newEngine()}
	srv.sessions[ls.s.ID] = ls
	srv.mu.Unlock()

	ls.mu.Lock()
	defer ls.mu.Unlock()
	srv.cfg.Logf(config.Summary, "session %s created\n", ls.s.ID)
	reports := ls.s.Start(ls.engine)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":    ls.s.ID,
		"state": output.SessionToJSON(ls.s),
		"last":  output.ReportToJSON(ls.s, reports[len(reports)-1], srv.cfg.Output.ShowRoster),
	})
}

// ListSessions returns the live session ids in sorted order.
func (srv *Server) ListSessions(c *fiber.Ctx) error {
	srv.mu.Lock()
	ids := maps.Keys(srv.sessions)
	srv.mu.Unlock()
	slices.Sort(ids)

	return c.JSON(fiber.Map{
		"sessions": ids,
	})
}

// GetSession returns the moves and board of one session.
func (srv *Server) GetSession(c *fiber.Ctx) error {
	ls, err := srv.lookup(c.Params("id"))
	if err != nil {
		return notFound(c, err)
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return c.JSON(output.SessionToJSON(ls.s))
}

type moveRequest struct {
	Move string `json:"move"`
	Ply  int    `json:"ply"`
}

// Move plays the user's move, followed by the engine's reply when it is
// the engine's turn.
func (srv *Server) Move(c *fiber.Ctx, ls *liveSession) error {
	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if _, err := parser.ParseMove(req.Move, ls.s.ToMove()); err != nil {
		return badRequest(c, err)
	}
	return srv.reports(c, ls, ls.s.Play(ls.engine, req.Move)...)
}

// Robot asks the engine to move for the side to move.
func (srv *Server) Robot(c *fiber.Ctx, ls *liveSession) error {
	return srv.reports(c, ls, ls.s.Do(ls.engine, session.Request{Kind: session.RobotMove}))
}

// Hint asks the engine for a suggestion without playing it.
func (srv *Server) Hint(c *fiber.Ctx, ls *liveSession) error {
	return srv.reports(c, ls, ls.s.Do(ls.engine, session.Request{Kind: session.Hint}))
}

// Undo takes back the last move, or the last full move against the engine.
func (srv *Server) Undo(c *fiber.Ctx, ls *liveSession) error {
	r, ok := ls.s.TakeBack(ls.engine)
	if !ok {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "nothing to take back",
		})
	}
	return srv.reports(c, ls, r)
}

// Parse describes a move without touching any session.
func (srv *Server) Parse(c *fiber.Ctx) error {
	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	m, err := parser.ParseForHistory(req.Move, req.Ply)
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(output.MoveToJSON(m))
}
