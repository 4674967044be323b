package rest

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

//go:embed templates/page.html
var templates embed.FS

type game interface {
	CurrentBoard() entity.Board
	CurrentStep() int
	StatusText() string
	MoveList() []tictactoe.Move

	HandleCellClick(cell int)
	JumpTo(step int)
}

// Server renders one game as HTML. Requests are handled one at a time so
// events never interleave.
type Server struct {
	logger *slog.Logger

	mu   sync.Mutex
	game game

	page *template.Template
}

func New(logger *slog.Logger, game game) *Server {
	return &Server{
		logger: logger.With("component", "rest"),
		game:   game,
		page:   template.Must(template.ParseFS(templates, "templates/page.html")),
	}
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", that.handlePing)
	mux.HandleFunc("GET /{$}", that.handlePage)
	mux.HandleFunc("GET /state", that.handleState)
	mux.HandleFunc("POST /cell/{index}", that.handleCellClick)
	mux.HandleFunc("POST /jump/{step}", that.handleJump)

	return mux
}

// Start - starts HTTP server and stops it when ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
