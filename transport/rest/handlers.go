package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/view"
)

func (that *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

func (that *Server) handlePage(w http.ResponseWriter, _ *http.Request) {
	log := that.logger.With("method", "handlePage")

	that.mu.Lock()
	page := view.NewPage(that.game)
	that.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := that.page.Execute(w, page); err != nil {
		log.Error("failed to render page", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (that *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	log := that.logger.With("method", "handleState")

	that.mu.Lock()
	page := view.NewPage(that.game)
	that.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(page); err != nil {
		log.Error("failed to encode state", "error", err)
	}
}

func (that *Server) handleCellClick(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleCellClick")

	cell, err := parseIndex(r.PathValue("index"), apperror.ErrInvalidCell)
	if err != nil {
		log.Warn("bad cell click", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	that.mu.Lock()
	that.game.HandleCellClick(cell)
	that.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (that *Server) handleJump(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleJump")

	step, err := parseIndex(r.PathValue("step"), apperror.ErrInvalidStep)
	if err != nil {
		log.Warn("bad jump", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	that.mu.Lock()
	that.game.JumpTo(step)
	that.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func parseIndex(raw string, kind error) (int, error) {
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", kind, raw)
	}

	return index, nil
}
