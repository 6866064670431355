package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gabrielcarioca/nanogram-solver/internal/domain"
	"github.com/gabrielcarioca/nanogram-solver/internal/solver"
	"github.com/gabrielcarioca/nanogram-solver/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ---- Solve ----

type solveReq struct {
	Puzzle domain.Puzzle `json:"puzzle"`
}

type solveResp struct {
	Grid       *domain.Grid `json:"grid,omitempty"`
	Rendered   string       `json:"rendered,omitempty"`
	Unsolvable bool         `json:"unsolvable,omitempty"`
	DurationMs int64        `json:"durationMs,omitempty"`
	Nodes      int          `json:"nodes,omitempty"`
	Rounds     int          `json:"rounds,omitempty"`
	Guesses    int          `json:"guesses,omitempty"`
	Error      string       `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, solveResp{Error: "method not allowed"})
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	g, st, err := h.UC.Solve(r.Context(), &req.Puzzle)
	resp := solveResp{
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
		Rounds:     st.Rounds,
		Guesses:    st.Guesses,
	}
	switch {
	case errors.Is(err, solver.ErrUnsolvable):
		resp.Unsolvable = true
		writeJSON(w, http.StatusOK, resp)
	case errors.Is(err, domain.ErrInvalidPuzzle):
		resp.Error = err.Error()
		writeJSON(w, http.StatusBadRequest, resp)
	case err != nil:
		resp.Error = err.Error()
		writeJSON(w, http.StatusInternalServerError, resp)
	default:
		resp.Grid = g
		if text, rerr := h.UC.Render(g); rerr == nil {
			resp.Rendered = text
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// ---- Validate ----

type validateReq struct {
	Puzzle domain.Puzzle `json:"puzzle"`
	Grid   domain.Grid   `json:"grid"`
}

type validateResp struct {
	OK        bool             `json:"ok"`
	Conflicts []domain.LineRef `json:"conflicts,omitempty"`
	Error     string           `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, validateResp{Error: "method not allowed"})
		return
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if err := req.Puzzle.Check(); err != nil {
		writeJSON(w, http.StatusBadRequest, validateResp{Error: err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), &req.Puzzle, &req.Grid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, validateResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Hint ----

type hintReq struct {
	Puzzle domain.Puzzle `json:"puzzle"`
	Grid   domain.Grid   `json:"grid"`
}

type hintResp struct {
	Hint  *domain.Hint `json:"hint,omitempty"`
	Found bool         `json:"found"`
	Error string       `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, hintResp{Error: "method not allowed"})
		return
	}
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	hint, found, err := h.UC.Hint(r.Context(), &req.Puzzle, &req.Grid)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidPuzzle) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, hintResp{Error: err.Error()})
		return
	}
	resp := hintResp{Found: found}
	if found {
		resp.Hint = &hint
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---- Persistence ----

type saveResp struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, saveResp{Error: "method not allowed"})
		return
	}
	var req domain.SavedPuzzle
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if req.CreatedAt == 0 {
		req.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(r.Context(), &req); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrInvalidPuzzle) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, saveResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, saveResp{OK: true})
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, saveResp{Error: "missing id"})
		return
	}
	p, err := h.UC.Load(r.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, os.ErrNotExist) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, saveResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	metas, err := h.UC.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, saveResp{Error: err.Error()})
		return
	}
	if metas == nil {
		metas = []domain.PuzzleMeta{}
	}
	writeJSON(w, http.StatusOK, metas)
}
