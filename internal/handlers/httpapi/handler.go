// Package httpapi exposes the layout service over JSON HTTP, plus a
// websocket stream of generation checkpoints for progressive visualization.
package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/coder/websocket"

	"github.com/KirkDiggler/dungeon-api/internal/dungeon"
	"github.com/KirkDiggler/dungeon-api/internal/errors"
	"github.com/KirkDiggler/dungeon-api/internal/handlers/ws"
	"github.com/KirkDiggler/dungeon-api/internal/orchestrators/layout"
)

// HandlerConfig holds the dependencies for the HTTP handler
type HandlerConfig struct {
	LayoutService layout.Service
}

// Validate ensures all required dependencies are provided
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.LayoutService == nil {
		vb.RequiredField("LayoutService")
	}
	return vb.Build()
}

// Handler serves the layout API
type Handler struct {
	svc layout.Service
	hub *ws.Hub
}

// NewHandler creates a new HTTP handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Handler{
		svc: cfg.LayoutService,
		hub: ws.NewHub(),
	}, nil
}

// Register attaches the API routes to a mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.health)
	mux.HandleFunc("POST /v1/layouts", h.generate)
	mux.HandleFunc("GET /v1/layouts", h.list)
	mux.HandleFunc("GET /v1/layouts/{id}", h.get)
	mux.HandleFunc("DELETE /v1/layouts/{id}", h.delete)
	mux.HandleFunc("GET /v1/layouts/stream", h.stream)
	mux.HandleFunc("GET /v1/watch", h.watch)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// generateRequest is the POST /v1/layouts body.
type generateRequest struct {
	Seed   int64          `json:"seed"`
	Config dungeon.Config `json:"config"`
}

// generateResponse is the POST /v1/layouts reply.
type generateResponse struct {
	LayoutID string          `json:"layoutId"`
	Layout   *dungeon.Layout `json:"layout"`
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.InvalidArgument("invalid request body"))
		return
	}

	out, err := h.svc.GenerateLayout(r.Context(), &layout.GenerateLayoutInput{
		Seed:   req.Seed,
		Config: req.Config,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, generateResponse{
		LayoutID: out.LayoutID,
		Layout:   out.Layout,
	})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.GetLayout(r.Context(), &layout.GetLayoutInput{
		LayoutID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	seed, err := strconv.ParseInt(r.URL.Query().Get("seed"), 10, 64)
	if err != nil {
		writeError(w, errors.InvalidArgument("seed query parameter is required"))
		return
	}

	out, err := h.svc.ListLayouts(r.Context(), &layout.ListLayoutsInput{Seed: seed})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.DeleteLayout(r.Context(), &layout.DeleteLayoutInput{
		LayoutID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// streamEvent is one websocket frame of the generation stream.
type streamEvent struct {
	Type       string              `json:"type"` // "checkpoint" or "layout"
	Checkpoint *dungeon.Checkpoint `json:"checkpoint,omitempty"`
	Layout     *dungeon.Layout     `json:"layout,omitempty"`
}

// stream upgrades to websocket, reads one generateRequest frame, then
// drives a step-wise generation: one checkpoint frame per suspension point,
// a final layout frame, then a normal close. Checkpoints are also fanned
// out to passive /v1/watch viewers. The stepper and the atomic path run the
// same phase code, so a streamed layout matches Generate for the same seed.
func (h *Handler) stream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		slog.Warn("websocket accept failed", "error", err)
		return
	}
	defer conn.CloseNow() //nolint:errcheck

	ctx := r.Context()

	var req generateRequest
	_, data, err := conn.Read(ctx)
	if err != nil || json.Unmarshal(data, &req) != nil {
		_ = conn.Close(websocket.StatusInvalidFramePayloadData, "expected a generate request")
		return
	}

	gen, err := dungeon.New(req.Seed, req.Config)
	if err != nil {
		_ = conn.Close(websocket.StatusInvalidFramePayloadData, errors.GetMessage(err))
		return
	}

	for {
		cp, more := gen.Step()
		if !more {
			break
		}
		if err := h.send(ctx, conn, streamEvent{Type: "checkpoint", Checkpoint: &cp}); err != nil {
			return
		}
	}

	if err := h.send(ctx, conn, streamEvent{Type: "layout", Layout: gen.Layout()}); err != nil {
		return
	}
	_ = conn.Close(websocket.StatusNormalClosure, "")
}

func (h *Handler) send(ctx context.Context, conn *websocket.Conn, ev streamEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	h.hub.Broadcast(data)
	return conn.Write(ctx, websocket.MessageText, data)
}

// watch upgrades to websocket and registers a passive viewer that receives
// every streamed generation's checkpoints until it disconnects.
func (h *Handler) watch(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		slog.Warn("websocket accept failed", "error", err)
		return
	}

	h.hub.Add(conn)
	slog.Info("watch viewer connected", "viewers", h.hub.Count())
	defer h.hub.Remove(conn)

	// Hold the connection until the viewer goes away.
	ctx := conn.CloseRead(r.Context())
	<-ctx.Done()
	_ = conn.Close(websocket.StatusNormalClosure, "")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	writeJSON(w, code.HTTPStatus(), map[string]string{
		"code":    code.String(),
		"message": errors.GetMessage(err),
	})
}
