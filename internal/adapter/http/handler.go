package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"redscope/internal/app/extract"
	"redscope/internal/app/ports"
	"redscope/internal/app/query"
	"redscope/internal/app/replay"
	"redscope/internal/app/textview"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Handler wires the agent-facing HTTP surface to the use cases.
type Handler struct {
	ExtractUC extract.UseCase
	QueryUC   query.UseCase
	ReplayUC  replay.UseCase
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	agent := s.Group("/api/agent")
	agent.POST("/snapshot", h.snapshot)
	agent.POST("/snapshot/text", h.snapshotText)
	agent.POST("/tiles/nearest", h.nearestTiles)
	agent.POST("/tiles/categorize", h.categorizeTiles)
	agent.POST("/neighborhood", h.neighborhood)
	agent.GET("/replay", h.replay)
}

type snapshotRequest struct {
	StepCounter int `json:"step_counter"`
}

type nearestRequest struct {
	StepCounter int    `json:"step_counter"`
	TileType    string `json:"tile_type"`
	MaxCount    int    `json:"max_count"`
}

type neighborhoodRequest struct {
	StepCounter int `json:"step_counter"`
	Radius      int `json:"radius"`
}

func (h Handler) snapshot(c context.Context, ctx *app.RequestContext) {
	var body snapshotRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.ExtractUC.Execute(c, extract.Request{StepCounter: body.StepCounter})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp.Snapshot)
}

func (h Handler) snapshotText(c context.Context, ctx *app.RequestContext) {
	var body snapshotRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.ExtractUC.Execute(c, extract.Request{StepCounter: body.StepCounter})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(textview.Render(resp.Snapshot)))
}

func (h Handler) nearestTiles(c context.Context, ctx *app.RequestContext) {
	var body nearestRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.QueryUC.Nearest(c, query.NearestRequest{
		StepCounter: body.StepCounter,
		TileType:    body.TileType,
		MaxCount:    body.MaxCount,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) categorizeTiles(c context.Context, ctx *app.RequestContext) {
	var body snapshotRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.QueryUC.Categorize(c, query.CategorizeRequest{StepCounter: body.StepCounter})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) neighborhood(c context.Context, ctx *app.RequestContext) {
	var body neighborhoodRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.QueryUC.Neighborhood(c, query.NeighborhoodRequest{
		StepCounter: body.StepCounter,
		Radius:      body.Radius,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	req := replay.Request{Limit: 10}

	if raw := string(ctx.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeErrorBody(ctx, consts.StatusBadRequest, "invalid_limit", "limit must be an integer")
			return
		}
		req.Limit = n
	}
	if raw := string(ctx.Query("step")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeErrorBody(ctx, consts.StatusBadRequest, "invalid_step", "step must be an integer")
			return
		}
		req.Step = &n
	}

	resp, err := h.ReplayUC.Execute(c, req)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, extract.ErrInvalidRequest),
		errors.Is(err, query.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	case errors.Is(err, ports.ErrMemoryRead):
		writeErrorBody(ctx, consts.StatusServiceUnavailable, "memory_unavailable", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
