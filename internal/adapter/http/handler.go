package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"farmstead/internal/app/action"
	"farmstead/internal/app/leaderboard"
	"farmstead/internal/app/player"
	"farmstead/internal/app/ports"
	"farmstead/internal/app/replay"
	"farmstead/internal/domain/farm"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	CreatePlayerUC player.CreateUseCase
	GetPlayerUC    player.GetUseCase
	ActionUC       action.UseCase
	ReplayUC       replay.UseCase
	LeaderboardUC  leaderboard.UseCase
	KPI            kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api")
	api.POST("/player", h.createPlayer)
	api.GET("/player/:id", h.getPlayer)
	api.GET("/player/:id/events", h.playerEvents)
	api.POST("/farm/action", h.farmAction)
	api.GET("/leaderboard", h.leaderboard)

	s.GET("/ops/kpi", h.kpi)
}

type createPlayerRequest struct {
	Name string `json:"name"`
}

type actionRequest struct {
	PlayerID       string       `json:"player_id"`
	IdempotencyKey string       `json:"idempotency_key"`
	Intent         actionIntent `json:"intent"`
}

type actionIntent struct {
	Type   string `json:"type"`
	PlotID string `json:"plot_id,omitempty"`
	CropID string `json:"crop_id,omitempty"`
	PenID  string `json:"pen_id,omitempty"`
}

func (h Handler) createPlayer(c context.Context, ctx *app.RequestContext) {
	var body createPlayerRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.CreatePlayerUC.Execute(c, player.CreateRequest{Name: body.Name})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) getPlayer(c context.Context, ctx *app.RequestContext) {
	resp, err := h.GetPlayerUC.Execute(c, player.GetRequest{
		PlayerID: string(ctx.Param("id")),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) playerEvents(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	resp, err := h.ReplayUC.Execute(c, replay.Request{
		PlayerID: string(ctx.Param("id")),
		Limit:    limit,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) farmAction(c context.Context, ctx *app.RequestContext) {
	var body actionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.ActionUC.Execute(c, action.Request{
		PlayerID:       body.PlayerID,
		IdempotencyKey: body.IdempotencyKey,
		Intent: action.Intent{
			Type:   action.IntentType(body.Intent.Type),
			PlotID: body.Intent.PlotID,
			CropID: body.Intent.CropID,
			PenID:  body.Intent.PenID,
		},
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) leaderboard(c context.Context, ctx *app.RequestContext) {
	resp, err := h.LeaderboardUC.Execute(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
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
	case errors.Is(err, farm.ErrInvalidName):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_name", err.Error())
	case errors.Is(err, farm.ErrPlotOccupied):
		writeErrorBody(ctx, consts.StatusConflict, "plot_occupied", err.Error())
	case errors.Is(err, farm.ErrPlotEmpty):
		writeErrorBody(ctx, consts.StatusConflict, "plot_empty", err.Error())
	case errors.Is(err, farm.ErrNotReady):
		writeErrorBody(ctx, consts.StatusConflict, "not_ready", err.Error())
	case errors.Is(err, farm.ErrCropNotUnlocked):
		writeErrorBody(ctx, consts.StatusConflict, "crop_not_unlocked", err.Error())
	case errors.Is(err, farm.ErrInsufficientGold):
		writeErrorBody(ctx, consts.StatusConflict, "insufficient_gold", err.Error())
	case errors.Is(err, farm.ErrPlotNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "plot_not_found", err.Error())
	case errors.Is(err, farm.ErrPenNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "pen_not_found", err.Error())
	case errors.Is(err, farm.ErrUnknownCrop):
		writeErrorBody(ctx, consts.StatusNotFound, "unknown_crop", err.Error())
	case errors.Is(err, farm.ErrUnknownAnimal):
		writeErrorBody(ctx, consts.StatusNotFound, "unknown_animal", err.Error())
	case errors.Is(err, action.ErrInvalidActionParams):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_action_params", err.Error())
	case errors.Is(err, action.ErrInvalidRequest),
		errors.Is(err, player.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
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
