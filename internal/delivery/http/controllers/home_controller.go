package controllers

import (
	"context"
	"log/slog"
	"net/http"

	h "eventmanager/internal/delivery/http/helpers"
)

// Pinger reports whether the backing store is reachable. *sql.DB implements it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse is the response body for GET /healthz.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

type HomeController struct {
	Logger *slog.Logger
	DB     Pinger
}

func NewHomeController(logger *slog.Logger, db Pinger) *HomeController {
	return &HomeController{Logger: logger, DB: db}
}

// Home godoc
// @Summary Welcome message
// @Tags meta
// @Produce json
// @Success 200 {object} helpers.MessageResponse
// @Router / [get]
func (c *HomeController) Home(w http.ResponseWriter, r *http.Request) {
	h.WriteMessage(w, http.StatusOK, "Welcome to the Event Manager API!")
}

// Health godoc
// @Summary Readiness check
// @Description 200 when the database answers a ping, 503 otherwise.
// @Tags meta
// @Produce json
// @Success 200 {object} controllers.HealthResponse
// @Failure 503 {object} controllers.HealthResponse
// @Router /healthz [get]
func (c *HomeController) Health(w http.ResponseWriter, r *http.Request) {
	if err := c.DB.PingContext(r.Context()); err != nil {
		c.Logger.WarnContext(r.Context(), "health check failed", "err", err)
		h.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
		return
	}
	h.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
