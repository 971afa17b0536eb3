package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type healthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}

// handleHealth reports readiness. Models load before the server starts,
// so a serving process is a ready process.
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "ok", Backend: s.backend})
}
