package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type healthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Users       int    `json:"users"`
	Sessions    int    `json:"sessions"`
	Projects    int    `json:"projects"`
}

func (h HandlerSet) Health(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, healthResponse{
		Status:      "ok",
		Environment: h.cfg.Environment,
		Users:       h.users.Count(ctx),
		Sessions:    h.sessions.Count(ctx),
		Projects:    h.projects.Count(ctx),
	})
}
