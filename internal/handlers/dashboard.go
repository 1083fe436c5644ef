package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"brandscope/api/internal/fixtures"
)

// Dashboard endpoints return fixture payloads; the access gate has already
// verified project ownership by the time these run.

func (h HandlerSet) DashboardOverview(c *gin.Context) {
	c.JSON(http.StatusOK, fixtures.Overview())
}

func (h HandlerSet) CompetitorPresence(c *gin.Context) {
	// start-date / end-date query params are accepted and ignored.
	c.JSON(http.StatusOK, fixtures.CompetitorPresences())
}

func (h HandlerSet) Position(c *gin.Context) {
	c.JSON(http.StatusOK, fixtures.Positions())
}

func (h HandlerSet) Presence(c *gin.Context) {
	c.JSON(http.StatusOK, fixtures.Presences())
}

func (h HandlerSet) Citations(c *gin.Context) {
	c.JSON(http.StatusOK, fixtures.Citations())
}

func (h HandlerSet) PromptObservations(c *gin.Context) {
	offset := 0
	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
			return
		}
		offset = parsed
	}

	var limit *int
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = &parsed
	}

	c.JSON(http.StatusOK, fixtures.Observations(offset, limit))
}

func (h HandlerSet) PromptCompetitorPerf(c *gin.Context) {
	c.JSON(http.StatusOK, fixtures.PromptCompetitorPerf())
}
