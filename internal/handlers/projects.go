package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brandscope/api/internal/middleware"
	"brandscope/api/internal/models"
)

func (h HandlerSet) MyProjects(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	projects := h.projects.ListByOwner(c.Request.Context(), user.ID)
	if projects == nil {
		projects = []models.Project{}
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// DumpProjects returns every stored project regardless of owner. Wired only
// outside production.
func (h HandlerSet) DumpProjects(c *gin.Context) {
	all := h.projects.ListAll(c.Request.Context())
	byID := make(map[string]models.Project, len(all))
	for _, project := range all {
		byID[project.ID] = project
	}
	c.JSON(http.StatusOK, byID)
}
