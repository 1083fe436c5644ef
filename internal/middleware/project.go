package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brandscope/api/internal/metrics"
	"brandscope/api/internal/models"
	"brandscope/api/internal/repository"
)

const ContextProjectKey = "current_project"

// RequireProject loads the :projectId route parameter and verifies the
// authenticated user owns it. A missing project and a foreign project return
// the same 403 so callers cannot probe for existence.
func RequireProject(projects *repository.ProjectRepository, stats *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No valid Authorization header/token"})
			return
		}

		projectID := c.Param("projectId")
		project, err := projects.Get(c.Request.Context(), projectID)
		if err != nil || project.UserID != user.ID {
			stats.RecordAccessDenied("forbidden_project")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied or unknown project"})
			return
		}

		c.Set(ContextProjectKey, project)
		c.Next()
	}
}

// CurrentUser returns the user attached by Auth.
func CurrentUser(c *gin.Context) (models.User, bool) {
	val, exists := c.Get(ContextUserKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := val.(models.User)
	return user, ok
}

// CurrentProject returns the project attached by RequireProject.
func CurrentProject(c *gin.Context) (models.Project, bool) {
	val, exists := c.Get(ContextProjectKey)
	if !exists {
		return models.Project{}, false
	}
	project, ok := val.(models.Project)
	return project, ok
}
