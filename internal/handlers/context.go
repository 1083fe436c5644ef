package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brandscope/api/internal/middleware"
	"brandscope/api/internal/models"
)

type contextRequest struct {
	BrandInfo   models.BrandInfo    `json:"brandInfo" binding:"required"`
	Personas    []models.Persona    `json:"personas"`
	Competitors []models.Competitor `json:"competitors"`
	Topics      []models.Topic      `json:"topics"`
}

type createProjectResponse struct {
	Status    string           `json:"status"`
	ProjectID string           `json:"projectId"`
	BrandInfo models.BrandInfo `json:"brandInfo"`
}

// CreateContext creates a project from a full context bundle.
func (h HandlerSet) CreateContext(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req contextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project := h.projects.Create(c.Request.Context(), user.ID,
		req.BrandInfo, req.Personas, req.Competitors, req.Topics)

	c.JSON(http.StatusOK, createProjectResponse{
		Status:    "success",
		ProjectID: project.ID,
		BrandInfo: project.BrandInfo,
	})
}

// CreateBrand creates a project holding only brand info; the sub-collections
// start empty.
func (h HandlerSet) CreateBrand(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var brand models.BrandInfo
	if err := c.ShouldBindJSON(&brand); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project := h.projects.Create(c.Request.Context(), user.ID, brand, nil, nil, nil)

	c.JSON(http.StatusOK, createProjectResponse{
		Status:    "success",
		ProjectID: project.ID,
		BrandInfo: project.BrandInfo,
	})
}

func (h HandlerSet) GetBrand(c *gin.Context) {
	project, ok := middleware.CurrentProject(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied or unknown project"})
		return
	}
	c.JSON(http.StatusOK, project.BrandInfo)
}

func (h HandlerSet) ListBrands(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, h.projects.BrandInfosByOwner(c.Request.Context(), user.ID))
}

func (h HandlerSet) GetPersonas(c *gin.Context) {
	project, ok := middleware.CurrentProject(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied or unknown project"})
		return
	}
	c.JSON(http.StatusOK, project.Personas)
}

func (h HandlerSet) SavePersonas(c *gin.Context) {
	project, ok := middleware.CurrentProject(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied or unknown project"})
		return
	}

	var personas []models.Persona
	if err := c.ShouldBindJSON(&personas); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.projects.ReplacePersonas(c.Request.Context(), project.ID, personas); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied or unknown project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h HandlerSet) GetCompetitors(c *gin.Context) {
	project, ok := middleware.CurrentProject(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied or unknown project"})
		return
	}
	c.JSON(http.StatusOK, project.Competitors)
}

func (h HandlerSet) SaveCompetitors(c *gin.Context) {
	project, ok := middleware.CurrentProject(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied or unknown project"})
		return
	}

	var competitors []models.Competitor
	if err := c.ShouldBindJSON(&competitors); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.projects.ReplaceCompetitors(c.Request.Context(), project.ID, competitors); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied or unknown project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h HandlerSet) GetTopics(c *gin.Context) {
	project, ok := middleware.CurrentProject(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied or unknown project"})
		return
	}
	c.JSON(http.StatusOK, project.Topics)
}

func (h HandlerSet) SaveTopics(c *gin.Context) {
	project, ok := middleware.CurrentProject(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied or unknown project"})
		return
	}

	var topics []models.Topic
	if err := c.ShouldBindJSON(&topics); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.projects.ReplaceTopics(c.Request.Context(), project.ID, topics); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied or unknown project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
