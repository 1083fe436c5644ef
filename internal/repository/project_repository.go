package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"brandscope/api/internal/ids"
	"brandscope/api/internal/models"
)

var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository maps project ids to their owner and context bundle.
// Projects are never deleted.
type ProjectRepository struct {
	mu    sync.RWMutex
	byID  map[string]models.Project
	order []string
}

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{byID: make(map[string]models.Project)}
}

// Create allocates a fresh project id and stamps it into the brand info.
// Nil sub-collections are stored as empty so reads return [] not null.
func (r *ProjectRepository) Create(
	ctx context.Context,
	ownerID string,
	brand models.BrandInfo,
	personas []models.Persona,
	competitors []models.Competitor,
	topics []models.Topic,
) models.Project {
	_ = ctx
	if personas == nil {
		personas = []models.Persona{}
	}
	if competitors == nil {
		competitors = []models.Competitor{}
	}
	if topics == nil {
		topics = []models.Topic{}
	}

	project := models.Project{
		ID:          ids.NewUUID(),
		UserID:      ownerID,
		BrandInfo:   brand,
		Personas:    personas,
		Competitors: competitors,
		Topics:      topics,
		CreatedAt:   time.Now(),
	}
	project.BrandInfo.ID = project.ID

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[project.ID] = project
	r.order = append(r.order, project.ID)
	return project
}

func (r *ProjectRepository) Get(ctx context.Context, id string) (models.Project, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	project, ok := r.byID[id]
	if !ok {
		return models.Project{}, ErrProjectNotFound
	}
	return project, nil
}

// ListByOwner returns the owner's projects in creation order.
func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID string) []models.Project {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	var projects []models.Project
	for _, id := range r.order {
		if project := r.byID[id]; project.UserID == ownerID {
			projects = append(projects, project)
		}
	}
	return projects
}

func (r *ProjectRepository) BrandInfosByOwner(ctx context.Context, ownerID string) []models.BrandInfo {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	brands := make([]models.BrandInfo, 0)
	for _, id := range r.order {
		if project := r.byID[id]; project.UserID == ownerID {
			brands = append(brands, project.BrandInfo)
		}
	}
	return brands
}

func (r *ProjectRepository) ReplacePersonas(ctx context.Context, id string, personas []models.Persona) error {
	_ = ctx
	if personas == nil {
		personas = []models.Persona{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	project, ok := r.byID[id]
	if !ok {
		return ErrProjectNotFound
	}
	project.Personas = personas
	r.byID[id] = project
	return nil
}

func (r *ProjectRepository) ReplaceCompetitors(ctx context.Context, id string, competitors []models.Competitor) error {
	_ = ctx
	if competitors == nil {
		competitors = []models.Competitor{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	project, ok := r.byID[id]
	if !ok {
		return ErrProjectNotFound
	}
	project.Competitors = competitors
	r.byID[id] = project
	return nil
}

func (r *ProjectRepository) ReplaceTopics(ctx context.Context, id string, topics []models.Topic) error {
	_ = ctx
	if topics == nil {
		topics = []models.Topic{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	project, ok := r.byID[id]
	if !ok {
		return ErrProjectNotFound
	}
	project.Topics = topics
	r.byID[id] = project
	return nil
}

// ListAll backs the development-only projects dump.
func (r *ProjectRepository) ListAll(ctx context.Context) []models.Project {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	projects := make([]models.Project, 0, len(r.order))
	for _, id := range r.order {
		projects = append(projects, r.byID[id])
	}
	return projects
}

func (r *ProjectRepository) Count(ctx context.Context) int {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
