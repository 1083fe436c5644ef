package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandscope/api/internal/models"
)

func TestProjectRepository_CreateStampsBrandID(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository()

	project := repo.Create(ctx, "owner-1", models.BrandInfo{Name: "Acme"}, nil, nil, nil)
	require.NotEmpty(t, project.ID)
	assert.Equal(t, project.ID, project.BrandInfo.ID)
	assert.Equal(t, "owner-1", project.UserID)

	// Nil sub-collections come back empty, not nil.
	assert.NotNil(t, project.Personas)
	assert.NotNil(t, project.Competitors)
	assert.NotNil(t, project.Topics)
	assert.Empty(t, project.Personas)
}

func TestProjectRepository_DistinctIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository()

	brandOnly := repo.Create(ctx, "owner-1", models.BrandInfo{Name: "Acme"}, nil, nil, nil)
	full := repo.Create(ctx, "owner-1", models.BrandInfo{Name: "Acme Two"},
		[]models.Persona{{ID: 1, Name: "Buyer"}},
		[]models.Competitor{{Name: "Rival"}},
		[]models.Topic{{ID: 1, Name: "Pricing"}},
	)
	assert.NotEqual(t, brandOnly.ID, full.ID)

	for _, id := range []string{brandOnly.ID, full.ID} {
		_, err := repo.Get(ctx, id)
		assert.NoError(t, err)
	}
}

func TestProjectRepository_GetUnknown(t *testing.T) {
	repo := NewProjectRepository()

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectRepository_ReplaceIsWholesale(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository()

	project := repo.Create(ctx, "owner-1", models.BrandInfo{Name: "Acme"},
		[]models.Persona{{ID: 1, Name: "Buyer"}, {ID: 2, Name: "Analyst"}}, nil, nil)

	require.NoError(t, repo.ReplacePersonas(ctx, project.ID, []models.Persona{{ID: 3, Name: "CTO"}}))
	got, err := repo.Get(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, got.Personas, 1)
	assert.Equal(t, "CTO", got.Personas[0].Name)

	// Replacing with an empty list clears, it does not merge.
	require.NoError(t, repo.ReplacePersonas(ctx, project.ID, []models.Persona{}))
	got, err = repo.Get(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Personas)
	assert.NotNil(t, got.Personas)
}

func TestProjectRepository_ReplaceUnknownProject(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository()

	assert.ErrorIs(t, repo.ReplacePersonas(ctx, "missing", nil), ErrProjectNotFound)
	assert.ErrorIs(t, repo.ReplaceCompetitors(ctx, "missing", nil), ErrProjectNotFound)
	assert.ErrorIs(t, repo.ReplaceTopics(ctx, "missing", nil), ErrProjectNotFound)
}

func TestProjectRepository_OwnerScopedListing(t *testing.T) {
	ctx := context.Background()
	repo := NewProjectRepository()

	mine := repo.Create(ctx, "owner-1", models.BrandInfo{Name: "Mine"}, nil, nil, nil)
	repo.Create(ctx, "owner-2", models.BrandInfo{Name: "Theirs"}, nil, nil, nil)

	projects := repo.ListByOwner(ctx, "owner-1")
	require.Len(t, projects, 1)
	assert.Equal(t, mine.ID, projects[0].ID)

	brands := repo.BrandInfosByOwner(ctx, "owner-1")
	require.Len(t, brands, 1)
	assert.Equal(t, mine.ID, brands[0].ID)

	assert.Empty(t, repo.ListByOwner(ctx, "owner-3"))
	assert.Len(t, repo.ListAll(ctx), 2)
}
