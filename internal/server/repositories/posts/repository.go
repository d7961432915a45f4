package posts

import (
	"context"

	"github.com/dmitrijs2005/inkpost/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	List(ctx context.Context) ([]*models.Post, error)

	// UpdateOwned and DeleteOwned are conditional on both id and owner in a
	// single statement, so a non-owner's attempt is indistinguishable from a
	// missing post: both return common.ErrorNotFound.
	UpdateOwned(ctx context.Context, id, ownerID, title, description string) error
	DeleteOwned(ctx context.Context, id, ownerID string) error
}
