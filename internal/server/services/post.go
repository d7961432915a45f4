package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/inkpost/internal/server/models"
	"github.com/dmitrijs2005/inkpost/internal/server/repositories/posts"
)

// PostService implements blog post operations. Ownership is enforced by the
// repository's combined id+owner conditions, not by a separate read.
type PostService struct {
	repo posts.Repository
}

func NewPostService(repo posts.Repository) *PostService {
	return &PostService{repo: repo}
}

// Create stores a new post owned by userID.
func (s *PostService) Create(ctx context.Context, userID, title, description string) (*models.Post, error) {
	post := &models.Post{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		CreatedBy:   userID,
	}

	p, err := s.repo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}
	return p, nil
}

// List returns every stored post; the feed is public and unfiltered.
func (s *PostService) List(ctx context.Context) ([]*models.Post, error) {
	return s.repo.List(ctx)
}

// Update changes title/description of the post only if userID owns it.
// Missing post and foreign owner both surface as common.ErrorNotFound.
func (s *PostService) Update(ctx context.Context, id, userID, title, description string) error {
	return s.repo.UpdateOwned(ctx, id, userID, title, description)
}

// Delete removes the post under the same combined condition as Update.
func (s *PostService) Delete(ctx context.Context, id, userID string) error {
	return s.repo.DeleteOwned(ctx, id, userID)
}
