package service

import (
	"context"
	"errors"

	"peakform/training-studio/internal/domain"
	"peakform/training-studio/internal/repository"
)

// ContentService serves the content-managed pieces of the marketing site.
type ContentService interface {
	// Navbar returns the navbar links in display order.
	Navbar(ctx context.Context) (*domain.SiteContent, error)
	// SeedDefaults writes the default content document if none exists.
	SeedDefaults(ctx context.Context) error
}

// DefaultSiteContent is what a fresh database serves until an operator
// edits the content document.
func DefaultSiteContent() *domain.SiteContent {
	return &domain.SiteContent{
		SiteName: "PeakForm Personal Training",
		Navbar: []domain.NavLink{
			{Label: "Home", Href: "/", Order: 0},
			{Label: "About", Href: "/about", Order: 1},
			{Label: "Training Studio", Href: "/training-studio", Order: 2},
			{Label: "Contact", Href: "/contact", Order: 3},
		},
	}
}

// contentService implements the ContentService interface.
type contentService struct {
	contentRepo repository.ContentRepository
}

// NewContentService creates a new instance of contentService.
func NewContentService(contentRepo repository.ContentRepository) ContentService {
	return &contentService{contentRepo: contentRepo}
}

// Navbar returns the stored site content, falling back to the defaults
// when the document is missing (e.g. seeding has not run yet).
func (s *contentService) Navbar(ctx context.Context) (*domain.SiteContent, error) {
	content, err := s.contentRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return DefaultSiteContent(), nil
		}
		return nil, err
	}
	return content, nil
}

// SeedDefaults writes the default content document if none exists.
func (s *contentService) SeedDefaults(ctx context.Context) error {
	return s.contentRepo.Seed(ctx, DefaultSiteContent())
}
