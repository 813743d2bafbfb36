package portal

import (
	"context"
	"time"

	"github.com/foodcourt/backend/internal/domain/portal"
	"github.com/google/uuid"
)

// CreateQuickLinkRequest represents the request to create a quick link
type CreateQuickLinkRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	URL         string `json:"url" binding:"required,url"`
}

// UpdateQuickLinkRequest represents the request to update a quick link
type UpdateQuickLinkRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	URL         string `json:"url" binding:"required,url"`
	Active      *bool  `json:"active"`
}

// QuickLinkResponse represents a quick link in API responses
type QuickLinkResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToQuickLinkResponse converts a domain quick link to its API representation
func ToQuickLinkResponse(link *portal.QuickLink) QuickLinkResponse {
	return QuickLinkResponse{
		ID:          link.ID,
		Title:       link.Title,
		Description: link.Description,
		URL:         link.URL,
		Active:      link.Active,
		CreatedAt:   link.CreatedAt,
		UpdatedAt:   link.UpdatedAt,
	}
}

// QuickLinkService manages the portal links shown to teams
type QuickLinkService struct {
	linkRepo portal.Repository
}

// NewQuickLinkService creates a new QuickLinkService
func NewQuickLinkService(linkRepo portal.Repository) *QuickLinkService {
	return &QuickLinkService{linkRepo: linkRepo}
}

// CreateQuickLink creates a new quick link
func (s *QuickLinkService) CreateQuickLink(ctx context.Context, req CreateQuickLinkRequest) (*QuickLinkResponse, error) {
	link, err := portal.NewQuickLink(req.Title, req.Description, req.URL)
	if err != nil {
		return nil, err
	}
	if err := s.linkRepo.Save(ctx, link); err != nil {
		return nil, err
	}

	resp := ToQuickLinkResponse(link)
	return &resp, nil
}

// UpdateQuickLink updates a quick link
func (s *QuickLinkService) UpdateQuickLink(ctx context.Context, id uuid.UUID, req UpdateQuickLinkRequest) (*QuickLinkResponse, error) {
	link, err := s.linkRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	link.Title = req.Title
	link.Description = req.Description
	link.URL = req.URL
	if req.Active != nil {
		link.SetActive(*req.Active)
	}
	link.Touch()

	if err := s.linkRepo.Update(ctx, link); err != nil {
		return nil, err
	}

	resp := ToQuickLinkResponse(link)
	return &resp, nil
}

// SetQuickLinkActive toggles whether a link appears on the team portal
func (s *QuickLinkService) SetQuickLinkActive(ctx context.Context, id uuid.UUID, active bool) (*QuickLinkResponse, error) {
	link, err := s.linkRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	link.SetActive(active)
	link.Touch()

	if err := s.linkRepo.Update(ctx, link); err != nil {
		return nil, err
	}

	resp := ToQuickLinkResponse(link)
	return &resp, nil
}

// DeleteQuickLink removes a quick link
func (s *QuickLinkService) DeleteQuickLink(ctx context.Context, id uuid.UUID) error {
	if _, err := s.linkRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.linkRepo.Delete(ctx, id)
}

// ListQuickLinks returns all quick links for the admin view
func (s *QuickLinkService) ListQuickLinks(ctx context.Context) ([]QuickLinkResponse, error) {
	links, err := s.linkRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(links), nil
}

// ListActiveQuickLinks returns the links shown on the team portal
func (s *QuickLinkService) ListActiveQuickLinks(ctx context.Context) ([]QuickLinkResponse, error) {
	links, err := s.linkRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(links), nil
}

func toResponses(links []portal.QuickLink) []QuickLinkResponse {
	responses := make([]QuickLinkResponse, 0, len(links))
	for i := range links {
		responses = append(responses, ToQuickLinkResponse(&links[i]))
	}
	return responses
}
