package portal

import (
	"github.com/foodcourt/backend/internal/domain/shared"
)

// QuickLink is an admin-managed link shown on the team landing page
type QuickLink struct {
	shared.BaseEntity
	Title       string
	Description string
	URL         string
	Active      bool
}

// NewQuickLink creates a new active quick link
func NewQuickLink(title, description, url string) (*QuickLink, error) {
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Quick link title cannot be empty")
	}
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Quick link description cannot be empty")
	}
	if url == "" {
		return nil, shared.NewDomainError("INVALID_URL", "Quick link URL cannot be empty")
	}

	return &QuickLink{
		BaseEntity:  shared.NewBaseEntity(),
		Title:       title,
		Description: description,
		URL:         url,
		Active:      true,
	}, nil
}

// SetActive toggles visibility of the link
func (q *QuickLink) SetActive(active bool) {
	q.Active = active
	q.Touch()
}
