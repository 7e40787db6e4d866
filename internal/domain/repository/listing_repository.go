package repository

import "github.com/rizkypratama/havenly/internal/domain/entity"

// ListingRepository defines the interface for listing-related database operations.
type ListingRepository interface {
	Create(l *entity.Listing) error
	GetByID(id string) (*entity.Listing, error)
	GetByOwner(ownerID string) ([]*entity.Listing, error)
	Update(l *entity.Listing) error
	Delete(id string) error
}
