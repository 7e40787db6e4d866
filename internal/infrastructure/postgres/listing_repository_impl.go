package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rizkypratama/havenly/internal/domain/entity"
	"github.com/rizkypratama/havenly/internal/domain/repository"
)

type ListingRepository struct {
	pool *pgxpool.Pool
}

func NewListingRepository(pool *pgxpool.Pool) *ListingRepository {
	return &ListingRepository{pool: pool}
}

const listingColumns = `id, name, description, address, type, bedrooms, bathrooms,
	regular_price, discount_price, offer, parking, furnished, image_urls, user_ref,
	created_at, updated_at`

func scanListing(row pgx.Row) (*entity.Listing, error) {
	l := &entity.Listing{}
	if err := row.Scan(&l.ID, &l.Name, &l.Description, &l.Address, &l.Type,
		&l.Bedrooms, &l.Bathrooms, &l.RegularPrice, &l.DiscountPrice,
		&l.Offer, &l.Parking, &l.Furnished, &l.ImageURLs, &l.UserRef,
		&l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, translateErr(err)
	}
	return l, nil
}

func (r *ListingRepository) Create(l *entity.Listing) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO listings (name, description, address, type, bedrooms, bathrooms,
			regular_price, discount_price, offer, parking, furnished, image_urls, user_ref)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at
	`, l.Name, l.Description, l.Address, l.Type, l.Bedrooms, l.Bathrooms,
		l.RegularPrice, l.DiscountPrice, l.Offer, l.Parking, l.Furnished, l.ImageURLs, l.UserRef)

	if err := row.Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *ListingRepository) GetByID(id string) (*entity.Listing, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `SELECT `+listingColumns+` FROM listings WHERE id = $1`, id)
	return scanListing(row)
}

func (r *ListingRepository) GetByOwner(ownerID string) ([]*entity.Listing, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT `+listingColumns+`
		FROM listings
		WHERE user_ref = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	listings := make([]*entity.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// Update persists the mutable listing fields. user_ref is deliberately left
// out of the SET clause; ownership never changes after creation.
func (r *ListingRepository) Update(l *entity.Listing) error {
	ctx := context.Background()
	l.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE listings
		SET name = $1, description = $2, address = $3, type = $4, bedrooms = $5,
			bathrooms = $6, regular_price = $7, discount_price = $8, offer = $9,
			parking = $10, furnished = $11, image_urls = $12, updated_at = $13
		WHERE id = $14
	`, l.Name, l.Description, l.Address, l.Type, l.Bedrooms, l.Bathrooms,
		l.RegularPrice, l.DiscountPrice, l.Offer, l.Parking, l.Furnished,
		l.ImageURLs, l.UpdatedAt, l.ID)
	if err != nil {
		return translateErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ListingRepository) Delete(id string) error {
	ctx := context.Background()

	res, err := r.pool.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return translateErr(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ListingRepository = (*ListingRepository)(nil)
