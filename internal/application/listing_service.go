package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/rizkypratama/havenly/internal/authz"
	"github.com/rizkypratama/havenly/internal/domain/entity"
	repo "github.com/rizkypratama/havenly/internal/domain/repository"
)

var (
	ErrListingNotFound  = errors.New("listing not found")
	ErrNotOwner         = errors.New("you can only manage your own listings")
	ErrInvalidDiscount  = errors.New("discount price must be positive and less than regular price")
	ErrInvalidImageURLs = errors.New("a listing needs between 1 and 6 image urls")
)

// ListingService covers ownership-scoped listing CRUD plus search.
// Create/Update keep the Elasticsearch index in sync best-effort; the
// Postgres row is the source of truth.
type ListingService struct {
	Listings repo.ListingRepository
	ES       *elasticsearch.Client
	ESIndex  string
	Logger   *logrus.Logger
}

func NewListingService(listings repo.ListingRepository, es *elasticsearch.Client, esIndex string, logger *logrus.Logger) *ListingService {
	return &ListingService{Listings: listings, ES: es, ESIndex: esIndex, Logger: logger}
}

type ListingInput struct {
	Name          string
	Description   string
	Address       string
	Type          string
	Bedrooms      int
	Bathrooms     int
	RegularPrice  float64
	DiscountPrice float64
	Offer         bool
	Parking       bool
	Furnished     bool
	ImageURLs     []string
}

// validate enforces the invariants binding tags cannot express.
func (in *ListingInput) validate() error {
	if len(in.ImageURLs) < 1 || len(in.ImageURLs) > 6 {
		return ErrInvalidImageURLs
	}
	if in.Offer {
		if in.DiscountPrice <= 0 || in.DiscountPrice >= in.RegularPrice {
			return ErrInvalidDiscount
		}
	}
	return nil
}

func (in *ListingInput) apply(l *entity.Listing) {
	l.Name = in.Name
	l.Description = in.Description
	l.Address = in.Address
	l.Type = in.Type
	l.Bedrooms = in.Bedrooms
	l.Bathrooms = in.Bathrooms
	l.RegularPrice = in.RegularPrice
	l.Offer = in.Offer
	l.Parking = in.Parking
	l.Furnished = in.Furnished
	l.ImageURLs = in.ImageURLs
	if in.Offer {
		l.DiscountPrice = in.DiscountPrice
	} else {
		l.DiscountPrice = 0
	}
}

// Create persists a new listing owned by the caller.
func (s *ListingService) Create(ctx context.Context, ownerID string, in ListingInput) (*entity.Listing, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	l := &entity.Listing{UserRef: ownerID}
	in.apply(l)
	if err := s.Listings.Create(l); err != nil {
		return nil, err
	}
	s.indexListing(ctx, l)
	return l, nil
}

func (s *ListingService) Get(ctx context.Context, id string) (*entity.Listing, error) {
	l, err := s.Listings.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	return l, nil
}

// Update mutates a listing after checking the caller owns it. UserRef is
// never touched.
func (s *ListingService) Update(ctx context.Context, callerID, id string, in ListingInput) (*entity.Listing, error) {
	l, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.OwnsResource(callerID, l.UserRef) {
		return nil, ErrNotOwner
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	in.apply(l)
	if err := s.Listings.Update(l); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	s.indexListing(ctx, l)
	return l, nil
}

// Delete removes a listing after checking the caller owns it.
func (s *ListingService) Delete(ctx context.Context, callerID, id string) error {
	l, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !authz.OwnsResource(callerID, l.UserRef) {
		return ErrNotOwner
	}
	if err := s.Listings.Delete(id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrListingNotFound
		}
		return err
	}
	s.removeFromIndex(ctx, id)
	return nil
}

func (s *ListingService) indexListing(ctx context.Context, l *entity.Listing) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":            l.ID,
		"name":          l.Name,
		"description":   l.Description,
		"address":       l.Address,
		"type":          l.Type,
		"offer":         l.Offer,
		"regular_price": l.RegularPrice,
		"updated_at":    l.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: l.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("listing_id", l.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("listing_id", l.ID).Warn("es index response error")
	}
}

func (s *ListingService) removeFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("listing_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search performs a multi_match query over name, description, and address.
func (s *ListingService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "description", "address"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
