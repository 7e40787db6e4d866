package entity

import "time"

// Listing transaction types.
const (
	ListingTypeSale = "sale"
	ListingTypeRent = "rent"
)

// Listing is a property listing. UserRef is the owning user's ID and is
// immutable after creation; it alone decides who may mutate or delete the
// listing. DiscountPrice is meaningful only while Offer is true.
type Listing struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Address       string    `json:"address"`
	Type          string    `json:"type"`
	Bedrooms      int       `json:"bedrooms"`
	Bathrooms     int       `json:"bathrooms"`
	RegularPrice  float64   `json:"regularPrice"`
	DiscountPrice float64   `json:"discountPrice"`
	Offer         bool      `json:"offer"`
	Parking       bool      `json:"parking"`
	Furnished     bool      `json:"furnished"`
	ImageURLs     []string  `json:"imageUrls"`
	UserRef       string    `json:"userRef"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
