// Package apiclient is a typed Go client for the Havenly REST API. A cookie
// jar carries the session cookie between calls, so signing in once is enough
// for the protected operations.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// User is the wire shape of an account (password hash never included).
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Listing is the wire shape of a property listing.
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

// ListingInput is the payload for creating or updating a listing.
type ListingInput struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Address       string   `json:"address"`
	Type          string   `json:"type"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     int      `json:"bathrooms"`
	RegularPrice  float64  `json:"regularPrice"`
	DiscountPrice float64  `json:"discountPrice,omitempty"`
	Offer         bool     `json:"offer"`
	Parking       bool     `json:"parking"`
	Furnished     bool     `json:"furnished"`
	ImageURLs     []string `json:"imageUrls"`
}

// UserPatch is a partial profile update; empty fields are left untouched.
type UserPatch struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// APIError is a non-2xx response decoded from the error envelope.
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client calls the Havenly API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a Client for the given base URL (e.g. "http://localhost:8080").
// The provided http.Client is cloned-in with a fresh cookie jar; pass nil for
// sensible defaults.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		httpClient.Jar = jar
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// SignUp registers a new account.
func (c *Client) SignUp(ctx context.Context, username, email, password string) (*User, error) {
	var u User
	err := c.do(ctx, http.MethodPost, "/api/auth/signup",
		map[string]string{"username": username, "email": email, "password": password}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// SignIn authenticates and stores the session cookie in the jar.
func (c *Client) SignIn(ctx context.Context, email, password string) (*User, error) {
	var u User
	err := c.do(ctx, http.MethodPost, "/api/auth/signin",
		map[string]string{"email": email, "password": password}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// SignOut clears the session cookie.
func (c *Client) SignOut(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/auth/signout", nil, nil)
}

// GoogleSignIn forwards an OAuth profile; the server creates the account on
// first sight.
func (c *Client) GoogleSignIn(ctx context.Context, name, email, photo string) (*User, error) {
	var u User
	err := c.do(ctx, http.MethodPost, "/api/auth/google",
		map[string]string{"name": name, "email": email, "photo": photo}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUser patches the caller's own profile.
func (c *Client) UpdateUser(ctx context.Context, id string, patch UserPatch) (*User, error) {
	var u User
	err := c.do(ctx, http.MethodPost, "/api/user/update/"+url.PathEscape(id), patch, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// DeleteUser deletes the caller's own account.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/user/delete/"+url.PathEscape(id), nil, nil)
}

// UserListings returns the caller's own listings.
func (c *Client) UserListings(ctx context.Context, id string) ([]Listing, error) {
	var ls []Listing
	err := c.do(ctx, http.MethodGet, "/api/user/listings/"+url.PathEscape(id), nil, &ls)
	return ls, err
}

// CreateListing publishes a new listing owned by the caller.
func (c *Client) CreateListing(ctx context.Context, in ListingInput) (*Listing, error) {
	var l Listing
	if err := c.do(ctx, http.MethodPost, "/api/listing/create", in, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// GetListing fetches a listing by ID; no authentication required.
func (c *Client) GetListing(ctx context.Context, id string) (*Listing, error) {
	var l Listing
	if err := c.do(ctx, http.MethodGet, "/api/listing/get/"+url.PathEscape(id), nil, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// UpdateListing mutates a listing the caller owns.
func (c *Client) UpdateListing(ctx context.Context, id string, in ListingInput) (*Listing, error) {
	var l Listing
	if err := c.do(ctx, http.MethodPost, "/api/listing/update/"+url.PathEscape(id), in, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// DeleteListing removes a listing the caller owns.
func (c *Client) DeleteListing(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/listing/delete/"+url.PathEscape(id), nil, nil)
}

// SearchListings queries the search index.
func (c *Client) SearchListings(ctx context.Context, q string, limit int) ([]map[string]any, error) {
	v := url.Values{}
	v.Set("q", q)
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	var hits []map[string]any
	err := c.do(ctx, http.MethodGet, "/api/listing/search?"+v.Encode(), nil, &hits)
	return hits, err
}
