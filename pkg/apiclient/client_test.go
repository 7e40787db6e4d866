package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSignInStoresSessionCookie(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/signin", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("server decode: %v", err)
		}
		if req["email"] != "jane@example.com" || req["password"] != "password123" {
			t.Errorf("unexpected credentials: %v", req)
		}
		http.SetCookie(w, &http.Cookie{Name: "access_token", Value: "tok-123", Path: "/"})
		_ = json.NewEncoder(w).Encode(User{ID: "u1", Username: "jane", Email: req["email"]})
	})
	mux.HandleFunc("/api/user/listings/u1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		ck, err := r.Cookie("access_token")
		if err != nil || ck.Value != "tok-123" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(APIError{StatusCode: 401, Message: "unauthorized"})
			return
		}
		_ = json.NewEncoder(w).Encode([]Listing{{ID: "l1", UserRef: "u1"}})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c, err := New(srv.URL, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	u, err := c.SignIn(ctx, "jane@example.com", "password123")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if u.ID != "u1" {
		t.Errorf("user id = %q, want u1", u.ID)
	}

	// the jar must replay the session cookie on the next call
	ls, err := c.UserListings(ctx, "u1")
	if err != nil {
		t.Fatalf("UserListings: %v", err)
	}
	if len(ls) != 1 || ls[0].ID != "l1" {
		t.Errorf("listings = %+v", ls)
	}
}

func TestErrorEnvelopeDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":    false,
			"statusCode": 409,
			"message":    "username or email already in use",
		})
	}))
	defer srv.Close()

	c, err := New(srv.URL, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = c.SignUp(context.Background(), "jane", "jane@example.com", "password123")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T (%v), want *APIError", err, err)
	}
	if apiErr.StatusCode != http.StatusConflict {
		t.Errorf("StatusCode = %d, want 409", apiErr.StatusCode)
	}
	if apiErr.Message != "username or email already in use" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestErrorWithoutBodyFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c, err := New(srv.URL, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = c.GetListing(context.Background(), "l1")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway || apiErr.Message == "" {
		t.Errorf("unexpected error: %+v", apiErr)
	}
}

func TestCreateListingSendsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/listing/create" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var in ListingInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Fatalf("server decode: %v", err)
		}
		if in.Name != "Sunny flat" || in.Type != "rent" {
			t.Errorf("unexpected input: %+v", in)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(Listing{ID: "l1", Name: in.Name, Type: in.Type, UserRef: "u1"})
	}))
	defer srv.Close()

	c, err := New(srv.URL, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	l, err := c.CreateListing(context.Background(), ListingInput{
		Name:         "Sunny flat",
		Description:  "Bright flat",
		Address:      "12 Harbor Street",
		Type:         "rent",
		Bedrooms:     2,
		Bathrooms:    1,
		RegularPrice: 1450,
		ImageURLs:    []string{"https://cdn.havenly.dev/l/1.jpg"},
	})
	if err != nil {
		t.Fatalf("CreateListing: %v", err)
	}
	if l.ID != "l1" {
		t.Errorf("listing id = %q, want l1", l.ID)
	}
}

func TestSearchListingsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "harbor" {
			t.Errorf("q = %q, want harbor", got)
		}
		if got := r.URL.Query().Get("limit"); got != "5" {
			t.Errorf("limit = %q, want 5", got)
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{{"id": "l1", "name": "Harbor house"}})
	}))
	defer srv.Close()

	c, err := New(srv.URL, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	hits, err := c.SearchListings(context.Background(), "harbor", 5)
	if err != nil {
		t.Fatalf("SearchListings: %v", err)
	}
	if len(hits) != 1 || hits[0]["name"] != "Harbor house" {
		t.Errorf("hits = %v", hits)
	}
}
