package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rizkypratama/havenly/internal/domain/entity"
	repo "github.com/rizkypratama/havenly/internal/domain/repository"
	"github.com/rizkypratama/havenly/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Init()
}

// sessionCookie pulls a named cookie out of a recorded response.
func sessionCookie(resp *http.Response, name string) *http.Cookie {
	for _, ck := range resp.Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

type mockUserRepo struct {
	createFn     func(u *entity.User) error
	getByIDFn    func(id string) (*entity.User, error)
	getByEmailFn func(email string) (*entity.User, error)
	updateFn     func(u *entity.User) error
	deleteFn     func(id string) error
}

func (m *mockUserRepo) Create(u *entity.User) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(u)
}

func (m *mockUserRepo) GetByID(id string) (*entity.User, error) {
	if m.getByIDFn == nil {
		return nil, repo.ErrNotFound
	}
	return m.getByIDFn(id)
}

func (m *mockUserRepo) GetByEmail(email string) (*entity.User, error) {
	if m.getByEmailFn == nil {
		return nil, repo.ErrNotFound
	}
	return m.getByEmailFn(email)
}

func (m *mockUserRepo) Update(u *entity.User) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(u)
}

func (m *mockUserRepo) Delete(id string) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(id)
}

type mockListingRepo struct {
	createFn     func(l *entity.Listing) error
	getByIDFn    func(id string) (*entity.Listing, error)
	getByOwnerFn func(ownerID string) ([]*entity.Listing, error)
	updateFn     func(l *entity.Listing) error
	deleteFn     func(id string) error
}

func (m *mockListingRepo) Create(l *entity.Listing) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(l)
}

func (m *mockListingRepo) GetByID(id string) (*entity.Listing, error) {
	if m.getByIDFn == nil {
		return nil, repo.ErrNotFound
	}
	return m.getByIDFn(id)
}

func (m *mockListingRepo) GetByOwner(ownerID string) ([]*entity.Listing, error) {
	if m.getByOwnerFn == nil {
		return nil, nil
	}
	return m.getByOwnerFn(ownerID)
}

func (m *mockListingRepo) Update(l *entity.Listing) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(l)
}

func (m *mockListingRepo) Delete(id string) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(id)
}
