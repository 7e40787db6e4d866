package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rizkypratama/havenly/internal/domain/entity"
	repo "github.com/rizkypratama/havenly/internal/domain/repository"
	"github.com/rizkypratama/havenly/pkg/helpers"
)

func newUserService(users *mockUserRepo, listings *mockListingRepo) *UserService {
	if listings == nil {
		listings = &mockListingRepo{}
	}
	return NewUserService(users, listings, helpers.NewTokenManager("test-secret", time.Hour), nil, nil, "havenly-test", "https://cdn.havenly.dev/default-avatar.png", false)
}

func TestSignUpHashesPasswordAndDefaultsAvatar(t *testing.T) {
	var created *entity.User
	users := &mockUserRepo{
		createFn: func(u *entity.User) error {
			u.ID = "u1"
			created = u
			return nil
		},
	}
	svc := newUserService(users, nil)

	u, err := svc.SignUp(context.Background(), "jane", "jane@example.com", "password123")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if created == nil {
		t.Fatal("Create was not called")
	}
	if u.Password == "password123" {
		t.Error("password stored as plaintext")
	}
	if !helpers.CompareHashAndPassword(u.Password, "password123") {
		t.Error("stored hash does not verify")
	}
	if u.Avatar != "https://cdn.havenly.dev/default-avatar.png" {
		t.Errorf("avatar = %q, want default", u.Avatar)
	}
}

func TestSignUpDuplicate(t *testing.T) {
	users := &mockUserRepo{
		createFn: func(u *entity.User) error { return repo.ErrDuplicate },
	}
	svc := newUserService(users, nil)

	if _, err := svc.SignUp(context.Background(), "jane", "jane@example.com", "password123"); !errors.Is(err, ErrDuplicateAccount) {
		t.Errorf("SignUp duplicate: got %v, want ErrDuplicateAccount", err)
	}
}

func TestSignIn(t *testing.T) {
	hash, _ := helpers.HashPassword("password123")
	stored := &entity.User{ID: "u1", Email: "jane@example.com", Password: hash}
	users := &mockUserRepo{
		getByEmailFn: func(email string) (*entity.User, error) {
			if email == stored.Email {
				return stored, nil
			}
			return nil, repo.ErrNotFound
		},
	}
	svc := newUserService(users, nil)

	u, token, exp, err := svc.SignIn(context.Background(), "jane@example.com", "password123")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if u.ID != "u1" || token == "" {
		t.Errorf("unexpected result: user=%+v token=%q", u, token)
	}
	if !exp.After(time.Now()) {
		t.Errorf("expiry %v not in the future", exp)
	}

	if _, _, _, err := svc.SignIn(context.Background(), "jane@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	if _, _, _, err := svc.SignIn(context.Background(), "nobody@example.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v, want ErrInvalidCredentials", err)
	}
}

func TestGoogleSignInCreatesAccountOnFirstSight(t *testing.T) {
	var created *entity.User
	users := &mockUserRepo{
		getByEmailFn: func(email string) (*entity.User, error) { return nil, repo.ErrNotFound },
		createFn: func(u *entity.User) error {
			u.ID = "u1"
			created = u
			return nil
		},
	}
	svc := newUserService(users, nil)

	u, token, _, err := svc.GoogleSignIn(context.Background(), "Jane Roe", "jane@example.com", "https://lh3.example.com/photo.jpg")
	if err != nil {
		t.Fatalf("GoogleSignIn: %v", err)
	}
	if created == nil {
		t.Fatal("account was not created")
	}
	if token == "" {
		t.Error("no session token issued")
	}
	if !strings.HasPrefix(u.Username, "janeroe") || len(u.Username) != len("janeroe")+4 {
		t.Errorf("generated username = %q, want janeroe + 4 char suffix", u.Username)
	}
	if u.Avatar != "https://lh3.example.com/photo.jpg" {
		t.Errorf("avatar = %q, want forwarded photo", u.Avatar)
	}
	if u.Password == "" {
		t.Error("no random password hash set")
	}
}

func TestGoogleSignInExistingAccount(t *testing.T) {
	stored := &entity.User{ID: "u1", Username: "jane", Email: "jane@example.com"}
	createCalled := false
	users := &mockUserRepo{
		getByEmailFn: func(email string) (*entity.User, error) { return stored, nil },
		createFn:     func(u *entity.User) error { createCalled = true; return nil },
	}
	svc := newUserService(users, nil)

	u, token, _, err := svc.GoogleSignIn(context.Background(), "Jane Roe", "jane@example.com", "")
	if err != nil {
		t.Fatalf("GoogleSignIn: %v", err)
	}
	if createCalled {
		t.Error("Create called for existing account")
	}
	if u.ID != "u1" || token == "" {
		t.Errorf("unexpected result: user=%+v token=%q", u, token)
	}
}

func TestUpdateProfilePartialPatch(t *testing.T) {
	hash, _ := helpers.HashPassword("oldpassword")
	stored := &entity.User{ID: "u1", Username: "jane", Email: "jane@example.com", Password: hash, Avatar: "https://a.example.com/1.png"}
	users := &mockUserRepo{
		getByIDFn: func(id string) (*entity.User, error) { return stored, nil },
	}
	svc := newUserService(users, nil)

	u, err := svc.UpdateProfile(context.Background(), "u1", UpdateProfileInput{Username: "jane2"})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if u.Username != "jane2" {
		t.Errorf("username = %q, want jane2", u.Username)
	}
	if u.Email != "jane@example.com" || u.Avatar != "https://a.example.com/1.png" {
		t.Error("untouched fields were modified")
	}
	if !helpers.CompareHashAndPassword(u.Password, "oldpassword") {
		t.Error("password changed without being in the patch")
	}
}

func TestUpdateProfileRehashesPassword(t *testing.T) {
	stored := &entity.User{ID: "u1", Username: "jane", Email: "jane@example.com"}
	users := &mockUserRepo{
		getByIDFn: func(id string) (*entity.User, error) { return stored, nil },
	}
	svc := newUserService(users, nil)

	u, err := svc.UpdateProfile(context.Background(), "u1", UpdateProfileInput{Password: "newpassword"})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if u.Password == "newpassword" {
		t.Error("password stored as plaintext")
	}
	if !helpers.CompareHashAndPassword(u.Password, "newpassword") {
		t.Error("new hash does not verify")
	}
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc := newUserService(&mockUserRepo{}, nil)
	if _, err := svc.UpdateProfile(context.Background(), "missing", UpdateProfileInput{Username: "x"}); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("got %v, want ErrUserNotFound", err)
	}
}

func TestDeleteAccountAlreadyGone(t *testing.T) {
	users := &mockUserRepo{
		deleteFn: func(id string) error { return repo.ErrNotFound },
	}
	svc := newUserService(users, nil)
	if err := svc.DeleteAccount(context.Background(), "u1"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("got %v, want ErrUserNotFound", err)
	}
}
