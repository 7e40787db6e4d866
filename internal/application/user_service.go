package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/rizkypratama/havenly/internal/domain/entity"
	repo "github.com/rizkypratama/havenly/internal/domain/repository"
	"github.com/rizkypratama/havenly/pkg/helpers"
	"github.com/rizkypratama/havenly/pkg/mailer"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateAccount   = errors.New("username or email already in use")
)

// UserService covers registration, sign-in, profile management, and
// account deletion.
type UserService struct {
	Users         repo.UserRepository
	Listings      repo.ListingRepository
	JWT           *helpers.TokenManager
	Logger        *logrus.Logger
	Pub           *helpers.RabbitPublisher
	AppName       string
	DefaultAvatar string
	MailEnabled   bool
}

func NewUserService(users repo.UserRepository, listings repo.ListingRepository, jwt *helpers.TokenManager, logger *logrus.Logger, pub *helpers.RabbitPublisher, appName, defaultAvatar string, mailEnabled bool) *UserService {
	return &UserService{
		Users:         users,
		Listings:      listings,
		JWT:           jwt,
		Logger:        logger,
		Pub:           pub,
		AppName:       appName,
		DefaultAvatar: defaultAvatar,
		MailEnabled:   mailEnabled,
	}
}

// SignUp registers a new account. The welcome email is enqueued best-effort;
// a broker failure never fails the signup.
func (s *UserService) SignUp(ctx context.Context, username, email, password string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Username: username,
		Email:    email,
		Password: hash,
		Avatar:   s.DefaultAvatar,
	}
	if err := s.Users.Create(u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrDuplicateAccount
		}
		return nil, err
	}
	s.enqueueWelcome(ctx, u)
	return u, nil
}

// SignIn validates credentials and issues a session token.
func (s *UserService) SignIn(ctx context.Context, email, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Users.GetByEmail(email)
	if err != nil || u == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.Generate(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate session token failed")
		}
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}

// GoogleSignIn trusts the OAuth profile forwarded by the client and creates
// the account on first sight with a generated username and a random password.
func (s *UserService) GoogleSignIn(ctx context.Context, name, email, photo string) (*entity.User, string, time.Time, error) {
	u, err := s.Users.GetByEmail(email)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			return nil, "", time.Time{}, err
		}
		hash, herr := helpers.HashPassword(uuid.NewString())
		if herr != nil {
			return nil, "", time.Time{}, herr
		}
		avatar := photo
		if avatar == "" {
			avatar = s.DefaultAvatar
		}
		u = &entity.User{
			Username: generatedUsername(name),
			Email:    email,
			Password: hash,
			Avatar:   avatar,
		}
		if cerr := s.Users.Create(u); cerr != nil {
			// Username collision on a first-sight account; retry once with a
			// fresh suffix.
			if errors.Is(cerr, repo.ErrDuplicate) {
				u.Username = generatedUsername(name)
				cerr = s.Users.Create(u)
			}
			if cerr != nil {
				return nil, "", time.Time{}, cerr
			}
		}
		s.enqueueWelcome(ctx, u)
	}
	token, exp, err := s.JWT.Generate(u.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}

type UpdateProfileInput struct {
	Username string
	Email    string
	Password string
	Avatar   string
}

// UpdateProfile applies a partial patch to the caller's own account.
// A non-empty Password is re-hashed before persistence.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.Users.GetByID(userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	if in.Username != "" {
		u.Username = in.Username
	}
	if in.Email != "" {
		u.Email = in.Email
	}
	if in.Avatar != "" {
		u.Avatar = in.Avatar
	}
	if in.Password != "" {
		hash, herr := helpers.HashPassword(in.Password)
		if herr != nil {
			return nil, herr
		}
		u.Password = hash
	}
	if err := s.Users.Update(u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrDuplicateAccount
		}
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// DeleteAccount removes the user record. Deleting an already-deleted account
// reports ErrUserNotFound.
func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.Users.Delete(userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// ListingsByOwner returns every listing owned by the given user.
func (s *UserService) ListingsByOwner(ctx context.Context, userID string) ([]*entity.Listing, error) {
	return s.Listings.GetByOwner(userID)
}

func (s *UserService) enqueueWelcome(ctx context.Context, u *entity.User) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailer.TemplateWelcome,
		Data: map[string]any{
			"AppName":  s.AppName,
			"Username": u.Username,
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("failed to enqueue welcome email")
	}
}

// generatedUsername builds a unique-ish handle from the OAuth display name,
// e.g. "Jane Roe" -> "janeroe4f21".
func generatedUsername(name string) string {
	base := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	if base == "" {
		base = "user"
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:4]
	return base + suffix
}
