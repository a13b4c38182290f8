package application

import (
	"context"
	"errors"
	"strings"

	"github.com/linskybing/forms-platform/internal/domain/user"
	"github.com/linskybing/forms-platform/internal/repository"
	"github.com/linskybing/forms-platform/pkg/fault"
	"github.com/linskybing/forms-platform/pkg/logger"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcrypt only reads the first 72 bytes of a password.
const maxPasswordBytes = 72

var (
	ErrEmailTaken          = fault.New(fault.KindConflict, "Email already registered", nil)
	ErrPasswordHashFailure = errors.New("failed to hash password")
)

type UserService struct {
	Repos *repository.Repos
	log   *logger.Logger
}

func NewUserService(repos *repository.Repos, log *logger.Logger) *UserService {
	if log == nil {
		log = logger.Nop()
	}
	return &UserService{
		Repos: repos,
		log:   log.With("component", "user_service"),
	}
}

// Register creates an active account. The password is stored only as a
// bcrypt hash.
func (s *UserService) Register(ctx context.Context, input user.CreateUserInput) (user.User, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return user.User{}, fault.Validation("email is required")
	}

	if len(input.Password) > maxPasswordBytes {
		return user.User{}, fault.Validationf("password must be at most %d bytes", maxPasswordBytes)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error("Failed to hash password", "error", err)
		return user.User{}, fault.Persistence(ErrPasswordHashFailure.Error(), err)
	}

	usr := user.User{
		Email:          email,
		HashedPassword: string(hashed),
		FullName:       input.FullName,
		IsActive:       true,
	}
	err = s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		_, err := tx.User.GetUserByEmail(email)
		if err == nil {
			return ErrEmailTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.User.CreateUser(&usr)
	})
	switch {
	case err == nil:
	case errors.Is(err, ErrEmailTaken), errors.Is(err, gorm.ErrDuplicatedKey):
		return user.User{}, ErrEmailTaken
	case fault.KindOf(err) != fault.KindUnknown:
		return user.User{}, err
	default:
		s.log.Error("Failed to register user", "email", email, "error", err)
		return user.User{}, fault.Persistence("failed to register user", err)
	}

	s.log.Info("User registered", "user_id", usr.ID)
	return usr, nil
}
