package application

import (
	"github.com/linskybing/forms-platform/internal/repository"
	"github.com/linskybing/forms-platform/pkg/logger"
)

type Services struct {
	Form *FormService
	User *UserService
}

func New(repos *repository.Repos, log *logger.Logger) *Services {
	return &Services{
		Form: NewFormService(repos, log),
		User: NewUserService(repos, log),
	}
}
