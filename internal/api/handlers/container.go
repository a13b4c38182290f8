package handlers

import (
	"github.com/linskybing/forms-platform/internal/application"
)

type Handlers struct {
	Form *FormHandler
	User *UserHandler
}

func New(svc *application.Services) *Handlers {
	return &Handlers{
		Form: NewFormHandler(svc.Form),
		User: NewUserHandler(svc.User),
	}
}
