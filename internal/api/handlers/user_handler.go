package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/forms-platform/internal/application"
	"github.com/linskybing/forms-platform/internal/domain/user"
)

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register godoc
// @Summary User registration
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.CreateUserInput true "User registration info"
// @Success 200 {object} user.User
// @Failure 400 {object} response.ErrorResponse "Invalid input or email already registered"
// @Failure 500 {object} response.ErrorResponse "Failed to register user"
// @Router /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input user.CreateUserInput
	if err := c.ShouldBind(&input); err != nil {
		abortBind(c, err)
		return
	}

	u, err := h.svc.Register(c.Request.Context(), input)
	if err != nil {
		writeError(c, err, false)
		return
	}
	c.JSON(http.StatusOK, u)
}
