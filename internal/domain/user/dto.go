package user

type CreateUserInput struct {
	Email    string  `json:"email" form:"email" binding:"required,email" example:"user@example.com"`
	Password string  `json:"password" form:"password" binding:"required,min=6,max=72" example:"password123"`
	FullName *string `json:"full_name" form:"full_name" example:"John Doe"`
}
