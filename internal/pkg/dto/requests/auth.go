package requests

type RegisterUser struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	Name           string `json:"name" validate:"required"`
	Role           string `json:"role" validate:"required,oneof=patient doctor"`
	Specialization string `json:"specialization,omitempty"`
}

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LogoutUser struct {
	SessionData string
}
