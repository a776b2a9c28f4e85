package dto

type LogoutInput struct {
	Email string `json:"email"`
}
