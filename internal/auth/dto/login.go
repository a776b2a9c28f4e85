package dto

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginOutput flattens the public user record together with the issued
// token pair, matching what the admin frontend expects from /login.
type LoginOutput struct {
	UserOutput
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
