package dto

type RefreshInput struct {
	RefreshToken string `json:"refreshToken"`
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshOutput is the envelope the frontend's token-refresh interceptor
// expects: {"success":true,"data":{...}} on success.
type RefreshOutput struct {
	Success bool       `json:"success"`
	Data    *TokenPair `json:"data,omitempty"`
	Message string     `json:"message,omitempty"`
}
