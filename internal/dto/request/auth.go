package request

type SignupRequest struct {
	Username string `json:"username" validate:"required,slug,max=150"`
	Email    string `json:"email" validate:"required,email,max=254"`
}

type TokenRequest struct {
	Username         string `json:"username" validate:"required,max=150"`
	ConfirmationCode int    `json:"confirmation_code" validate:"required,min=100000,max=999999"`
}
