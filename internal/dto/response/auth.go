package response

// SignupResponse echoes the identity only; the confirmation code travels
// by email and the credential never leaves the server.
type SignupResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
