package request

type CreateUserRequest struct {
	Username string  `json:"username" validate:"required,slug,max=150"`
	Email    string  `json:"email" validate:"required,email,max=254"`
	Bio      *string `json:"bio,omitempty" validate:"omitempty,max=1000"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=user moderator admin"`
}

type UpdateUserRequest struct {
	Email *string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	Bio   *string `json:"bio,omitempty" validate:"omitempty,max=1000"`
	Role  *string `json:"role,omitempty" validate:"omitempty,oneof=user moderator admin"`
}

// UpdateProfileRequest is the self-service variant: role is not editable.
type UpdateProfileRequest struct {
	Email *string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	Bio   *string `json:"bio,omitempty" validate:"omitempty,max=1000"`
}
