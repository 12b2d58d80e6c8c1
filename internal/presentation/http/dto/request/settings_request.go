package request

// UpdateCompanyRequest represents a company profile update
type UpdateCompanyRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Country *string `json:"country"`
	Website *string `json:"website"`
	TaxID   *string `json:"tax_id"`
}

// UpdatePreferencesRequest represents a preferences update
type UpdatePreferencesRequest struct {
	Currency *string `json:"currency"`
	Language *string `json:"language"`
}

// UpdateEmailRequest changes the company and login email
type UpdateEmailRequest struct {
	Email string `json:"email" binding:"required"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=NewPassword"`
}
