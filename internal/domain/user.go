package domain

// Profile holds the user-editable part of an account. Authentication is
// handled by an external provider; the storefront only stores the profile.
type Profile struct {
	UserID       string `json:"user_id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	ProfileImage string `json:"profile_image"`
}
