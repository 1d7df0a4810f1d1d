package model

// AuthResponse struct holds the response data for login or registration
type AuthResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}

// SetAccessToken sets the access token in the AuthResponse
func (r *AuthResponse) SetAccessToken(accessToken string) {
	r.AccessToken = accessToken
}

// ProfileResponse is user with its role specific profile
type ProfileResponse struct {
	User      User       `json:"user"`
	Recruiter *Recruiter `json:"recruiter,omitempty"`
	Applicant *Applicant `json:"applicant,omitempty"`
}
