package dto

type LoginResult struct {
	Redirect string `json:"redirect"`
}

type SignupResult struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}
