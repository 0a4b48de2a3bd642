package dto

import "github.com/20225587/Tasker/app/models"

// UserSummary is the list-users row. The password hash never leaves the
// service layer.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

func NewUserSummary(u models.User) UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Email: u.Email, IsAdmin: u.IsAdmin}
}
