package session

import "github.com/20225587/Tasker/app/models"

// Identity is the state a session binds to a request: who the caller is
// and the role resolved at login time.
type Identity struct {
	UserID   uint        `json:"user_id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
}

func (id *Identity) IsAdmin() bool { return id != nil && id.Role == models.RoleAdmin }
