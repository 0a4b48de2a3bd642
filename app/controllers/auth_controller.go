package controllers

import (
	"net/http"

	"github.com/20225587/Tasker/app/dto"
	"github.com/20225587/Tasker/app/models"
	"github.com/20225587/Tasker/app/services"
	"github.com/20225587/Tasker/app/session"
	"github.com/20225587/Tasker/app/validate"
	"github.com/20225587/Tasker/global"
)

type AuthController struct {
	Users    *services.UserService
	Sessions *session.Manager
}

func NewAuthController(users *services.UserService, sessions *session.Manager) *AuthController {
	return &AuthController{Users: users, Sessions: sessions}
}

func landingPath(role models.Role) string {
	if role == models.RoleAdmin {
		return "/admin"
	}
	return "/user"
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	username := validate.Trim(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		fail(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	u, err := c.Users.Authenticate(username, password)
	if err != nil {
		failFromService(w, "login", err)
		return
	}

	ident := session.Identity{UserID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role()}
	if err := c.Sessions.Establish(w, r, ident); err != nil {
		global.Logger.Error().Err(err).Msg("establish session failed")
		fail(w, http.StatusInternalServerError, genericErrorMessage)
		return
	}

	ok(w, "Login successful", dto.LoginResult{Redirect: landingPath(u.Role())})
}

func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	username := validate.Trim(r.PostFormValue("username"))
	email := validate.Trim(r.PostFormValue("email"))
	password := validate.Trim(r.PostFormValue("password"))
	confirm := validate.Trim(r.PostFormValue("confirm_password"))

	if username == "" || email == "" || password == "" || confirm == "" {
		fail(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if err := validate.Username(username); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validate.Email(email); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validate.Password(password); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validate.PasswordConfirmation(password, confirm); err != nil {
		fail(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := c.Users.Signup(username, email, password)
	if err != nil {
		failFromService(w, "signup", err)
		return
	}

	ok(w, "Account created successfully! You can now login.", dto.SignupResult{
		UserID:   u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
	})
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	if err := c.Sessions.Terminate(w, r); err != nil {
		global.Logger.Error().Err(err).Msg("terminate session failed")
		fail(w, http.StatusInternalServerError, genericErrorMessage)
		return
	}
	ok(w, "Logged out successfully", dto.LoginResult{Redirect: "/"})
}
