package controllers

import (
	"net/http"
	"strconv"

	"github.com/20225587/Tasker/app/dto"
	"github.com/20225587/Tasker/app/middleware"
	"github.com/20225587/Tasker/app/services"
	"github.com/20225587/Tasker/app/validate"
)

// UserController handles the admin-only account CRUD. Every route sits
// behind the admin guard in the router.
type UserController struct{ Users *services.UserService }

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func formID(r *http.Request, name string) uint {
	id, err := strconv.Atoi(r.PostFormValue(name))
	if err != nil || id <= 0 {
		return 0
	}
	return uint(id)
}

func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	users, err := c.Users.List()
	if err != nil {
		failFromService(w, "list users", err)
		return
	}
	rows := make([]dto.UserSummary, 0, len(users))
	for _, u := range users {
		rows = append(rows, dto.NewUserSummary(u))
	}
	ok(w, "Users retrieved successfully", rows)
}

func (c *UserController) Add(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	username := validate.Trim(r.PostFormValue("username"))
	email := validate.Trim(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	isAdmin := r.PostFormValue("is_admin") != ""

	if username == "" || email == "" || password == "" {
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

	if _, err := c.Users.Create(username, email, password, isAdmin); err != nil {
		failFromService(w, "add user", err)
		return
	}
	ok(w, "User added successfully", nil)
}

func (c *UserController) Edit(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	userID := formID(r, "user_id")
	username := validate.Trim(r.PostFormValue("username"))
	email := validate.Trim(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	isAdmin := r.PostFormValue("is_admin") != ""

	if userID == 0 || username == "" || email == "" {
		fail(w, http.StatusBadRequest, "User ID, username, and email are required")
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
	// Password unchanged when omitted.
	if password != "" {
		if err := validate.Password(password); err != nil {
			fail(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	if err := c.Users.Update(userID, username, email, password, isAdmin); err != nil {
		failFromService(w, "edit user", err)
		return
	}
	ok(w, "User updated successfully", nil)
}

func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	userID := formID(r, "user_id")
	if userID == 0 {
		fail(w, http.StatusBadRequest, "Valid user ID is required")
		return
	}
	ident := middleware.GetIdentity(r.Context())

	if err := c.Users.Delete(userID, ident.UserID); err != nil {
		failFromService(w, "delete user", err)
		return
	}
	ok(w, "User deleted successfully", nil)
}
