package services

import (
	"errors"

	"github.com/20225587/Tasker/app/models"
	"github.com/20225587/Tasker/app/repo"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct{ users *repo.UserRepository }

func NewUserService(users *repo.UserRepository) *UserService { return &UserService{users: users} }

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// EnsureAdmin seeds the configured administrator account when missing.
func (s *UserService) EnsureAdmin(username, email, password string) error {
	count, err := s.users.CountByUsername(username)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	return s.users.Create(&models.User{Username: username, Email: email, PasswordHash: hash, IsAdmin: true})
}

// Signup creates a non-admin account. The duplicate pre-checks produce
// the field-specific messages; the unique indexes remain authoritative,
// so a racing insert still comes back as a duplicate, not a store error.
func (s *UserService) Signup(username, email, password string) (*models.User, error) {
	count, err := s.users.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}
	count, err = s.users.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &models.User{Username: username, Email: email, PasswordHash: hash, IsAdmin: false}
	if err := s.users.Create(u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return u, nil
}

// Authenticate never distinguishes an unknown username from a wrong
// password.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) List() ([]models.User, error) { return s.users.List() }

// Create adds an account on behalf of an administrator; role selectable.
func (s *UserService) Create(username, email, password string, isAdmin bool) (*models.User, error) {
	count, err := s.users.CountConflicts(username, email, 0)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateUser
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &models.User{Username: username, Email: email, PasswordHash: hash, IsAdmin: isAdmin}
	if err := s.users.Create(u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return u, nil
}

// Update edits credentials and role. The password is re-hashed only when
// one is provided; an empty password leaves the stored hash untouched.
func (s *UserService) Update(id uint, username, email, password string, isAdmin bool) error {
	u, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	count, err := s.users.CountConflicts(username, email, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateUser
	}
	u.Username = username
	u.Email = email
	u.IsAdmin = isAdmin
	if password != "" {
		hash, err := hashPassword(password)
		if err != nil {
			return err
		}
		u.PasswordHash = hash
	}
	if err := s.users.Update(u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateUser
		}
		return err
	}
	return nil
}

// Delete removes an account and, via the store cascade, every task it
// owns. Callers may never delete themselves.
func (s *UserService) Delete(id, callerID uint) error {
	if id == callerID {
		return ErrSelfDelete
	}
	if _, err := s.users.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.users.Delete(id)
}
