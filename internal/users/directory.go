package users

import (
	"errors"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"crmbackend/internal/models"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Directory resolves accounts for login and session lookups. It is injected
// into the handlers so the fixed demo list can later be swapped for a real
// secret store without touching the auth contract.
type Directory interface {
	Authenticate(email, password string) (models.User, error)
	ByID(id int) (models.User, bool)
}

type seedUser struct {
	id       int
	email    string
	password string
	name     string
}

// The five demo accounts shipped with the dashboard.
var demoUsers = []seedUser{
	{1, "admin@crm.com", "admin123", "Administrator"},
	{2, "user1@crm.com", "user123", "User One"},
	{3, "user2@crm.com", "user456", "User Two"},
	{4, "manager@crm.com", "manager789", "Manager"},
	{5, "sales@crm.com", "sales2024", "Sales Team"},
}

type staticDirectory struct {
	byEmail map[string]models.User
	byID    map[int]models.User
}

// NewStaticDirectory builds the fixed directory, hashing the seed passwords so
// nothing keeps plaintext around after startup.
func NewStaticDirectory() Directory {
	d := &staticDirectory{
		byEmail: make(map[string]models.User, len(demoUsers)),
		byID:    make(map[int]models.User, len(demoUsers)),
	}
	for _, seed := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("[USERS] [ERROR] seed password hash failed: %v", err)
		}
		user := models.User{
			ID:           seed.id,
			Email:        seed.email,
			PasswordHash: string(hash),
			Name:         seed.name,
		}
		d.byEmail[seed.email] = user
		d.byID[seed.id] = user
	}
	return d
}

func (d *staticDirectory) Authenticate(email, password string) (models.User, error) {
	user, ok := d.byEmail[strings.TrimSpace(email)]
	if !ok {
		return models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (d *staticDirectory) ByID(id int) (models.User, bool) {
	user, ok := d.byID[id]
	return user, ok
}
