package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"parkgarage/internal/models"
)

// Credential-gate outcomes. Controllers map these to 404, 401 and 403.
var (
	ErrUnknownUser      = errors.New("user does not exist")
	ErrPasswordMismatch = errors.New("incorrect password")
	ErrRoleNotAllowed   = errors.New("not authorized")
)

type PersonStore interface {
	PeopleByUsername(ctx context.Context, username string) ([]models.Person, error)
}

// CredentialGate checks a login name and password, optionally requiring a
// role, and returns the matched person record.
type CredentialGate struct {
	store PersonStore
}

func NewCredentialGate(store PersonStore) *CredentialGate {
	return &CredentialGate{store: store}
}

// Authenticate looks up the login name and compares the password against the
// stored bcrypt hash. When requiredRole is non-empty the person's role must
// match it exactly. Login names are not unique at the data layer; the first
// row the store returns wins.
func (g *CredentialGate) Authenticate(ctx context.Context, username, password, requiredRole string) (*models.Person, error) {
	people, err := g.store.PeopleByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(people) == 0 {
		return nil, ErrUnknownUser
	}
	person := people[0]

	if err := bcrypt.CompareHashAndPassword([]byte(person.Password), []byte(password)); err != nil {
		return nil, ErrPasswordMismatch
	}

	if requiredRole != "" && person.Role != requiredRole {
		return nil, ErrRoleNotAllowed
	}
	return &person, nil
}

// HashPassword prepares a secret for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
