package session

import (
	"handyhub/models"

	"golang.org/x/crypto/bcrypt"
)

// credential is a known login. Only the bcrypt hash of the password is kept.
type credential struct {
	session      models.Session
	passwordHash []byte
}

type fixture struct {
	models.Session
	Password string
}

// Fixtures are the accounts Login accepts.
var Fixtures = []fixture{
	{Session: models.Session{ID: "1", Name: "John Customer", Email: "customer@example.com", UserType: models.UserTypeCustomer}, Password: "password"},
	{Session: models.Session{ID: "2", Name: "Jane Provider", Email: "provider@example.com", UserType: models.UserTypeProvider}, Password: "password"},
}

func buildCredentials(fs []fixture) []credential {
	out := make([]credential, 0, len(fs))
	for _, f := range fs {
		hash, err := bcrypt.GenerateFromPassword([]byte(f.Password), bcrypt.MinCost)
		if err != nil {
			panic("session: hash fixture password: " + err.Error())
		}
		out = append(out, credential{session: f.Session, passwordHash: hash})
	}
	return out
}

var defaultCredentials = buildCredentials(Fixtures)
