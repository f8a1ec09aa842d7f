package wizard

import (
	"context"
	"regexp"
	"strings"

	"handyhub/models"
	"handyhub/services/guard"
)

const FlowRegistration = "registration"

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// Registrar creates a session for a new account.
type Registrar interface {
	Register(ctx context.Context, email, password, name string, userType models.UserType) (models.Session, error)
}

// RegistrationFlow collects account details then a password, and signs
// the new user in.
func RegistrationFlow(reg Registrar) Flow {
	return Flow{
		Name: FlowRegistration,
		Steps: []Step{
			{Name: "details", Fields: []string{"name", "email", "userType"}, Validate: validateDetails},
			{Name: "password", Fields: []string{"password", "confirmPassword"}, Validate: validatePassword},
		},
		Defaults: map[string]string{"userType": string(models.UserTypeCustomer)},
		Complete: func(ctx context.Context, f map[string]string) (Completion, error) {
			sess, err := reg.Register(ctx, strings.TrimSpace(f["email"]), f["password"], strings.TrimSpace(f["name"]), models.UserType(f["userType"]))
			if err != nil {
				return Completion{}, err
			}
			return Completion{Redirect: guard.Dashboard(sess.UserType), Payload: sess}, nil
		},
	}
}

func validateDetails(f map[string]string) []models.FieldError {
	var errs []models.FieldError
	for _, k := range []string{"name", "email"} {
		if !present(f, k) {
			errs = append(errs, models.FieldError{Field: k, Message: "Please fill in all fields"})
		}
	}
	if present(f, "email") && !emailPattern.MatchString(f["email"]) {
		errs = append(errs, models.FieldError{Field: "email", Message: "Please enter a valid email address"})
	}
	if !models.UserType(f["userType"]).Valid() {
		errs = append(errs, models.FieldError{Field: "userType", Message: "Please choose customer or provider"})
	}
	return errs
}

func validatePassword(f map[string]string) []models.FieldError {
	var errs []models.FieldError
	for _, k := range []string{"password", "confirmPassword"} {
		if f[k] == "" {
			errs = append(errs, models.FieldError{Field: k, Message: "Please fill in all password fields"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	if f["password"] != f["confirmPassword"] {
		return []models.FieldError{{Field: "confirmPassword", Message: "Passwords don't match"}}
	}
	if len(f["password"]) < 6 {
		return []models.FieldError{{Field: "password", Message: "Password should be at least 6 characters"}}
	}
	return nil
}
