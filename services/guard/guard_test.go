package guard

import (
	"testing"

	"handyhub/models"

	"github.com/stretchr/testify/assert"
)

func TestDecideUnauthenticatedAlwaysGoesToAuth(t *testing.T) {
	for _, required := range []models.UserType{"", models.UserTypeCustomer, models.UserTypeProvider} {
		d := Decide(false, "", required)
		assert.Equal(t, Decision{Outcome: RedirectAuth, Target: "/auth"}, d)
	}
}

func TestDecideWrongRoleGoesToOwnDashboard(t *testing.T) {
	d := Decide(true, models.UserTypeCustomer, models.UserTypeProvider)
	assert.Equal(t, Decision{Outcome: RedirectDashboard, Target: "/user"}, d)

	d = Decide(true, models.UserTypeProvider, models.UserTypeCustomer)
	assert.Equal(t, Decision{Outcome: RedirectDashboard, Target: "/provider"}, d)
}

func TestDecideRenders(t *testing.T) {
	assert.Equal(t, Render, Decide(true, models.UserTypeCustomer, models.UserTypeCustomer).Outcome)
	assert.Equal(t, Render, Decide(true, models.UserTypeProvider, models.UserTypeProvider).Outcome)
	assert.Equal(t, Render, Decide(true, models.UserTypeProvider, "").Outcome)
	assert.Equal(t, Render, Decide(true, models.UserTypeCustomer, "").Outcome)
}

func TestHome(t *testing.T) {
	assert.Equal(t, Render, Home(false, "").Outcome)
	assert.Equal(t, "/provider", Home(true, models.UserTypeProvider).Target)
	assert.Equal(t, "/user", Home(true, models.UserTypeCustomer).Target)
}

func TestResolve(t *testing.T) {
	cases := map[string]struct {
		route  string
		params map[string]string
	}{
		"/":                     {route: PathHome},
		"":                      {route: PathHome},
		"/auth":                 {route: PathAuth},
		"/user/":                {route: PathUserDashboard},
		"/service/12":           {route: PathServiceDetail, params: map[string]string{"id": "12"}},
		"/booking/3":            {route: PathBooking, params: map[string]string{"id": "3"}},
		"/provider-profile/1":   {route: PathProviderProfile, params: map[string]string{"id": "1"}},
		"/category/plumbing":    {route: PathCategory, params: map[string]string{"id": "plumbing"}},
		"/service":              {route: PathNotFound},
		"/service/1/extra":      {route: PathNotFound},
		"/definitely/not/there": {route: PathNotFound},
	}
	for path, want := range cases {
		m := Resolve(path)
		assert.Equal(t, want.route, m.Name, path)
		assert.Equal(t, want.params, m.Params, path)
	}
}

func TestCheckRoleSpecificPages(t *testing.T) {
	_, d := Check("/provider", false, "")
	assert.Equal(t, RedirectAuth, d.Outcome)

	_, d = Check("/provider", true, models.UserTypeCustomer)
	assert.Equal(t, "/user", d.Target)

	_, d = Check("/user", true, models.UserTypeProvider)
	assert.Equal(t, "/provider", d.Target)

	_, d = Check("/booking/1", true, models.UserTypeProvider)
	assert.Equal(t, Render, d.Outcome)

	_, d = Check("/emergency", false, "")
	assert.Equal(t, "/auth", d.Target)

	_, d = Check("/category/plumbing", false, "")
	assert.Equal(t, Render, d.Outcome)

	_, d = Check("/", true, models.UserTypeCustomer)
	assert.Equal(t, "/user", d.Target)

	m, d := Check("/nowhere", false, "")
	assert.Equal(t, PathNotFound, m.Name)
	assert.Equal(t, Render, d.Outcome)
}
