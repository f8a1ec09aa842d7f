// Package guard decides whether a navigation target is rendered or redirected.
package guard

import (
	"strings"

	"handyhub/models"
)

const (
	PathHome            = "/"
	PathAuth            = "/auth"
	PathUserDashboard   = "/user"
	PathProviderDash    = "/provider"
	PathProfile         = "/profile"
	PathServiceDetail   = "/service/:id"
	PathBooking         = "/booking/:id"
	PathEmergency       = "/emergency"
	PathProviderProfile = "/provider-profile/:id"
	PathCategory        = "/category/:id"
	PathNotFound        = "*"
)

// Outcome of a guard decision.
type Outcome string

const (
	Render            Outcome = "render"
	RedirectAuth      Outcome = "redirect_auth"
	RedirectDashboard Outcome = "redirect_dashboard"
)

// Decision is the guard's verdict; Target is set for redirects.
type Decision struct {
	Outcome Outcome `json:"outcome"`
	Target  string  `json:"target,omitempty"`
}

// Dashboard is the landing page of a role.
func Dashboard(t models.UserType) string {
	if t == models.UserTypeProvider {
		return PathProviderDash
	}
	return PathUserDashboard
}

// Decide applies the access rule for a page. An empty required type means
// any authenticated session may render it.
func Decide(isAuthenticated bool, userType, required models.UserType) Decision {
	if !isAuthenticated {
		return Decision{Outcome: RedirectAuth, Target: PathAuth}
	}
	if required != "" && userType != required {
		return Decision{Outcome: RedirectDashboard, Target: Dashboard(userType)}
	}
	return Decision{Outcome: Render}
}

// Home sends an authenticated visitor to their dashboard.
func Home(isAuthenticated bool, userType models.UserType) Decision {
	if isAuthenticated {
		return Decision{Outcome: RedirectDashboard, Target: Dashboard(userType)}
	}
	return Decision{Outcome: Render}
}

// Access says who may see a route.
type Access int

const (
	Public Access = iota
	Authenticated
	CustomerOnly
	ProviderOnly
)

// Route is one entry of the navigation surface.
type Route struct {
	Pattern string
	Access  Access
}

// Routes is the full navigation surface, catch-all last.
var Routes = []Route{
	{Pattern: PathHome, Access: Public},
	{Pattern: PathAuth, Access: Public},
	{Pattern: PathUserDashboard, Access: CustomerOnly},
	{Pattern: PathProviderDash, Access: ProviderOnly},
	{Pattern: PathProfile, Access: Authenticated},
	{Pattern: PathServiceDetail, Access: Public},
	{Pattern: PathBooking, Access: Authenticated},
	{Pattern: PathEmergency, Access: Authenticated},
	{Pattern: PathProviderProfile, Access: Public},
	{Pattern: PathCategory, Access: Public},
	{Pattern: PathNotFound, Access: Public},
}

// Match is a resolved path.
type Match struct {
	Route  Route             `json:"-"`
	Name   string            `json:"route"`
	Params map[string]string `json:"params,omitempty"`
}

// Resolve finds the route for a concrete path; unknown paths resolve to the catch-all.
func Resolve(path string) Match {
	segs := split(path)
	for _, r := range Routes {
		if r.Pattern == PathNotFound {
			continue
		}
		if params, ok := match(split(r.Pattern), segs); ok {
			return Match{Route: r, Name: r.Pattern, Params: params}
		}
	}
	last := Routes[len(Routes)-1]
	return Match{Route: last, Name: last.Pattern}
}

// Check resolves path and applies the route's access rule.
func Check(path string, isAuthenticated bool, userType models.UserType) (Match, Decision) {
	m := Resolve(path)
	switch m.Route.Access {
	case Authenticated:
		return m, Decide(isAuthenticated, userType, "")
	case CustomerOnly:
		return m, Decide(isAuthenticated, userType, models.UserTypeCustomer)
	case ProviderOnly:
		return m, Decide(isAuthenticated, userType, models.UserTypeProvider)
	}
	if m.Route.Pattern == PathHome {
		return m, Home(isAuthenticated, userType)
	}
	return m, Decision{Outcome: Render}
}

func split(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func match(pattern, segs []string) (map[string]string, bool) {
	if len(pattern) != len(segs) {
		return nil, false
	}
	var params map[string]string
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			if segs[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string)
			}
			params[p[1:]] = segs[i]
			continue
		}
		if p != segs[i] {
			return nil, false
		}
	}
	return params, true
}
