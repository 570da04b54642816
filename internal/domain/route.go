package domain

// Well-known navigation targets.
const (
	PathRoot             = "/"
	PathAdminLogin       = "/login"
	PathStudentLogin     = "/student/login"
	PathAdminDashboard   = "/dashboard"
	PathStudentDashboard = "/student/dashboard"
)

// AccessRequirement is the access annotation of a route.
type AccessRequirement struct {
	RequiresAuth bool `json:"requiresAuth"`
	UserType     Role `json:"userType,omitempty"`
}

// RouteDescriptor maps a path pattern to a view and its access requirement.
// A descriptor with RedirectTo set has no view and always redirects.
type RouteDescriptor struct {
	Path       string            `json:"path"`
	Name       string            `json:"name,omitempty"`
	View       string            `json:"view,omitempty"`
	Access     AccessRequirement `json:"meta"`
	RedirectTo string            `json:"redirect,omitempty"`
}

// IsRedirect reports whether the route is a static redirect entry.
func (d RouteDescriptor) IsRedirect() bool {
	return d.RedirectTo != ""
}
