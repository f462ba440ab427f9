package domain

// Role values as the recruitment API reports them.
const (
	RoleStudent = "STUDENT"
	RoleCompany = "COMPANY"
	RoleAdmin   = "ADMIN"
)

// User models a resolved identity: the record behind a credential.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	CompanyName string `json:"companyName,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Status      string `json:"status,omitempty"`
}

// DashboardPath returns the role-scoped entry path a session is routed to
// after authentication. Unknown roles fall back to the student dashboard,
// matching the server's default role.
func DashboardPath(role string) string {
	switch role {
	case RoleCompany:
		return "/company"
	case RoleAdmin:
		return "/admin"
	default:
		return "/student"
	}
}

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleCompany || role == RoleAdmin
}
