package policy

import (
	jwtutil "authd/app/jwt"
	"authd/app/models"
)

// Policy decides whether already-verified claims may perform an operation.
type Policy func(c *jwtutil.Claims) bool

func RequireRole(role string) Policy {
	return func(c *jwtutil.Claims) bool { return c != nil && c.Role == role }
}

func Admin() Policy { return RequireRole(models.RoleAdmin) }

// Any allows when at least one policy allows.
func Any(ps ...Policy) Policy {
	return func(c *jwtutil.Claims) bool {
		for _, p := range ps {
			if p(c) {
				return true
			}
		}
		return false
	}
}

// All allows only when every policy allows.
func All(ps ...Policy) Policy {
	return func(c *jwtutil.Claims) bool {
		for _, p := range ps {
			if !p(c) {
				return false
			}
		}
		return true
	}
}
