package account

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Role is the portal an account belongs to.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleDriver   Role = "driver"
	RoleAdmin    Role = "admin"
)

func Roles() []Role {
	return []Role{RoleCustomer, RoleDriver, RoleAdmin}
}

func ParseRole(raw string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(raw)))
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleDriver, RoleAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%q is not a valid role, must be one of: customer, driver, admin", string(r)),
		)
	}
}

func (r Role) String() string {
	return string(r)
}
