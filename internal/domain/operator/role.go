package operator

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role is carried in access tokens. Viewers read prices and rules, merchants
// manage rules and apply them, admins may also override prices by hand.
type Role string

const (
	RoleViewer   Role = "viewer"
	RoleMerchant Role = "merchant"
	RoleAdmin    Role = "admin"
)

var roleLevels = map[Role]int{
	RoleViewer:   1,
	RoleMerchant: 2,
	RoleAdmin:    3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleLevels[r]
	return ok
}

// AtLeast is false for unknown roles on either side.
func (r Role) AtLeast(min Role) bool {
	have, ok := roleLevels[r]
	want, minOK := roleLevels[min]
	return ok && minOK && have >= want
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
