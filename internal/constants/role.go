package constants

type Role string

const (
	RoleUser    Role = "user"
	RoleSupport Role = "support"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleSupport
}
