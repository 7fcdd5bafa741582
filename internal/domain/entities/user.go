package entities

// RoleManager is the only privileged role. The lock guard treats the literal
// string "manager" as privileged; every other role string is unprivileged.
const RoleManager = "manager"

// User is the actor record consulted for role checks.
//
// Storage model (DynamoDB):
//   - PK: id
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

func (u User) IsManager() bool {
	return u.Role == RoleManager
}
