package models

// RoleFlag encodes a member's permissions on a team or project as a bitmask.
// Flags combine rather than rank: a role satisfies a requirement only when
// it carries every required flag.
type RoleFlag int

const (
	RoleViewer RoleFlag = 1 << iota // 1
	RoleEditor                      // 2
	RoleAdmin                       // 4
	RoleOwner                       // 8
)

// HasPermission reports whether role carries every flag in required.
func HasPermission(role, required RoleFlag) bool {
	return role&required == required
}

var roleNames = []struct {
	flag RoleFlag
	name string
}{
	{RoleOwner, "Owner"},
	{RoleAdmin, "Admin"},
	{RoleEditor, "Editor"},
	{RoleViewer, "Viewer"},
}

// String returns the name of the highest flag set, for display purposes.
// The backend's role_name field is authoritative when present.
func (r RoleFlag) String() string {
	for _, rn := range roleNames {
		if r&rn.flag != 0 {
			return rn.name
		}
	}
	return "None"
}
