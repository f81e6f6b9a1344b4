package style

// Role identifies one of the three nested demo elements.
type Role int

const (
	Parent Role = iota
	Child
	Grandchild
)

var roleNames = [...]string{"parent", "child", "grandchild"}
var roleTitles = [...]string{"Parent", "Child", "Grandchild"}

// Roles returns the roles in nesting order, outermost first.
func Roles() []Role {
	return []Role{Parent, Child, Grandchild}
}

// String returns the lower-case role name used in logs and CLI flags.
func (r Role) String() string {
	if !r.valid() {
		return "unknown"
	}
	return roleNames[r]
}

// Title returns the label drawn in the preview box.
func (r Role) Title() string {
	if !r.valid() {
		return "Unknown"
	}
	return roleTitles[r]
}

func (r Role) valid() bool {
	return r >= Parent && r <= Grandchild
}

// ParseRole resolves a role name as produced by String.
func ParseRole(name string) (Role, bool) {
	for i, n := range roleNames {
		if n == name {
			return Role(i), true
		}
	}
	return 0, false
}
