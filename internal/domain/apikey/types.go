package apikey

import "strings"

// Permission is a typed capability rather than a raw string, so scope checks
// are set-containment over flags.
type Permission uint8

const (
	PermissionRead Permission = 1 << iota
	PermissionWrite
)

func (p Permission) String() string {
	switch p {
	case PermissionRead:
		return "read"
	case PermissionWrite:
		return "write"
	default:
		return "unknown"
	}
}

type PermissionSet uint8

func NewPermissionSet(perms ...Permission) PermissionSet {
	var s PermissionSet
	for _, p := range perms {
		s |= PermissionSet(p)
	}
	return s
}

// ParsePermissions converts the stored string form ("read", "write") into a
// typed set. Unknown names are ignored rather than rejected: keys are created
// by an administrative process outside this service, and a key that carries an
// unrecognized permission simply does not gain it here.
func ParsePermissions(names []string) PermissionSet {
	var s PermissionSet
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "read":
			s |= PermissionSet(PermissionRead)
		case "write":
			s |= PermissionSet(PermissionWrite)
		}
	}
	return s
}

func (s PermissionSet) Contains(p Permission) bool {
	return s&PermissionSet(p) != 0
}

func (s PermissionSet) Strings() []string {
	var names []string
	if s.Contains(PermissionRead) {
		names = append(names, "read")
	}
	if s.Contains(PermissionWrite) {
		names = append(names, "write")
	}
	return names
}
