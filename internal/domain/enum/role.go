package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// Role is the coarse-grained permission level of a user.
// RoleUnassigned is the fail-closed zero value: it passes no gate.
type Role string

const (
	RoleUnassigned Role = ""
	RoleOwner      Role = "owner"
	RoleManager    Role = "manager"
	RoleStaff      Role = "staff"
)

// ParseRole maps a stored string onto the closed role set.
// Unknown values collapse to RoleUnassigned rather than passing through.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleOwner:
		return RoleOwner
	case RoleManager:
		return RoleManager
	case RoleStaff:
		return RoleStaff
	default:
		return RoleUnassigned
	}
}

// IsAssigned reports whether the role is one of the three real roles.
func (r Role) IsAssigned() bool {
	return r == RoleOwner || r == RoleManager || r == RoleStaff
}

// OneOf reports whether the role matches any of the required roles.
// An unassigned role never matches.
func (r Role) OneOf(required ...Role) bool {
	if !r.IsAssigned() {
		return false
	}
	for _, want := range required {
		if r == want {
			return true
		}
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(r))
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*r = ParseRole(str)
	return nil
}

func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

func (r *Role) Scan(value interface{}) error {
	if value == nil {
		*r = RoleUnassigned
		return nil
	}
	switch v := value.(type) {
	case string:
		*r = ParseRole(v)
	case []byte:
		*r = ParseRole(string(v))
	}
	return nil
}
