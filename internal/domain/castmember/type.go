package castmember

import "strings"

// Type is the role a cast member plays.
type Type string

const (
	TypeActor    Type = "ACTOR"
	TypeDirector Type = "DIRECTOR"
)

// TypeOf maps a raw value to a Type. Matching ignores case.
func TypeOf(raw string) (Type, bool) {
	switch Type(strings.ToUpper(strings.TrimSpace(raw))) {
	case TypeActor:
		return TypeActor, true
	case TypeDirector:
		return TypeDirector, true
	default:
		return "", false
	}
}

func (t Type) String() string {
	return string(t)
}
