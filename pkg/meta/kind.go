package meta

import "fmt"

// MemberKind is the category of a type member.
type MemberKind int

const (
	MemberKindUnknown MemberKind = iota
	MemberKindConstructor
	MemberKindEvent
	MemberKindField
	MemberKindMethod
	MemberKindProperty
	MemberKindTypeInfo
	MemberKindCustom
	MemberKindNestedType
)

var memberKindNames = map[MemberKind]string{
	MemberKindConstructor: "Constructor",
	MemberKindEvent:       "Event",
	MemberKindField:       "Field",
	MemberKindMethod:      "Method",
	MemberKindProperty:    "Property",
	MemberKindTypeInfo:    "TypeInfo",
	MemberKindCustom:      "Custom",
	MemberKindNestedType:  "NestedType",
}

// String returns the name used in reports, e.g. "Field".
func (k MemberKind) String() string {
	if name, ok := memberKindNames[k]; ok {
		return name
	}

	return "Unknown"
}

// ParseMemberKind is the inverse of String. Matching is exact.
func ParseMemberKind(s string) (MemberKind, error) {
	for k, name := range memberKindNames {
		if name == s {
			return k, nil
		}
	}

	return MemberKindUnknown, fmt.Errorf("unknown member kind %q", s)
}

// HasValueType reports whether members of this kind carry a value type.
func (k MemberKind) HasValueType() bool {
	return k == MemberKindField || k == MemberKindProperty
}
