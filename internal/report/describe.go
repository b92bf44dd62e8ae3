package report

import (
	"strconv"
	"strings"

	"metaexport/internal/diagnostic"
	"metaexport/pkg/meta"
)

// DescribeType renders one type: the console lines (including the trailing
// blank separator) and the <type> element with all of its members.
func DescribeType(t meta.TypeDescriptor) ([]string, TypeElement, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	base, ok := t.ResolveBaseType()
	if !ok {
		diags.AddWarning(diagnostic.CodeMissingBaseType,
			"type has no base type, reporting "+strconv.Quote(meta.NoBaseType), t.Name, "")
	}

	lines := []string{
		"typename=" + t.Name + ":",
		"abstract=" + strconv.FormatBool(t.IsAbstract) + ";",
		"public=" + strconv.FormatBool(t.IsPublic) + ";",
		"basetype=" + base + ";",
	}

	elem := TypeElement{
		Name:      t.Name,
		Modifiers: strings.Join(t.Modifiers(), " "),
		BaseType:  base,
	}

	for _, m := range t.Members {
		memberLines, memberElem, memberDiags := DescribeMember(&t, m)
		lines = append(lines, memberLines...)
		elem.Members = append(elem.Members, memberElem)
		diags.Merge(memberDiags)
	}

	lines = append(lines, "")

	return lines, elem, diags
}

// DescribeMember renders one member of owner. Field and property value types
// are resolved by name on owner; a miss omits the detail and is reported as
// an info diagnostic.
func DescribeMember(owner *meta.TypeDescriptor, m meta.MemberDescriptor) ([]string, MemberElement, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	lines := []string{
		"\tname=" + m.Name,
		"\tmembertype=" + m.Kind.String(),
	}
	elem := MemberElement{
		Name:       m.Name,
		MemberType: m.Kind.String(),
	}

	var (
		valueType string
		resolved  bool
	)
	switch m.Kind {
	case meta.MemberKindField:
		valueType, resolved = owner.LookupField(m.Name)
		elem.FieldType = valueType
	case meta.MemberKindProperty:
		valueType, resolved = owner.LookupProperty(m.Name)
		elem.PropertyType = valueType
	default:
		return lines, elem, diags
	}

	if !resolved {
		diags.AddInfo(diagnostic.CodeMemberResolutionMiss,
			strings.ToLower(m.Kind.String())+" type could not be resolved", owner.Name, m.Name)
		return lines, elem, diags
	}

	lines = append(lines, "\t\ttype="+valueType)

	return lines, elem, diags
}
