package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metaexport/internal/diagnostic"
	"metaexport/pkg/meta"
)

func animalType() meta.TypeDescriptor {
	return meta.TypeDescriptor{
		Name:         "Animal",
		Namespace:    "AnimalLibrary",
		IsAbstract:   true,
		IsPublic:     true,
		BaseTypeName: "Object",
		Members: []meta.MemberDescriptor{
			{Name: "Name", Kind: meta.MemberKindField, ValueTypeName: "String"},
			{Name: "Age", Kind: meta.MemberKindProperty, ValueTypeName: "Int32"},
			{Name: "get_Age", Kind: meta.MemberKindMethod},
			{Name: "set_Age", Kind: meta.MemberKindMethod},
		},
	}
}

func TestWrite_AnimalScenario(t *testing.T) {
	var out, console bytes.Buffer

	diags, err := Write(&out, &console, "ClassLibrary1", []meta.TypeDescriptor{animalType()})
	require.NoError(t, err)
	assert.Empty(t, diags.All())

	expected := `<?xml version="1.0" encoding="UTF-8"?>
<Library>
	<name>ClassLibrary1</name>
	<type>
		<name>Animal</name>
		<modifiers>public abstract</modifiers>
		<basetype>Object</basetype>
		<member>
			<name>Name</name>
			<membertype>Field</membertype>
			<fieldtype>String</fieldtype>
		</member>
		<member>
			<name>Age</name>
			<membertype>Property</membertype>
			<propertytype>Int32</propertytype>
		</member>
		<member>
			<name>get_Age</name>
			<membertype>Method</membertype>
		</member>
		<member>
			<name>set_Age</name>
			<membertype>Method</membertype>
		</member>
	</type>
</Library>
`
	assert.Equal(t, expected, out.String())

	expectedConsole := `typename=Animal:
abstract=true;
public=true;
basetype=Object;
	name=Name
	membertype=Field
		type=String
	name=Age
	membertype=Property
		type=Int32
	name=get_Age
	membertype=Method
	name=set_Age
	membertype=Method

`
	assert.Equal(t, expectedConsole, console.String())
}

func TestWrite_EmptyLibrary(t *testing.T) {
	var out bytes.Buffer

	_, err := Write(&out, &bytes.Buffer{}, "Empty", nil)
	require.NoError(t, err)

	expected := Header + "<Library>\n\t<name>Empty</name>\n</Library>\n"
	assert.Equal(t, expected, out.String())
}

func TestWrite_ReadBack(t *testing.T) {
	var out bytes.Buffer
	types := []meta.TypeDescriptor{
		animalType(),
		{Name: "Cat", IsPublic: true, BaseTypeName: "Animal"},
		{Name: "Shelter", BaseTypeName: "Object"},
	}

	_, err := Write(&out, &bytes.Buffer{}, "ClassLibrary1", types)
	require.NoError(t, err)

	doc, err := ReadDocument(&out)
	require.NoError(t, err)
	assert.Equal(t, "ClassLibrary1", doc.Name)
	require.Len(t, doc.Types, 3)
	assert.Equal(t, "public abstract", doc.Types[0].Modifiers)
	assert.Equal(t, "public", doc.Types[1].Modifiers)
	assert.Empty(t, doc.Types[2].Modifiers)
	assert.Len(t, doc.Types[0].Members, 4)
	assert.Empty(t, doc.Types[1].Members)
}

func TestWrite_EscapesNames(t *testing.T) {
	var out bytes.Buffer
	types := []meta.TypeDescriptor{{
		Name:         "Pipe",
		BaseTypeName: "func() <-chan int",
		Members: []meta.MemberDescriptor{
			{Name: "Out", Kind: meta.MemberKindField, ValueTypeName: "<-chan int"},
		},
	}}

	_, err := Write(&out, &bytes.Buffer{}, "A&B", types)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "<name>A&amp;B</name>")
	assert.Contains(t, out.String(), "<basetype>func() &lt;-chan int</basetype>")

	doc, err := ReadDocument(strings.NewReader(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "<-chan int", doc.Types[0].Members[0].FieldType)
}

func TestDescribeType_Modifiers(t *testing.T) {
	tests := []struct {
		name     string
		typ      meta.TypeDescriptor
		expected string
	}{
		{"public only", meta.TypeDescriptor{Name: "Cat", IsPublic: true, BaseTypeName: "Animal"}, "public"},
		{"abstract only", meta.TypeDescriptor{Name: "Base", IsAbstract: true, BaseTypeName: "Object"}, "abstract"},
		{"both", meta.TypeDescriptor{Name: "Animal", IsPublic: true, IsAbstract: true, BaseTypeName: "Object"}, "public abstract"},
		{"neither", meta.TypeDescriptor{Name: "helper", BaseTypeName: "Object"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, elem, _ := DescribeType(tt.typ)
			assert.Equal(t, tt.expected, elem.Modifiers)
		})
	}
}

func TestDescribeType_NoModifiersElement(t *testing.T) {
	var out bytes.Buffer
	_, err := Write(&out, &bytes.Buffer{}, "L", []meta.TypeDescriptor{{Name: "helper", BaseTypeName: "Object"}})
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "<modifiers>")
}

func TestDescribeType_MissingBaseType(t *testing.T) {
	lines, elem, diags := DescribeType(meta.TypeDescriptor{Name: "Orphan"})

	assert.Equal(t, meta.NoBaseType, elem.BaseType)
	assert.Contains(t, lines, "basetype=none;")
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeMissingBaseType, diags.Warnings[0].Code)
	assert.Equal(t, "Orphan", diags.Warnings[0].TypeName)
}

func TestDescribeMember_FieldAndProperty(t *testing.T) {
	owner := animalType()

	lines, elem, diags := DescribeMember(&owner, owner.Members[0])
	assert.Equal(t, []string{"\tname=Name", "\tmembertype=Field", "\t\ttype=String"}, lines)
	assert.Equal(t, "String", elem.FieldType)
	assert.Empty(t, elem.PropertyType)
	assert.Empty(t, diags.All())

	lines, elem, _ = DescribeMember(&owner, owner.Members[1])
	assert.Equal(t, []string{"\tname=Age", "\tmembertype=Property", "\t\ttype=Int32"}, lines)
	assert.Equal(t, "Int32", elem.PropertyType)
	assert.Empty(t, elem.FieldType)
}

func TestDescribeMember_ResolutionMiss(t *testing.T) {
	owner := meta.TypeDescriptor{
		Name: "Shelter",
		Members: []meta.MemberDescriptor{
			{Name: "Capacity", Kind: meta.MemberKindProperty},
		},
	}

	lines, elem, diags := DescribeMember(&owner, owner.Members[0])
	assert.Equal(t, []string{"\tname=Capacity", "\tmembertype=Property"}, lines)
	assert.Empty(t, elem.PropertyType)
	require.Len(t, diags.Infos, 1)
	assert.Equal(t, diagnostic.CodeMemberResolutionMiss, diags.Infos[0].Code)
	assert.Equal(t, "Capacity", diags.Infos[0].MemberName)

	// A member the owner does not know is a miss too.
	_, elem, diags = DescribeMember(&owner, meta.MemberDescriptor{Name: "Ghost", Kind: meta.MemberKindField, ValueTypeName: "Int32"})
	assert.Empty(t, elem.FieldType)
	assert.Len(t, diags.Infos, 1)
}

func TestDescribeMember_OtherKinds(t *testing.T) {
	owner := animalType()

	for _, kind := range []meta.MemberKind{meta.MemberKindMethod, meta.MemberKindConstructor, meta.MemberKindEvent} {
		lines, elem, diags := DescribeMember(&owner, meta.MemberDescriptor{Name: "X", Kind: kind})
		assert.Len(t, lines, 2)
		assert.Empty(t, elem.FieldType)
		assert.Empty(t, elem.PropertyType)
		assert.Empty(t, diags.All())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWrite_PropagatesWriteErrors(t *testing.T) {
	_, err := Write(failingWriter{}, &bytes.Buffer{}, "L", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	var out bytes.Buffer
	_, err = Write(&out, failingWriter{}, "L", []meta.TypeDescriptor{animalType()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "console transcript")
}
