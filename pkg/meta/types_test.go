package meta

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleModule() *Module {
	return &Module{
		Name: "ClassLibrary1",
		Types: []TypeDescriptor{
			{Name: "Animal", Namespace: "AnimalLibrary", IsPublic: true, IsAbstract: true, BaseTypeName: "Object"},
			{Name: "Parrot", Namespace: "AnimalLibrary.Birds", IsPublic: true, BaseTypeName: "Animal"},
			{Name: "Cat", Namespace: "AnimalLibrary", IsPublic: true, BaseTypeName: "Animal"},
			{Name: "Helper", Namespace: "AnimalLibraryExtras", BaseTypeName: "Object"},
		},
	}
}

func TestModule_ListTypes_ExactNamespace(t *testing.T) {
	types := sampleModule().ListTypes("AnimalLibrary")
	require.Len(t, types, 2)

	// Loader order is preserved
	assert.Equal(t, "Animal", types[0].Name)
	assert.Equal(t, "Cat", types[1].Name)
}

func TestModule_ListTypes_NoMatch(t *testing.T) {
	assert.Empty(t, sampleModule().ListTypes("Animal"))
	assert.Empty(t, sampleModule().ListTypes(""))
}

func TestModule_Namespaces(t *testing.T) {
	assert.Equal(t,
		[]string{"AnimalLibrary", "AnimalLibrary.Birds", "AnimalLibraryExtras"},
		sampleModule().Namespaces())
}

func TestTypeDescriptor_Lookup(t *testing.T) {
	typ := TypeDescriptor{
		Name: "Animal",
		Members: []MemberDescriptor{
			{Name: "Name", Kind: MemberKindField, ValueTypeName: "String"},
			{Name: "Age", Kind: MemberKindProperty, ValueTypeName: "Int32"},
			{Name: "Weight", Kind: MemberKindField},
			{Name: "get_Age", Kind: MemberKindMethod},
		},
	}

	name, ok := typ.LookupField("Name")
	assert.True(t, ok)
	assert.Equal(t, "String", name)

	age, ok := typ.LookupProperty("Age")
	assert.True(t, ok)
	assert.Equal(t, "Int32", age)

	// Wrong kind
	_, ok = typ.LookupField("Age")
	assert.False(t, ok)

	// Declared without a value type
	_, ok = typ.LookupField("Weight")
	assert.False(t, ok)

	_, ok = typ.LookupProperty("Missing")
	assert.False(t, ok)
}

func TestTypeDescriptor_Modifiers(t *testing.T) {
	assert.Equal(t, []string{"public", "abstract"}, (&TypeDescriptor{IsPublic: true, IsAbstract: true}).Modifiers())
	assert.Equal(t, []string{"public"}, (&TypeDescriptor{IsPublic: true}).Modifiers())
	assert.Equal(t, []string{"abstract"}, (&TypeDescriptor{IsAbstract: true}).Modifiers())
	assert.Empty(t, (&TypeDescriptor{}).Modifiers())
}

func TestTypeDescriptor_ResolveBaseType(t *testing.T) {
	base, ok := (&TypeDescriptor{BaseTypeName: "Object"}).ResolveBaseType()
	assert.True(t, ok)
	assert.Equal(t, "Object", base)

	base, ok = (&TypeDescriptor{}).ResolveBaseType()
	assert.False(t, ok)
	assert.Equal(t, NoBaseType, base)
}

func TestMemberKind_String(t *testing.T) {
	assert.Equal(t, "Field", MemberKindField.String())
	assert.Equal(t, "Property", MemberKindProperty.String())
	assert.Equal(t, "Method", MemberKindMethod.String())
	assert.Equal(t, "Constructor", MemberKindConstructor.String())
	assert.Equal(t, "Event", MemberKindEvent.String())
	assert.Equal(t, "NestedType", MemberKindNestedType.String())
	assert.Equal(t, "Unknown", MemberKindUnknown.String())
}

func TestParseMemberKind(t *testing.T) {
	k, err := ParseMemberKind("Property")
	require.NoError(t, err)
	assert.Equal(t, MemberKindProperty, k)

	_, err = ParseMemberKind("property")
	assert.Error(t, err)

	_, err = ParseMemberKind("Unknown")
	assert.Error(t, err)
}

func TestMemberKind_HasValueType(t *testing.T) {
	assert.True(t, MemberKindField.HasValueType())
	assert.True(t, MemberKindProperty.HasValueType())
	assert.False(t, MemberKindMethod.HasValueType())
	assert.False(t, MemberKindEvent.HasValueType())
}

func TestRegistry_Load(t *testing.T) {
	reg := NewRegistry(sampleModule())

	m, err := reg.Load(context.Background(), "AnimalLibrary.Birds")
	require.NoError(t, err)
	assert.Equal(t, "ClassLibrary1", m.Name)

	_, err = reg.Load(context.Background(), "Plants")
	require.ErrorIs(t, err, ErrModuleNotFound)

	var nsErr *NamespaceError
	require.True(t, errors.As(err, &nsErr))
	assert.Equal(t, "Plants", nsErr.Namespace)
	assert.Equal(t, []string{"AnimalLibrary", "AnimalLibrary.Birds", "AnimalLibraryExtras"}, nsErr.Known)
	assert.EqualError(t, err, `namespace "Plants" not found in registry`)

	reg.Add(&Module{Name: "Flora", Types: []TypeDescriptor{{Name: "Fern", Namespace: "Plants"}}})
	m, err = reg.Load(context.Background(), "Plants")
	require.NoError(t, err)
	assert.Equal(t, "Flora", m.Name)
}
