package analyze

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortName(t *testing.T) {
	pkg := types.NewPackage("example.com/zoo", "zoo")
	tn := types.NewTypeName(0, pkg, "Pet", nil)
	pet := types.NewNamed(tn, types.NewStruct(nil, nil), nil)

	assert.Equal(t, "string", ShortName(types.Typ[types.String]))
	assert.Equal(t, "Pet", ShortName(pet))
	assert.Equal(t, "*Pet", ShortName(types.NewPointer(pet)))
	assert.Equal(t, "[]*Pet", ShortName(types.NewSlice(types.NewPointer(pet))))
	assert.Equal(t, "map[string]Pet", ShortName(types.NewMap(types.Typ[types.String], pet)))
	assert.Equal(t, "", ShortName(nil))
}

func TestBaseTypeName(t *testing.T) {
	pkg := types.NewPackage("example.com/zoo", "zoo")

	plain := types.NewNamed(types.NewTypeName(0, pkg, "Plain", nil), types.NewStruct(nil, nil), nil)
	assert.Equal(t, "struct", BaseTypeName(plain))

	embedded := types.NewField(0, pkg, "Plain", types.NewPointer(plain), true)
	derived := types.NewNamed(
		types.NewTypeName(0, pkg, "Derived", nil),
		types.NewStruct([]*types.Var{embedded}, nil),
		nil)
	assert.Equal(t, "Plain", BaseTypeName(derived))

	iface := types.NewInterfaceType(nil, nil)
	iface.Complete()
	abstract := types.NewNamed(types.NewTypeName(0, pkg, "Abstract", nil), iface, nil)
	assert.Equal(t, "interface", BaseTypeName(abstract))

	celsius := types.NewNamed(types.NewTypeName(0, pkg, "Celsius", nil), types.Typ[types.Float64], nil)
	assert.Equal(t, "float64", BaseTypeName(celsius))
}
