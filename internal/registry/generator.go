package registry

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"

	"metaexport/internal/common"
	"metaexport/pkg/meta"
)

// MetaPkgPath is the import path of the descriptor package used by generated code.
const MetaPkgPath = "metaexport/pkg/meta"

// Config holds generation options.
type Config struct {
	// PackageName is the package clause of the generated file.
	PackageName string
	// VarName is the name of the generated *meta.Module variable.
	VarName string
}

// DefaultConfig derives a package name from the last namespace element,
// e.g. "metaexport/animallibrary" -> "animallibrarymeta".
func DefaultConfig(namespace string) Config {
	return Config{
		PackageName: PackageNameFor(namespace),
		VarName:     "Module",
	}
}

// PackageNameFor returns a valid package name for namespace.
func PackageNameFor(namespace string) string {
	alias := common.PkgAlias(strings.ReplaceAll(namespace, ".", "/"))

	var b strings.Builder
	for _, r := range strings.ToLower(alias) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	name := b.String()
	if name == "" || unicode.IsDigit(rune(name[0])) {
		name = "m" + name
	}

	return name + "meta"
}

// GeneratedFile represents a generated output file.
type GeneratedFile struct {
	Filename string
	Content  []byte
}

// Generator renders registry source files.
type Generator struct {
	config Config
}

// NewGenerator creates a Generator.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// Generate renders the types of m that belong to namespace.
func (g *Generator) Generate(m *meta.Module, namespace string) (GeneratedFile, error) {
	types := m.ListTypes(namespace)
	if common.IsEmpty(types) {
		return GeneratedFile{}, fmt.Errorf("no types in namespace %s: %w", namespace, meta.ErrModuleNotFound)
	}

	f := jen.NewFile(g.config.PackageName)
	f.HeaderComment("Code generated by metaexport. DO NOT EDIT.")

	f.Commentf("%s describes the types of %s.", g.config.VarName, namespace)
	f.Var().Id(g.config.VarName).Op("=").Op("&").Qual(MetaPkgPath, "Module").Values(jen.Dict{
		jen.Id("Name"): jen.Lit(m.Name),
		jen.Id("Types"): jen.Index().Qual(MetaPkgPath, "TypeDescriptor").ValuesFunc(func(group *jen.Group) {
			for _, t := range types {
				group.Values(typeDict(t))
			}
		}),
	})

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return GeneratedFile{}, fmt.Errorf("rendering registry for %s: %w", namespace, err)
	}

	return GeneratedFile{
		Filename: g.config.PackageName + "_meta.go",
		Content:  buf.Bytes(),
	}, nil
}

func typeDict(t meta.TypeDescriptor) jen.Dict {
	d := jen.Dict{
		jen.Id("Name"):         jen.Lit(t.Name),
		jen.Id("Namespace"):    jen.Lit(t.Namespace),
		jen.Id("BaseTypeName"): jen.Lit(t.BaseTypeName),
	}
	if t.IsAbstract {
		d[jen.Id("IsAbstract")] = jen.True()
	}
	if t.IsPublic {
		d[jen.Id("IsPublic")] = jen.True()
	}
	if !common.IsEmpty(t.Members) {
		d[jen.Id("Members")] = jen.Index().Qual(MetaPkgPath, "MemberDescriptor").ValuesFunc(func(group *jen.Group) {
			for _, m := range t.Members {
				group.Values(memberDict(m))
			}
		})
	}

	return d
}

func memberDict(m meta.MemberDescriptor) jen.Dict {
	d := jen.Dict{
		jen.Id("Name"): jen.Lit(m.Name),
		jen.Id("Kind"): jen.Qual(MetaPkgPath, "MemberKind"+m.Kind.String()),
	}
	if m.ValueTypeName != "" {
		d[jen.Id("ValueTypeName")] = jen.Lit(m.ValueTypeName)
	}
	if m.IsStatic {
		d[jen.Id("IsStatic")] = jen.True()
	}

	return d
}
