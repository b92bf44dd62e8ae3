package analyze

import (
	"context"
	"errors"
	"fmt"
	"go/types"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"metaexport/pkg/meta"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Loader loads Go packages and describes their types.
// It implements meta.Source.
type Loader struct {
	dir    string
	logger *zap.Logger
}

// NewLoader creates a Loader that runs the go tool in dir
// (the current directory when empty).
func NewLoader(dir string, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Loader{dir: dir, logger: logger}
}

// Load loads the package at the import path namespace together with the
// packages below it. Types of every loaded package are returned; narrowing
// to the exact namespace is left to meta.Module.ListTypes.
func (l *Loader) Load(ctx context.Context, namespace string) (*meta.Module, error) {
	if namespace == "" {
		return nil, fmt.Errorf("empty namespace: %w", meta.ErrModuleNotFound)
	}

	cfg := &packages.Config{
		Mode:    LoadMode,
		Context: ctx,
		Dir:     l.dir,
	}

	pkgs, err := packages.Load(cfg, namespace+"/...")
	if err != nil {
		return nil, fmt.Errorf("failed to load packages for %s: %w: %w", namespace, meta.ErrModuleNotFound, err)
	}

	var root *packages.Package
	loaded := make([]string, 0, len(pkgs))
	for _, pkg := range pkgs {
		if pkg.PkgPath == namespace {
			root = pkg
		}
		loaded = append(loaded, pkg.PkgPath)
	}
	if root == nil {
		return nil, &meta.NamespaceError{Namespace: namespace, Where: "go packages", Known: loaded}
	}
	if len(root.Errors) > 0 {
		errs := make([]error, 0, len(root.Errors))
		for _, e := range root.Errors {
			errs = append(errs, e)
		}
		return nil, fmt.Errorf("package %s: %w: %w", namespace, meta.ErrModuleNotFound, errors.Join(errs...))
	}

	module := &meta.Module{Name: root.Name}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			l.logger.Warn("skipping package with errors",
				zap.String("package", pkg.PkgPath),
				zap.Int("errors", len(pkg.Errors)))
			continue
		}

		described := l.describePackage(pkg.Types)
		l.logger.Debug("described package",
			zap.String("package", pkg.PkgPath),
			zap.Int("types", len(described)))
		module.Types = append(module.Types, described...)
	}

	return module, nil
}

// LoadTypes is a shortcut for Load followed by ListTypes.
func (l *Loader) LoadTypes(ctx context.Context, namespace string) ([]meta.TypeDescriptor, error) {
	module, err := l.Load(ctx, namespace)
	if err != nil {
		return nil, err
	}

	return module.ListTypes(namespace), nil
}

// packageMembers holds package-level members grouped by the type they belong to.
type packageMembers struct {
	statics map[*types.TypeName][]meta.MemberDescriptor
	ctors   map[*types.TypeName][]meta.MemberDescriptor
}

// describePackage describes every defined (non-alias) type in the package scope.
func (l *Loader) describePackage(pkg *types.Package) []meta.TypeDescriptor {
	scope := pkg.Scope()
	pm := collectPackageMembers(scope)

	var out []meta.TypeDescriptor
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}

		out = append(out, describeNamed(pkg.Path(), named, pm))
	}

	return out
}

// collectPackageMembers finds exported constants and variables of a named
// type (static fields) and exported functions returning T or *T (constructors).
func collectPackageMembers(scope *types.Scope) packageMembers {
	pm := packageMembers{
		statics: make(map[*types.TypeName][]meta.MemberDescriptor),
		ctors:   make(map[*types.TypeName][]meta.MemberDescriptor),
	}

	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if !obj.Exported() {
			continue
		}

		switch o := obj.(type) {
		case *types.Const, *types.Var:
			named, ok := o.Type().(*types.Named)
			if !ok || named.Obj().Pkg() != obj.Pkg() {
				continue
			}
			owner := named.Obj()
			pm.statics[owner] = append(pm.statics[owner], meta.MemberDescriptor{
				Name:          o.Name(),
				Kind:          meta.MemberKindField,
				ValueTypeName: ShortName(o.Type()),
				IsStatic:      true,
			})

		case *types.Func:
			sig, ok := o.Type().(*types.Signature)
			if !ok || sig.Recv() != nil || sig.Results().Len() == 0 {
				continue
			}
			owner := namedOf(sig.Results().At(0).Type())
			if owner == nil || owner.Pkg() != obj.Pkg() {
				continue
			}
			pm.ctors[owner] = append(pm.ctors[owner], meta.MemberDescriptor{
				Name:     o.Name(),
				Kind:     meta.MemberKindConstructor,
				IsStatic: true,
			})
		}
	}

	return pm
}

// describeNamed builds the descriptor for one named type.
// Members are ordered: instance fields, static fields, methods, constructors.
func describeNamed(pkgPath string, named *types.Named, pm packageMembers) meta.TypeDescriptor {
	obj := named.Obj()
	_, isInterface := named.Underlying().(*types.Interface)

	td := meta.TypeDescriptor{
		Name:         obj.Name(),
		Namespace:    pkgPath,
		IsAbstract:   isInterface,
		IsPublic:     obj.Exported(),
		BaseTypeName: BaseTypeName(named),
	}

	if st, ok := named.Underlying().(*types.Struct); ok {
		td.Members = append(td.Members, structFields(st)...)
	}

	td.Members = append(td.Members, pm.statics[obj]...)

	if iface, ok := named.Underlying().(*types.Interface); ok {
		td.Members = append(td.Members, interfaceMethods(iface)...)
	} else {
		td.Members = append(td.Members, declaredMethods(named)...)
	}

	td.Members = append(td.Members, pm.ctors[obj]...)

	return td
}

// structFields returns exported, non-embedded fields. Embedded fields are
// reported as the base type and their promoted members are not declared here.
func structFields(st *types.Struct) []meta.MemberDescriptor {
	var out []meta.MemberDescriptor
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if !field.Exported() || field.Embedded() {
			continue
		}

		out = append(out, meta.MemberDescriptor{
			Name:          field.Name(),
			Kind:          meta.MemberKindField,
			ValueTypeName: ShortName(field.Type()),
		})
	}

	return out
}

// declaredMethods returns exported methods declared with a T or *T receiver.
func declaredMethods(named *types.Named) []meta.MemberDescriptor {
	var out []meta.MemberDescriptor
	for i := 0; i < named.NumMethods(); i++ {
		method := named.Method(i)
		if !method.Exported() {
			continue
		}

		out = append(out, meta.MemberDescriptor{
			Name: method.Name(),
			Kind: meta.MemberKindMethod,
		})
	}

	return out
}

// interfaceMethods returns exported methods written in the interface itself,
// excluding those of embedded interfaces.
func interfaceMethods(iface *types.Interface) []meta.MemberDescriptor {
	var out []meta.MemberDescriptor
	for i := 0; i < iface.NumExplicitMethods(); i++ {
		method := iface.ExplicitMethod(i)
		if !method.Exported() {
			continue
		}

		out = append(out, meta.MemberDescriptor{
			Name: method.Name(),
			Kind: meta.MemberKindMethod,
		})
	}

	return out
}
