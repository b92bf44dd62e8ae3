// Package export runs a complete report: load a module, list the types of
// one namespace, and write the XML report and console transcript.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"metaexport/internal/diagnostic"
	"metaexport/internal/match"
	"metaexport/internal/report"
	"metaexport/pkg/meta"
)

// Options describes one run.
type Options struct {
	Namespace   string
	OutputPath  string
	LibraryName string // Defaults to the loaded module's name
}

// Result summarizes a finished run.
type Result struct {
	OutputPath  string
	LibraryName string
	Types       int
	Diagnostics diagnostic.Diagnostics
}

// maxSuggestions bounds the "did you mean" list of a namespace miss.
const maxSuggestions = 3

// Exporter writes reports for namespaces loaded from a meta.Source.
type Exporter struct {
	source  meta.Source
	console io.Writer
	dump    io.Writer
	logger  *zap.Logger
}

// New creates an Exporter printing its transcript to console.
func New(source meta.Source, console io.Writer, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Exporter{source: source, console: console, logger: logger}
}

// WithDump makes Run write a dump of the listed descriptors to w.
func (e *Exporter) WithDump(w io.Writer) *Exporter {
	e.dump = w
	return e
}

// ListTypes loads the unit that defines namespace and returns the types in
// exactly that namespace.
func (e *Exporter) ListTypes(ctx context.Context, namespace string) (*meta.Module, []meta.TypeDescriptor, error) {
	module, err := e.source.Load(ctx, namespace)
	if err != nil {
		return nil, nil, err
	}

	types := module.ListTypes(namespace)
	e.logger.Debug("listed types",
		zap.String("namespace", namespace),
		zap.Int("loaded", len(module.Types)),
		zap.Int("matched", len(types)))

	return module, types, nil
}

// Run writes the report. Nothing is created on disk when loading fails; once
// the output file is open it is closed on every path.
func (e *Exporter) Run(ctx context.Context, opts Options) (res *Result, err error) {
	module, types, err := e.ListTypes(ctx, opts.Namespace)
	if errors.Is(err, meta.ErrModuleNotFound) {
		res = &Result{OutputPath: opts.OutputPath, LibraryName: opts.LibraryName}
		res.Diagnostics.AddError(diagnostic.CodeNamespaceNotFound, err, suggestNamespaces(err)...)

		return res, fmt.Errorf("listing types of %s: %w", opts.Namespace, res.Diagnostics.Error())
	}
	if err != nil {
		return nil, fmt.Errorf("listing types of %s: %w", opts.Namespace, err)
	}

	res = &Result{
		OutputPath:  opts.OutputPath,
		LibraryName: opts.LibraryName,
		Types:       len(types),
	}
	if res.LibraryName == "" {
		res.LibraryName = module.Name
	}
	if len(types) == 0 {
		res.Diagnostics.AddWarning(diagnostic.CodeEmptyNamespace,
			"namespace "+opts.Namespace+" declares no types", "", "")
	}

	if e.dump != nil {
		spew.Fdump(e.dump, types)
	}

	f, err := os.Create(opts.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("creating report file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing report file: %w", cerr)
		}
	}()

	diags, err := report.Write(f, e.console, res.LibraryName, types)
	res.Diagnostics.Merge(diags)
	if err != nil {
		return res, fmt.Errorf("writing report %s: %w", opts.OutputPath, err)
	}

	for _, d := range res.Diagnostics.All() {
		e.logger.Debug("diagnostic", zap.String("severity", d.Severity.String()), zap.String("detail", d.String()))
	}
	e.logger.Info("report written",
		zap.String("path", opts.OutputPath),
		zap.Int("types", res.Types))

	return res, nil
}

// suggestNamespaces ranks the namespaces a NamespaceError knows about.
func suggestNamespaces(err error) []string {
	var nsErr *meta.NamespaceError
	if !errors.As(err, &nsErr) {
		return nil
	}

	return match.Suggest(nsErr.Namespace, nsErr.Known, maxSuggestions, match.DefaultMinScore)
}
