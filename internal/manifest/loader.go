package manifest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"metaexport/pkg/meta"
)

// LoadFile loads and parses a YAML manifest from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}

	return nil
}

// Loader is a meta.Source backed by a manifest file.
type Loader struct {
	path   string
	logger *zap.Logger
}

// NewLoader creates a Loader reading the manifest at path.
func NewLoader(path string, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Loader{path: path, logger: logger}
}

// Load reads the manifest and returns its module. The module must define at
// least one type in namespace.
func (l *Loader) Load(_ context.Context, namespace string) (*meta.Module, error) {
	f, err := LoadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("manifest %s: %w", l.path, meta.ErrModuleNotFound)
	}
	if err != nil {
		return nil, err
	}

	module, err := f.ToModule()
	if err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", l.path, err)
	}

	l.logger.Debug("loaded manifest",
		zap.String("path", l.path),
		zap.String("library", module.Name),
		zap.Int("types", len(module.Types)))

	if len(module.ListTypes(namespace)) == 0 {
		return nil, &meta.NamespaceError{
			Namespace: namespace,
			Where:     "manifest " + l.path,
			Known:     module.Namespaces(),
		}
	}

	return module, nil
}
