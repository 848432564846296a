package catalog

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/Masterminds/semver/v3"
	"github.com/sourcegraph/conc/pool"
	"gopkg.in/yaml.v3"
)

// SupportedSchema is the semver constraint a catalog file's schema_version
// must satisfy. A file without one is read as DefaultSchemaVersion.
const (
	SupportedSchema      = "^1.0.0"
	DefaultSchemaVersion = "1.0.0"
)

// File is the on-disk YAML representation of a catalog.
type File struct {
	SchemaVersion string     `yaml:"schema_version"`
	Categories    []Category `yaml:"categories"`
	Tools         []Tool     `yaml:"tools"`
}

// Parse decodes a catalog file and checks its schema version. It does not
// validate records; callers pass the result to New or Validate.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := CheckSchema(f.SchemaVersion); err != nil {
		return nil, err
	}
	return &f, nil
}

// CheckSchema reports whether version satisfies SupportedSchema. An empty
// version is read as 1.0.0.
func CheckSchema(version string) error {
	if version == "" {
		version = DefaultSchemaVersion
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid schema_version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(SupportedSchema)
	if err != nil {
		return fmt.Errorf("invalid schema constraint %q: %w", SupportedSchema, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("unsupported schema_version %s (want %s)", version, SupportedSchema)
	}
	return nil
}

// ReadFile reads and parses a single catalog file.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// LoadFile reads a single catalog file and builds a Catalog from it.
func LoadFile(path string) (*Catalog, error) {
	f, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromFile(f)
}

// FromFile builds a Catalog from a parsed file, keeping its schema version.
func FromFile(f *File) (*Catalog, error) {
	c, err := New(f.Categories, f.Tools)
	if err != nil {
		return nil, err
	}
	if f.SchemaVersion != "" {
		c.schemaVersion = f.SchemaVersion
	}
	return c, nil
}

// Load reads the given files concurrently and merges them in argument order.
// The first failing file cancels the rest.
func Load(ctx context.Context, paths ...string) (*Catalog, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files given")
	}

	files := make([]*File, len(paths))
	p := pool.New().
		WithErrors().
		WithContext(ctx).
		WithCancelOnError().
		WithMaxGoroutines(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := ReadFile(path)
			if err != nil {
				return err
			}
			files[i] = f
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	categories, tools, err := Merge(files...)
	if err != nil {
		return nil, err
	}
	return FromFile(&File{
		SchemaVersion: newestSchema(files),
		Categories:    categories,
		Tools:         tools,
	})
}

// newestSchema returns the highest schema_version among files. Parse has
// already checked every version, so unparsable ones do not occur.
func newestSchema(files []*File) string {
	var newest *semver.Version
	for _, f := range files {
		if f.SchemaVersion == "" {
			continue
		}
		v, err := semver.NewVersion(f.SchemaVersion)
		if err != nil {
			continue
		}
		if newest == nil || v.GreaterThan(newest) {
			newest = v
		}
	}
	if newest == nil {
		return ""
	}
	return newest.Original()
}

// Merge combines catalog files in order. A category may appear in several
// files as long as every definition is identical; tools are concatenated
// and duplicates are left for Validate to report.
func Merge(files ...*File) ([]Category, []Tool, error) {
	var (
		categories []Category
		tools      []Tool
		byID       = make(map[string]Category)
	)

	for _, f := range files {
		for _, c := range f.Categories {
			if prev, ok := byID[c.ID]; ok {
				if prev != c {
					return nil, nil, fmt.Errorf("conflicting definitions for category %q", c.ID)
				}
				continue
			}
			byID[c.ID] = c
			categories = append(categories, c)
		}
		tools = append(tools, f.Tools...)
	}

	return categories, tools, nil
}
