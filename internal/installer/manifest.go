package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-json"
	"github.com/samber/lo"
)

const ManifestFileName = "package.json"

// The framework is linked from a sibling checkout while it is being developed
// and must not be replaced by a registry install.
const (
	FrameworkPackage      = "@simplicityjs/framework"
	FrameworkLocalVersion = "file:../simplicity-framework"
)

type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Engines         map[string]string `json:"engines"`
}

type Dependency struct {
	Name    string
	Version string
}

func (d Dependency) String() string {
	return d.Name + "@" + d.Version
}

func (d Dependency) isLocalFramework() bool {
	return d.Name == FrameworkPackage && d.Version == FrameworkLocalVersion
}

func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFileName))
	if err != nil {
		return nil, fmt.Errorf("could not read manifest: %w", err)
	}
	manifest := &Manifest{}
	if err := json.Unmarshal(data, manifest); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", ManifestFileName, err)
	}
	return manifest, nil
}

// SortedDependencies returns the entries of group ordered by package name.
func SortedDependencies(group map[string]string) []Dependency {
	deps := lo.MapToSlice(group, func(name string, version string) Dependency {
		return Dependency{Name: name, Version: version}
	})
	slices.SortFunc(deps, func(a, b Dependency) int {
		return strings.Compare(a.Name, b.Name)
	})
	return deps
}
