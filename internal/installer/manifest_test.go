package installer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedDependencies(t *testing.T) {
	deps := SortedDependencies(map[string]string{
		"winston":     "^3.13.0",
		"@babel/core": "^7.0.0",
		"express":     "^4.19.2",
		"body-parser": "^1.20.2",
	})

	names := make([]string, 0, len(deps))
	for _, dep := range deps {
		names = append(names, dep.Name)
	}
	assert.Equal(t, []string{"@babel/core", "body-parser", "express", "winston"}, names)
}

func TestSortedDependencies_Empty(t *testing.T) {
	assert.Empty(t, SortedDependencies(nil))
}

func TestDependency_String(t *testing.T) {
	assert.Equal(t, "express@^4.19.2", Dependency{Name: "express", Version: "^4.19.2"}.String())
}

func TestDependency_IsLocalFramework(t *testing.T) {
	assert.True(t, Dependency{Name: FrameworkPackage, Version: FrameworkLocalVersion}.isLocalFramework())
	assert.False(t, Dependency{Name: FrameworkPackage, Version: "^1.0.0"}.isLocalFramework())
	assert.False(t, Dependency{Name: "express", Version: FrameworkLocalVersion}.isLocalFramework())
}
