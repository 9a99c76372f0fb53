package arch_test

import "testing"

// layers places every internal package in the dependency order. A package
// may import packages on its own layer or below, never above.
var layers = map[string]int{
	"config": 0,
	"kv":     0,
	"logger": 0,
	"model":  0,

	"filter":   1,
	"planner":  1,
	"scale":    1,
	"shopping": 1,
	"store":    1,

	"card": 2,
	"ui":   2,

	"mcpserver": 3,
}

func TestLayering(t *testing.T) {
	t.Parallel()

	for _, pkg := range packages(t) {
		layer, ok := layers[pkg]
		if !ok {
			t.Errorf("package %s has no layer; add it to the layers map", pkg)
			continue
		}
		for _, imp := range internalImports(t, pkg) {
			if l, ok := layers[imp]; ok && l > layer {
				t.Errorf("%s (layer %d) imports %s (layer %d)", pkg, layer, imp, l)
			}
		}
	}
}

func TestLayersAreCurrent(t *testing.T) {
	t.Parallel()

	present := make(map[string]bool)
	for _, pkg := range packages(t) {
		present[pkg] = true
	}
	for pkg := range layers {
		if !present[pkg] {
			t.Errorf("layers lists %s but internal/%s does not exist", pkg, pkg)
		}
	}
}
