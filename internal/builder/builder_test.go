package builder

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"chartspec/internal/options"
	"chartspec/internal/vega"
)

func newSpec() *vega.Spec {
	return InitializeSpec(options.ApplyChartDefaults(options.ChartOptions{}))
}

// dumpOnFailure prints the draft when the test has failed.
func dumpOnFailure(t *testing.T, spec *vega.Spec) {
	t.Helper()

	if t.Failed() {
		t.Log(spew.Sdump(spec))
	}
}

func scaleNames(spec *vega.Spec) []string {
	names := make([]string, len(spec.Scales))
	for i, s := range spec.Scales {
		names[i] = s.Name
	}

	return names
}

func dataNames(spec *vega.Spec) []string {
	names := make([]string, len(spec.Data))
	for i, d := range spec.Data {
		names[i] = d.Name
	}

	return names
}

func signalNames(spec *vega.Spec) []string {
	names := make([]string, len(spec.Signals))
	for i, s := range spec.Signals {
		names[i] = s.Name
	}

	return names
}
