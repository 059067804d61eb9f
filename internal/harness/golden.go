package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// AssertGolden compares the report against testdata/golden/{report.Name}.golden.
//
// Reports embed the run ID, so callers should run with WithRunIDs and a
// fixed generator. To regenerate golden files, run:
//
//	go test ./internal/harness -update
func AssertGolden(t *testing.T, report *Report) {
	t.Helper()

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		t.Fatalf("marshal report %s: %v", report.Name, err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, report.Name, data)
}
