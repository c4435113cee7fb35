// File: internal/report/json.go
package report

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/xkilldash9x/forkdrift/api/schemas"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonRenderer emits the complete analysis record for downstream
// tooling. Unlike the text formats nothing is elided here; consumers get
// every field the engine produced.
type jsonRenderer struct{}

func (jsonRenderer) Render(a *schemas.RepositoryAnalysis) (string, error) {
	out, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding analysis record: %w", err)
	}
	return string(out), nil
}
