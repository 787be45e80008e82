package metrics

import (
	"sync"
	"testing"

	"github.com/YuminosukeSato/mlprimer/pkg/errors"
)

// captureWarnings routes library warnings into the returned recorder for the
// duration of the test.
func captureWarnings(t *testing.T) *warningRecorder {
	t.Helper()
	rec := &warningRecorder{}
	errors.SetWarningHandler(rec.record)
	t.Cleanup(func() { errors.SetWarningHandler(nil) })
	return rec
}

type warningRecorder struct {
	mu       sync.Mutex
	warnings []error
}

func (r *warningRecorder) record(w error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings = append(r.warnings, w)
}

func (r *warningRecorder) metrics() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, w := range r.warnings {
		var um *errors.UndefinedMetricWarning
		if errors.As(w, &um) {
			out = append(out, um.Metric)
		}
	}
	return out
}
