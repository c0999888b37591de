package insight

import (
	"encoding/json"
	"fmt"

	"github.com/shelfwise-lab/project-shelfwise/internal/core/period"
)

// PeriodOutcome is the result of aggregating one reporting window. Exactly
// one of Data or Missing is set: Data when the window had rows, Missing with
// a descriptive placeholder when it had none. An absent window is a normal
// outcome, never an error; callers always receive both comparison keys.
type PeriodOutcome[T any] struct {
	Data    *T
	Missing string
}

// outcomeOf wraps an aggregate for the given window, substituting the
// placeholder string when the window was empty.
func outcomeOf[T any](data *T, p period.Period) PeriodOutcome[T] {
	if data == nil {
		return PeriodOutcome[T]{Missing: fmt.Sprintf("No data found for %s.", p.Label())}
	}
	return PeriodOutcome[T]{Data: data}
}

// Absent reports whether the window had no rows.
func (o PeriodOutcome[T]) Absent() bool {
	return o.Data == nil
}

// MarshalJSON serializes the aggregate object when present, otherwise the
// placeholder string. The two shapes are what the conversational layer
// expects under the comparison keys.
func (o PeriodOutcome[T]) MarshalJSON() ([]byte, error) {
	if o.Data != nil {
		return json.Marshal(o.Data)
	}
	return json.Marshal(o.Missing)
}
