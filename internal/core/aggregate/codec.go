package aggregate

import (
	"encoding/json"

	perr "linkpulse/internal/platform/errors"
)

// Serialize renders the aggregate as its plain persistable JSON form
func Serialize(a *Aggregate) ([]byte, error) {
	if a == nil {
		return nil, perr.InvalidArgf("nil aggregate")
	}
	return json.Marshal(a)
}

// Hydrate restores an aggregate from its serialized form without recomputation
// Missing optional fields degrade to their zero values, only malformed JSON
// is reported as an error
func Hydrate(raw []byte) (*Aggregate, error) {
	var a Aggregate
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "hydrate aggregate")
	}
	if a.Months == nil {
		a.Months = map[string]*MonthBucket{}
	}
	if a.DayIndex == nil {
		a.DayIndex = map[string]*DayBucket{}
	}
	for _, mb := range a.Months {
		if mb != nil && mb.Topics == nil {
			mb.Topics = map[string]int{}
		}
	}
	return &a, nil
}
