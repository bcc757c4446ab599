package validation

import (
	"fmt"
	"sync"

	"github.com/david4096/sparql-agent-sub003/record"
)

// ValidateBatch validates every record against the named shape and
// returns one report per record, in input order. Records are fully
// independent; with WithWorkers(n > 1) they are validated concurrently,
// which never changes the reports produced.
func (v *Validator) ValidateBatch(records []*record.Record, shapeID string) ([]*Report, error) {
	// Fail the whole call up front on an unknown shape, before spawning
	// workers; per-record problems never surface as errors.
	if _, ok := v.schema.Shape(shapeID); !ok {
		return nil, fmt.Errorf("%w: %s", ErrShapeNotFound, shapeID)
	}

	reports := make([]*Report, len(records))

	if v.workers <= 1 || len(records) <= 1 {
		for i, rec := range records {
			report, err := v.Validate(rec, shapeID)
			if err != nil {
				return nil, err
			}
			reports[i] = report
		}
		return reports, nil
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, v.workers)
	for i, rec := range records {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, rec *record.Record) {
			defer wg.Done()
			defer func() { <-sem }()

			// The shape exists, so Validate cannot fail here.
			report, _ := v.Validate(rec, shapeID)
			reports[i] = report
		}(i, rec)
	}
	wg.Wait()
	return reports, nil
}
