package validation

// Recorder receives validation outcomes for observability. The engine
// calls it synchronously; implementations must be safe for concurrent
// use because batch validation runs records in parallel.
type Recorder interface {
	// RecordValidation is called once per validated record.
	RecordValidation(valid bool)

	// RecordViolation is called once per violation produced.
	RecordViolation(vtype ViolationType)
}

// nopRecorder is the default Recorder; it drops everything.
type nopRecorder struct{}

func (nopRecorder) RecordValidation(bool)         {}
func (nopRecorder) RecordViolation(ViolationType) {}
