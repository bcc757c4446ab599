// Package validation evaluates candidate records against the shapes of
// a parsed schema, producing severity-tagged violation reports with
// remediation hints.
//
// The two error classes are kept strictly apart: a missing shape
// identifier is a call error (ErrShapeNotFound); everything wrong with
// the record itself becomes a Violation inside the Report, so batch
// validation runs to completion over arbitrarily bad data.
//
// A Validator holds only the immutable schema; Validate and
// ValidateBatch are safe to call from any number of goroutines.
package validation
