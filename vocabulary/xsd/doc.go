// Package xsd provides XML Schema datatype IRI constants and
// classification helpers for the ShEx validation engine.
//
// Schema constraints reference datatypes by prefixed name (xsd:string,
// xsd:integer, ...). After prefix expansion those names resolve to the
// IRIs declared here. The classification helpers drive two decisions:
//
//   - parse-time facet compatibility (numeric facets attach only to
//     numeric datatypes, length/pattern facets only to string-like ones)
//   - validation-time scalar conversion (KindOf selects the total
//     conversion applied to each candidate value)
package xsd
