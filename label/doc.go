// Package label decodes the free-text markings printed on electronic
// components into structured values.
//
// A Grammar pairs one anchored pattern with an extraction function. A
// Dispatcher holds the grammars of one component family in a fixed order,
// shortlists candidates with a prefilter, and returns the first grammar's
// result, reporting any other grammar that also matched as an Ambiguity.
// Extraction functions build their results with the primitive decoders
// (DecodeYear1, DecodeYear2, DecodeWeek2, DecodeMonth2, DecodeMonthLetter),
// and callers resolve partial years with ReconcileYear.
//
// Grammars and dispatchers are built once at startup and never mutated.
package label
