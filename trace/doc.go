// Package trace records the visit events of a search run so they can be
// stored, inspected and replayed.
//
// A Recorder is a search.Visit sink. Attach it directly to an algorithm with
// search.WithOnVisit(rec.Visit), or to a traversal.Controller with
// traversal.WithOnVisit(rec.Visit). Events keep a sequence number, so a
// replay reproduces the exact expansion order.
//
// Encode and Decode store a trace as MessagePack
// (github.com/vmihailenco/msgpack/v5) together with a format version.
package trace
