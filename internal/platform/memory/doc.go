// Package memory provides the in-memory implementation of store.Store.
//
// State is volatile and lost on restart. A single RWMutex serialises writers,
// and each Update works on copy-on-write views of the collections so a failed
// or panicking transaction leaves the committed state untouched.
package memory
