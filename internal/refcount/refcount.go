// Package refcount provides the mode-selected reference count backing the
// public owner handle.
//
// Count is declared twice with identical exported names: an atomic variant
// compiled by default (count_parallel.go) and a plain variant compiled with
// the singlethread build tag (count_serial.go). Both are 8 bytes, so types
// embedding a Count do not change layout across modes.
//
// The serial variant performs non-atomic updates. Calling Incr or Decr
// concurrently from multiple goroutines on the same Count in a singlethread
// build is undefined; the importing package's build configuration is the
// only thing that rules it out.
package refcount
