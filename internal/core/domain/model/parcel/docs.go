// Package parcel contains the package-type catalog and the Package value
// emitted on the package stream.
//
// The catalog is a static table of five Type records, each carrying the
// selection weight used by the weighted random selector. Types hold no
// behaviour beyond accessors; metrics and randomness live in callers.
package parcel
