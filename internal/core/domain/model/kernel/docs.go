// Package kernel provides shared value objects for the logistics domain.
//
// The package includes:
//   - UUID: identifier minted for every generated package
//   - Dimensions: width/height/length triple used by package types and truck capacity
//
// Both are immutable, validated at construction and safe for concurrent use.
// Their zero values are invalid and fail Validate.
package kernel
