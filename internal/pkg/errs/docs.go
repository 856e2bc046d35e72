// Package errs holds the validation error types shared by the domain,
// the configuration loader and the HTTP adapter.
//
// Every type unwraps to one sentinel (ErrValueIsRequired, ErrValueIsInvalid,
// ErrValueIsOutOfRange), so callers branch with errors.Is and never need the
// concrete type. Constructors come in pairs, with and without a cause.
package errs
