// Package errs provides the typed errors shared by the journal service.
//
// Each kind pairs a sentinel (ErrObjectNotFound, ErrValueIsInvalid, ...) with a
// struct carrying the offending parameter and an optional cause. The structs
// unwrap to their sentinel, so callers classify with errors.Is and the HTTP
// adapter maps the sentinel to a status code.
package errs
