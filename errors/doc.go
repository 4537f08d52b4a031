/*
Package errors implements custom error interfaces for the ledger core.

Each returned error is built from a registered root error that carries a
unique numeric code. Errors created during runtime wrap one of the
declared root errors, which allows errors to be tested for their kind
with the Is method and reported to a client in a safe manner without
leaking internal details.
*/
package errors
