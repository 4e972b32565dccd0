// Package pcderrors provides error definitions for loading the constants
// database and generating source files from it.
//
// Callers match failures with [errors.Is] against the sentinels defined here.
// More specific sentinels are reported together with the general ones, so that,
// for example, a duplicate group also matches [ErrMalformedDatabase].
package pcderrors
