// Package pcdgen renders a [pcd.Database] as source code.
//
// Each supported output language is described by a [Dialect] registered in a
// table keyed by language tag ("cxx", "f90"). A generated file consists of the
// dialect's header, then a comment and one declaration per entry for every
// selected group in database order, then the dialect's footer.
//
// Group selection and language lookup are validated before anything is
// written. [GenerateFile] writes to a pending file next to the destination
// and atomically replaces the destination only once the content is complete.
package pcdgen
