// Package version reports the version of the pcdgen binary.
//
// [Version] and [Revision] can be set at build time with -ldflags "-X". When
// they are not, they are filled in from the module build information.
package version
