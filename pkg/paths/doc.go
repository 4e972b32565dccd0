// Package paths locates files relative to the working tree.
//
// It is used to find the default constants database when none is given on the
// command line: the closest pcd.yaml found walking upward from a directory,
// without leaving the enclosing git repository.
package paths
