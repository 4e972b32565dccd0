// Package pcd provides the data model and loader for the Physical Constants
// Dictionary, a YAML database of named numeric constants organized in groups.
//
// A database document has the following shape:
//
//	physical_constants_dictionary:
//	  set:
//	    - mathematics:
//	        entries:
//	          - name: PI
//	            value: 3.14159
//	    - physics:
//	        entries:
//	          - name: G
//	            value: 9.81
//
// Each element of the set sequence names exactly one group. The order of
// groups and of the entries within each group is preserved, and values are
// kept as the literal text written in the document.
package pcd
