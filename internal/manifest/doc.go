// Package manifest reads and writes YAML descriptions of compiled libraries.
//
// A manifest stands in for runtime reflection when the library was not
// written in Go: any tool able to enumerate a library's types can emit one,
// and metaexport reports on it exactly as it does on a Go package.
//
// Example:
//
//	name: ClassLibrary1
//	types:
//	  - name: Animal
//	    namespace: AnimalLibrary
//	    public: true
//	    abstract: true
//	    base: Object
//	    members:
//	      - name: Name
//	        kind: Field
//	        type: String
//	      - name: Age
//	        kind: Property
//	        type: Int32
//	      - name: ToString
//	        kind: Method
//	        declaredBy: Object
//
// Members declared by another type and non-public members are dropped on load.
package manifest
