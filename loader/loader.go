package loader

import "github.com/arcweld/slicecore/tower"

// MeshLoader turns a file on disk into one or more meshes, one per solid
// body the format supports — a 3MF file may contain several; an STL file
// always yields exactly one. The implementation is selected externally by
// the file extension, lowercased (§6); this package never inspects paths.
type MeshLoader interface {
	Load(path string) ([]tower.Mesh, error)
}

// Registry resolves a MeshLoader by lowercased file extension (without the
// leading dot), the one piece of dispatch logic the core does own — which
// loader a path should go to — while leaving every loader's parsing itself
// external.
type Registry map[string]MeshLoader

// NewRegistry builds an empty Registry; callers register their own STL/3MF
// (or other) loader implementations with Register.
func NewRegistry() Registry {
	return make(Registry)
}

// Register associates ext (lowercased, no leading dot) with l.
func (r Registry) Register(ext string, l MeshLoader) {
	r[ext] = l
}

// Resolve returns the loader registered for ext, or false if none matches.
func (r Registry) Resolve(ext string) (MeshLoader, bool) {
	l, ok := r[ext]
	return l, ok
}
