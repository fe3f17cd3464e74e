package loaders

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/geometry"
	"github.com/nasehim7/appleseed/pkg/material"
)

// LoadGLTF reads a glTF or GLB file and returns one triangle mesh per
// triangle primitive, all bound to the given surface material. Non-triangle
// primitives (lines, points) are skipped.
func LoadGLTF(path string, mat material.BSDF) ([]*geometry.TriangleMesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	var meshes []*geometry.TriangleMesh
	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}

			mesh, err := loadPrimitive(doc, prim, mat)
			if err != nil {
				return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
			}
			if mesh != nil {
				meshes = append(meshes, mesh)
			}
		}
	}

	if len(meshes) == 0 {
		return nil, fmt.Errorf("%s contains no triangle primitives", path)
	}
	return meshes, nil
}

func loadPrimitive(doc *gltf.Document, prim *gltf.Primitive, mat material.BSDF) (*geometry.TriangleMesh, error) {
	posIndex, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, nil
	}

	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIndex], nil)
	if err != nil {
		return nil, fmt.Errorf("reading positions: %w", err)
	}

	vertices := make([]core.Vec3, len(positions))
	for i, p := range positions {
		vertices[i] = core.NewVec3(float64(p[0]), float64(p[1]), float64(p[2]))
	}

	var normals []core.Vec3
	if normIndex, ok := prim.Attributes[gltf.NORMAL]; ok {
		raw, err := modeler.ReadNormal(doc, doc.Accessors[normIndex], nil)
		if err != nil {
			return nil, fmt.Errorf("reading normals: %w", err)
		}
		normals = make([]core.Vec3, len(raw))
		for i, n := range raw {
			normals[i] = core.NewVec3(float64(n[0]), float64(n[1]), float64(n[2]))
		}
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("reading indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(vertices))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("index count %d is not a multiple of 3", len(indices))
	}

	return geometry.NewTriangleMesh(vertices, normals, indices, mat), nil
}
