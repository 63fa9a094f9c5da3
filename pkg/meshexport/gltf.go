// Package meshexport dumps a rendered frame's subdivision-rasterizer
// output as a textured glTF mesh, inverting the teacher's glTF loader into
// a writer: every subdivision leaf becomes two triangles with baked
// per-vertex colors (the four corner texels of the leaf's grid cell) and
// unit-square corner UVs.
package meshexport

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/lucidcoons/meshgrad/pkg/colorspace"
	"github.com/lucidcoons/meshgrad/pkg/raster"
)

// WriteGLB builds a binary glTF (.glb) document from a sorted slice of
// subdivision leaves sampled against tex, and saves it to path. Positions
// are the leaves' screen-space corners (Z=0, since the rasterizer is
// purely 2D); colors come from the same corner-texel sampling the
// subdivision rasterizer's fragment shader performs.
func WriteGLB(leaves []raster.Leaf, tex *raster.ColorTexture, path string) error {
	doc := gltf.NewDocument()
	doc.Scene = gltf.Index(0)
	doc.Scenes = append(doc.Scenes, &gltf.Scene{Nodes: []int{0}})

	var positions [][3]float32
	var colors [][4]float32
	var texcoords [][2]float32
	var indices []uint32

	for _, leaf := range leaves {
		nw, ne, sw, se := tex.SampleQuad(leaf.GridX, leaf.GridY)
		corners := []struct {
			x, y float64
			c    colorspace.Color
			u, v float64
		}{
			{leaf.Screen.North.X, leaf.Screen.North.Y, nw, 0, 0},
			{leaf.Screen.East.X, leaf.Screen.East.Y, ne, 1, 0},
			{leaf.Screen.South.X, leaf.Screen.South.Y, se, 1, 1},
			{leaf.Screen.West.X, leaf.Screen.West.Y, sw, 0, 1},
		}

		base := uint32(len(positions))
		for _, c := range corners {
			positions = append(positions, [3]float32{float32(c.x), float32(-c.y), 0})
			r, g, b, a := c.c.Bytes()
			colors = append(colors, [4]float32{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255})
			texcoords = append(texcoords, [2]float32{float32(c.u), float32(c.v)})
		}
		// Two triangles covering the quad: (N,E,S) and (N,S,W).
		indices = append(indices, base+0, base+1, base+2, base+0, base+2, base+3)
	}

	if len(positions) == 0 {
		return fmt.Errorf("meshexport: no leaves to export")
	}

	positionAccessor := modeler.WritePosition(doc, positions)
	colorAccessor := modeler.WriteColor(doc, colors)
	texcoordAccessor := modeler.WriteTextureCoord(doc, texcoords)
	indexAccessor := modeler.WriteIndices(doc, indices)

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: "mesh-gradient",
		Primitives: []*gltf.Primitive{
			{
				Indices: gltf.Index(indexAccessor),
				Attributes: map[string]int{
					gltf.POSITION:   positionAccessor,
					gltf.COLOR_0:    colorAccessor,
					gltf.TEXCOORD_0: texcoordAccessor,
				},
				Mode: gltf.PrimitiveTriangles,
			},
		},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: "mesh-gradient", Mesh: gltf.Index(0)})

	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("meshexport: save glb: %w", err)
	}
	return nil
}
