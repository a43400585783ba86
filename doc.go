/*
Package atlas packs a set of independent sprite images into a single atlas image
with an accompanying JSON manifest, and performs the inverse operation: given an
atlas and its manifest it reconstructs the original sprites. The placement is
deterministic, so identical sprite sets always produce identical atlases.

The package provides a command line interface, supporting various flags for the
pack and unpack operations. To check the supported commands type:

	$ spritepack --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"

		atlas "github.com/batuhankym/sprite-atlas-tool"
	)

	func main() {
		p := atlas.NewPacker()

		res, err := p.Pack(sprites)
		if err != nil {
			fmt.Printf("Error packing the sprites: %s", err.Error())
		}
		// res.Img is the atlas surface, res.Manifest the frame layout.
	}
*/
package atlas
