package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	atlas "github.com/batuhankym/sprite-atlas-tool"
	"github.com/batuhankym/sprite-atlas-tool/utils"
)

const HelpBanner = `
┌─┐┌─┐┬─┐┬┌┬┐┌─┐┌─┐┌─┐┌─┐┬┌─
└─┐├─┘├┬┘│ │ ├┤ ├─┘├─┤│  ├┴┐
└─┘┴  ┴└─┴ ┴ └─┘┴  ┴ ┴└─┘┴ ┴

Sprite atlas packer and unpacker.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", "", "Source directory (pack) or atlas image (unpack)")
	destination = flag.String("out", "", "Destination directory")
	manifest    = flag.String("manifest", "", "Manifest file path (defaults to atlas.json)")
	unpack      = flag.Bool("unpack", false, "Split an atlas back into individual sprites")
	padding     = flag.Int("padding", atlas.DefaultPadding, "Padding between the packed sprites")
	maxSize     = flag.Int("max", atlas.DefaultMaxAtlasSize, "Maximum atlas size")
	powerOfTwo  = flag.Bool("pot", false, "Round the atlas dimensions up to a power of two")
	algorithm   = flag.String("algo", atlas.ShelfName, "Packing algorithm")
	workers     = flag.Int("conc", 0, "Number of sprites to decode concurrently")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *source == "" {
		flag.Usage()
		log.Fatal(fmt.Sprintf("%s%s",
			utils.DecorateText("\nPlease provide a source directory or an atlas image!", utils.ErrorMessage),
			utils.DefaultColor,
		))
	}

	p := &atlas.Packer{
		Padding:      *padding,
		MaxAtlasSize: *maxSize,
		PowerOfTwo:   *powerOfTwo,
		Strategy:     *algorithm,
	}

	p.Execute(&atlas.Ops{
		Src:      *source,
		Dst:      *destination,
		Manifest: *manifest,
		Workers:  *workers,
		Unpack:   *unpack,
	})
}
