// Command planetable places text blocks into a plane and prints it.
//
// Input is read from stdin, one row per line:
//
//	@ -2 -1
//	a b
//	c d
//	@ 1 1
//	e
//
// Each "@ x y" line sets where the following block's top-left cell lands.
// Blocks placed left of or above the origin extend the plane.
package main

import (
	"flag"
	"log"
	"os"

	"planar/pkg/grid"
	"planar/pkg/grid/gridfmt"
)

func main() {
	clip := flag.Bool("clip", false, "drop cells outside the current extent instead of growing")
	keep := flag.Bool("keep", false, "never overwrite a non-empty cell")
	list := flag.Bool("list", false, "print columns as a nested list instead of a table")
	flag.Parse()
	log.SetFlags(0)

	blocks, err := parseBlocks(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}

	opts := grid.PlaceOptions[string]{Clip: *clip}
	if *keep {
		opts.Overwrite = func(existing, _ string) bool { return existing == "" }
	}

	p := grid.NewPlane[string]()
	for i, b := range blocks {
		if i == 0 && *clip {
			// nothing to clip against yet
			err = p.Place(b.cells, b.at)
		} else {
			err = p.PlaceWith(b.cells, b.at, opts)
		}
		if err != nil {
			log.Fatalf("block %d at %v: %v", i+1, b.at, err)
		}
	}

	if *list {
		err = gridfmt.Write[string](os.Stdout, p)
	} else {
		err = gridfmt.WriteTableFunc[string](os.Stdout, p, func(s string) string {
			if s == "" {
				return "."
			}
			return s
		})
	}
	if err != nil {
		log.Fatal(err)
	}
}
