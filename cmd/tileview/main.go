// Command tileview shows a saved Tiletown world in the terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"Tiletown/internal/pathgraph"
	"Tiletown/internal/savefile"
	"Tiletown/internal/world"
)

// maxSide bounds the grid a save may ask for.
const maxSide = 512

func loadWorld(path string) (*world.World, *pathgraph.Graph, error) {
	doc, err := savefile.ReadDocument(path)
	if err != nil {
		return nil, nil, err
	}
	w := world.New(clamp(doc.Rows, 0, maxSide), clamp(doc.Cols, 0, maxSide))
	savefile.Apply(w, doc)
	g := pathgraph.New()
	g.Build(w)
	return w, g, nil
}

func main() {
	savePath := flag.String("save", "saves/world.json", "save file to show")
	dump := flag.Bool("dump", false, "print the grid to stdout and exit")
	nodes := flag.Bool("nodes", false, "mark path graph nodes")
	flag.Parse()

	w, g, err := loadWorld(*savePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load: %v\n", err)
		os.Exit(1)
	}

	if *dump {
		if err := Dump(os.Stdout, w, g, *nodes); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write: %v\n", err)
			os.Exit(1)
		}
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	v := NewViewer(screen, w, g)
	v.showNodes = *nodes
	v.Run()
}
