package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/Echx/Planck/internal/config"
	"github.com/Echx/Planck/internal/core/path"
	"github.com/Echx/Planck/internal/core/tracer"
	"github.com/Echx/Planck/internal/designer"
	ebitenrender "github.com/Echx/Planck/internal/render/ebiten"
	"github.com/Echx/Planck/internal/render/snapshot"
	"github.com/Echx/Planck/internal/world/level"
)

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var lvl *level.Level
	if *levelFlag != "" {
		lvl, err = level.Load(*levelFlag)
		switch {
		case err == nil:
			log.Printf("Loaded level %q (%d devices)", lvl.Name, lvl.Grid.Len())
		case errors.Is(err, os.ErrNotExist) && *snapshotFlag == "":
			log.Printf("Level %s does not exist yet, starting a blank one", *levelFlag)
			lvl = nil
		default:
			log.Fatalf("Failed to load level: %v", err)
		}
	}

	if *snapshotFlag != "" {
		if lvl == nil {
			log.Fatal("A level is required for -snapshot")
		}
		if err := renderSnapshot(cfg, lvl, *snapshotFlag); err != nil {
			log.Fatal(err)
		}
		return
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	scene := designer.New(cfg, lvl, renderer, inputMgr)
	scene.LevelPath = *levelFlag
	scene.Shoot()

	// Set up the window
	scale := *scaleFlag
	engine.SetWindowSize(int(float64(scene.ScreenWidth)*scale), int(float64(scene.ScreenHeight)*scale))
	engine.SetWindowTitle("Planck - " + scene.Level.Name)
	engine.SetWindowResizable(true)

	log.Println("Starting designer...")
	if err := engine.RunGame(scene); err != nil {
		log.Fatal(err)
	}
}

// renderSnapshot traces every emitter synchronously and writes the picture.
func renderSnapshot(cfg *config.Config, lvl *level.Level, out string) error {
	engine := tracer.FromConfig(cfg, log.Default())

	var rays []*path.Path
	for _, e := range lvl.Grid.Emitters() {
		p, status, ok := engine.TraceEmitter(lvl.Grid, e)
		if !ok {
			continue
		}
		log.Printf("Ray from %s: %d critical points, length %.1f, %v", e.ID(), p.Len(), p.PathLength(), status)
		for _, id := range p.Parents() {
			if note, ok := lvl.NoteFor(id); ok {
				log.Printf("  reaches %s at note %s", id, note)
			}
		}
		rays = append(rays, p)
	}

	opts := snapshot.DefaultOptions()
	opts.Scale = *scaleFlag
	if err := snapshot.SavePNG(out, lvl.Grid, rays, opts); err != nil {
		return err
	}
	log.Printf("Wrote %s", out)
	return nil
}
