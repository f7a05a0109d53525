// Dental Guardians - a small game for teaching kids about dental hygiene.
package main

import (
	"flag"
	"log"

	"github.com/decker502/dental-guardians/pkg/app"
	"github.com/decker502/dental-guardians/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose log output")
	assetsDir := flag.String("assets", "assets", "path to the assets directory")
	flag.Parse()

	game, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		AssetsDir: *assetsDir,
	})
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	if game.Settings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	// Run until the window is closed or the Exit status is reached.
	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
