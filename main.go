package main

import (
	"context"
	"flag"
	"log"

	"github.com/automoto/dexkiosk/app"
	"github.com/automoto/dexkiosk/assets"
	"github.com/automoto/dexkiosk/config"
	"github.com/automoto/dexkiosk/display"
	"github.com/automoto/dexkiosk/fonts"
	"github.com/automoto/dexkiosk/menu"
	"github.com/automoto/dexkiosk/scenes"
	"github.com/automoto/dexkiosk/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Done() bool
}

type Game struct {
	scene Scene
}

func NewGame(scene Scene) *Game {
	return &Game{scene: scene}
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "path to an HCL config file")
	flag.Parse()

	if *configPath != "" {
		f, err := config.ReadConfigFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to read config: %v", err)
		}
		f.Apply()
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	kiosk, err := app.Open()
	if err != nil {
		log.Fatalf("Failed to open catalog: %v", err)
	}
	defer func() {
		if err := kiosk.Close(); err != nil {
			log.Printf("Warning: Could not close catalog: %v", err)
		}
	}()

	renderer := display.NewRenderer(assets.NewImageLoader(config.Assets.ImageSize))
	renderer.Preload(kiosk.Pokedex.ImageFiles())

	audioOut := systems.NewAudioOut()
	if missing := audioOut.Loader().Preload(kiosk.Pokedex.SoundFiles()); missing > 0 {
		log.Printf("Warning: %d sounds missing", missing)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tts := app.NewSpeech(audioOut.PlayFile)
	tts.Start(ctx)
	defer tts.Close()
	audioOut.SetSpeech(tts)

	root := menu.Build(menu.Deps{
		Dex:      kiosk.Dex,
		Renderer: renderer,
		Audio:    audioOut,
		Scanner:  menu.FixedScanner(config.Scanner.FixedIndex),
	})
	loop := app.NewLoop(root, systems.Controller{}, renderer)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(kiosk.Dex.Name())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	// Closing the window is a quit action so the state still gets saved
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(NewGame(scenes.NewKioskScene(loop, renderer))); err != nil {
		log.Printf("Warning: %v", err)
	}
}
