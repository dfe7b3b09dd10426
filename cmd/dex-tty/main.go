// Command dex-tty runs the kiosk in a terminal.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/dexkiosk/app"
	"github.com/automoto/dexkiosk/assets"
	"github.com/automoto/dexkiosk/config"
	"github.com/automoto/dexkiosk/menu"
	"github.com/automoto/dexkiosk/sound"
	"github.com/automoto/dexkiosk/tty"
	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "path to an HCL config file")
	mute := flag.Bool("mute", false, "run without audio output")
	flag.Parse()

	if *configPath != "" {
		f, err := config.ReadConfigFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to read config: %v", err)
		}
		f.Apply()
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

	images := assets.NewImageLoader(config.Assets.ImageSize)
	if missing := images.Preload(kiosk.Pokedex.ImageFiles()); missing > 0 {
		log.Printf("Warning: %d images missing", missing)
	}

	player := sound.NewPlayer()
	if !*mute {
		if err := player.Init(); err != nil {
			log.Printf("Warning: Could not initialize audio: %v", err)
		}
	}
	defer player.Close()
	if missing := player.Preload(kiosk.Pokedex.SoundFiles()); missing > 0 {
		log.Printf("Warning: %d sounds missing", missing)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tts := app.NewSpeech(player.PlayFile)
	tts.Start(ctx)
	defer tts.Close()
	player.SetSpeech(tts)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	controller := tty.NewController(screen)
	renderer := tty.NewRenderer(screen, images)

	root := menu.Build(menu.Deps{
		Dex:      kiosk.Dex,
		Renderer: renderer,
		Audio:    player,
		Scanner:  menu.FixedScanner(config.Scanner.FixedIndex),
	})
	err = app.NewLoop(root, controller, renderer).Run(ctx)
	screen.Fini()
	<-controller.Done()
	if err != nil && ctx.Err() == nil {
		log.Printf("Warning: %v", err)
	}
}
