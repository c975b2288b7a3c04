//go:build !js
// +build !js

// Command desktop runs the game in a native window.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/simukka/ufo-defense/audio"
	"github.com/simukka/ufo-defense/common"
	"github.com/simukka/ufo-defense/desktop"
	"github.com/simukka/ufo-defense/game"
)

func main() {
	cfg := desktop.DefaultConfig()
	flag.IntVar(&cfg.Width, "width", cfg.Width, "window width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "window height")
	flag.StringVar(&cfg.SaveDir, "save-dir", "", "directory for the save file (default: user config dir)")
	flag.BoolVar(&cfg.Muted, "mute", false, "start with sound off")
	seed := flag.Uint("seed", 0, "random seed (0 picks one from the clock)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	game.EnableDebug = *debug

	if cfg.SaveDir == "" {
		dir, err := desktop.DefaultSaveDir()
		if err != nil {
			log.Fatalf("locate save dir: %v", err)
		}
		cfg.SaveDir = dir
	}

	audioCfg := audio.AudioConfig
	audioCfg.Muted = cfg.Muted
	sounds := NewSoundManager(audioCfg)
	if err := sounds.Initialize(); err != nil {
		log.Printf("sound disabled: %v", err)
	}

	rngSeed := uint32(*seed)
	if rngSeed == 0 {
		rngSeed = common.SeedFromTime(time.Now())
	}
	game.Debug("seed:", rngSeed)

	scene := desktop.NewScene()
	hud := &desktop.HUD{}
	g := game.NewGame(game.DefaultConfig(), game.Backend{
		Scene:  scene,
		HUD:    hud,
		Store:  desktop.NewFileStore(cfg.SaveDir),
		Codec:  game.MsgpackCodec{},
		Sounds: sounds,
	}, common.NewSeededRNG(rngSeed))
	g.Resize(cfg.Width, cfg.Height)

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	if err := ebiten.RunGame(NewApp(cfg, g, scene, hud, sounds)); err != nil {
		log.Fatal(err)
	}
}
