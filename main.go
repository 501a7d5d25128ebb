package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/silentvalley/platformer/config"
	"github.com/silentvalley/platformer/fonts"
	"github.com/silentvalley/platformer/scenes"
	"github.com/silentvalley/platformer/systems"
	"github.com/spf13/cobra"
)

const appName = "silentvalley"

type Game struct {
	scene scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func NewGame() *Game {
	g := &Game{}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlatformerScene(g, config.Level.FirstLevel)
	} else {
		g.scene = scenes.NewInstructionsScene(g)
	}

	return g
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

type options struct {
	configPath string
	debug      bool
	skipMenu   bool
	level      int
	mute       bool
}

func newRootCmd() *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:          appName,
		Short:        "A side-scrolling platformer",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "YAML file overriding the built-in tuning")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "verbose logging and collision overlay")
	cmd.Flags().BoolVar(&opts.skipMenu, "skip-menu", false, "start playing without the instructions screen")
	cmd.Flags().IntVar(&opts.level, "level", 0, "level every run starts on")
	cmd.Flags().BoolVar(&opts.mute, "mute", false, "silence music and sound effects")

	return cmd
}

func run(opts options) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          appName,
		ReportTimestamp: true,
	})
	if opts.debug {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)

	if opts.configPath != "" {
		if err := config.LoadOverrides(opts.configPath); err != nil {
			return err
		}
		log.Info("loaded config overrides", "path", opts.configPath)
	}
	if opts.level > 0 {
		config.Level.FirstLevel = opts.level
	}
	config.Debug = config.DebugConfig{
		Enabled:  opts.debug,
		SkipMenu: opts.skipMenu,
		Mute:     opts.mute,
	}

	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(appName); err != nil {
		log.Warn("could not initialize persistence", "err", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}
	if opts.mute {
		systems.SetMusicVolume(0)
		systems.SetSFXVolume(0)
	}
	systems.PreloadAllSFX()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		return err
	}

	if !opts.mute {
		if err := systems.SaveSettings(systems.CurrentSettings(false)); err != nil {
			log.Warn("could not save settings", "err", err)
		}
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal("run failed", "err", err)
	}
}
