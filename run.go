package bramble

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pelletier/go-toml/v2"
)

// RunConfig configures the window and game loop for Run.
type RunConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Debug  bool   `toml:"debug"`
}

// LoadRunConfig reads a RunConfig from a TOML file. Missing fields keep
// their defaults (640x480, title "bramble").
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := RunConfig{Title: "bramble", Width: 640, Height: 480}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("bramble: failed to read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("bramble: failed to parse config %q: %w", path, err)
	}
	return cfg, nil
}

// game adapts a Scene to the ebiten.Game interface, tracking elapsed time
// for the scene's update pass.
type game struct {
	scene   *Scene
	elapsed float64
}

func (g *game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	g.elapsed += dt
	g.scene.Update(g.elapsed, dt)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(_, _ int) (int, int) {
	return int(g.scene.Width()), int(g.scene.Height())
}

// Run creates a window per the config and drives the scene's update and
// draw passes until the window closes. For full control, implement
// ebiten.Game yourself and call Scene.Update and Scene.Draw directly.
func Run(scene *Scene, cfg RunConfig) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	scene.SetDebugMode(cfg.Debug)
	return ebiten.RunGame(&game{scene: scene})
}
