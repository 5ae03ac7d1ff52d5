package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"

	"github.com/milk9111/glitchknight/audio"
	"github.com/milk9111/glitchknight/ecs"
	"github.com/milk9111/glitchknight/ecs/entity"
	"github.com/milk9111/glitchknight/ecs/render"
	"github.com/milk9111/glitchknight/prefabs"
	"github.com/milk9111/glitchknight/sim"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	session  *sim.Session
	keyboard Keyboard
	hud      *render.HUD
	bound    *entity.Scene
	sound    *audio.CuePlayer
	watcher  *prefabs.Watcher
	pauseUI  *ebitenui.UI

	paused bool
	quit   bool
	banner string
}

func NewGame(arenaFile string, debug, sound bool) (*Game, error) {
	s, err := sim.NewSession(arenaFile)
	if err != nil {
		return nil, err
	}
	s.SetDebug(debug)

	g := &Game{session: s, hud: &render.HUD{}}
	g.pauseUI = NewPauseUI(g)

	if sound {
		g.sound = audio.NewCuePlayer()
		if err := g.sound.Init(); err != nil {
			log.Printf("arena: audio disabled: %v", err)
		} else {
			s.OnCue(g.sound.Handle)
		}
	}
	s.OnEvent(g.onEvent)

	if w, err := prefabs.NewWatcher(prefabs.Dir); err != nil {
		log.Printf("arena: hot reload disabled: %v", err)
	} else {
		g.watcher = w
	}
	g.bindHUD()
	return g, nil
}

// bindHUD rebinds the HUD after the session rebuilt its scene.
func (g *Game) bindHUD() {
	scene := g.session.Scene
	if scene == g.bound {
		return
	}
	g.bound = scene
	sw := scene.Switcher
	sw.BindHUD(g.hud)
	g.hud.OnHealthChanged(sw.Hearts().Health())
	g.hud.OnManaChanged(sw.Mana().Current())
	g.hud.OnBreakMarkersChanged(sw.Hearts().MarkedSlots())
}

func (g *Game) onEvent(evt ecs.Event) {
	if evt.Type != ecs.EventModeSwitch {
		return
	}
	g.banner = fmt.Sprintf("mode: %v", evt.Data)
}

func (g *Game) restart() {
	if err := g.session.Reload(g.session.ArenaFile); err != nil {
		log.Printf("arena: restart failed: %v", err)
		return
	}
	g.keyboard.Reset()
	g.bindHUD()
	g.paused = false
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if g.watcher != nil {
		for _, path := range g.watcher.Poll() {
			if err := g.session.Reload(path); err != nil {
				log.Printf("arena: reload %s: %v", path, err)
				continue
			}
			g.keyboard.Reset()
			g.bindHUD()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.session.SetDebug(!g.session.Debug)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}
	if g.session.Over() {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.restart()
		}
		return nil
	}
	for _, in := range g.keyboard.Poll() {
		g.session.Push(in)
	}
	g.session.Step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	layout := g.session.Scene.Layout
	view := render.FitView(float64(layout.Width), float64(layout.Height), baseWidth, baseHeight)

	render.DrawArena(screen, layout, view)
	render.DrawCharacters(screen, g.session.World, view, g.session.Debug)
	if g.session.Debug {
		render.DrawPhysicsDebug(screen, g.session.World.PhysicsWorld(), view)
		render.DrawText(screen, fmt.Sprintf("tick %d  fps %.1f", g.session.Tick, ebiten.ActualFPS()), baseWidth-160, 12, colornames.Lightgray)
	}
	g.hud.Draw(screen, g.session.Scene.Switcher)
	if g.banner != "" {
		render.DrawText(screen, g.banner, baseWidth/2-40, 12, colornames.Violet)
	}
	if g.session.Over() {
		msg := "arena cleared - press R"
		if !g.session.Scene.Switcher.IsAlive() {
			msg = "you died - press R"
		}
		render.DrawText(screen, msg, baseWidth/2-80, baseHeight/2, colornames.White)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	g.sound.Close()
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
