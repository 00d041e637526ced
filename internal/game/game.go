// Package game runs one player's session: menus, the current scene and the
// satchel that follows the player between scenes.
package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"satchel/assets"
	"satchel/internal/audio"
	"satchel/internal/component"
	"satchel/internal/inventory"
	"satchel/internal/level"
	"satchel/internal/menu"
	"satchel/internal/queue"
	"satchel/internal/render"
	"satchel/internal/settings"
	"satchel/internal/system"

	"github.com/gdamore/tcell/v2"
)

// State is the session's top-level mode.
type State uint8

const (
	StateMainMenu State = iota
	StateCredits
	StateSettings
	StatePlaying
	StatePaused
	StateQuit
)

func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "main menu"
	case StateCredits:
		return "credits"
	case StateSettings:
		return "settings"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateQuit:
		return "quit"
	}
	return "?"
}

const maxMessages = 50

// Options configures a Game.
type Options struct {
	// Screen to draw on. When nil New opens the local terminal.
	Screen tcell.Screen
	Logger *slog.Logger
	// Settings are the starting preferences. SettingsPath, when set, is where
	// changes made in the settings panels are saved.
	Settings     settings.Settings
	SettingsPath string
	// Audio plays cues; nil keeps the session silent.
	Audio *audio.Player
	// Player names the session in the run log.
	Player string
	// RunLogDir overrides the run log directory.
	RunLogDir string
	Rand      *rand.Rand
}

// Game is the top-level orchestrator for one session.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	log      *slog.Logger
	audio    *audio.Player
	rng      *rand.Rand
	opts     Options

	settings settings.Settings
	mainMenu *menu.Main
	pause    *menu.Pause
	quit     bool

	// per-run state; inv outlives scene switches
	inv      *inventory.Inventory
	scene    *level.Scene
	slots    render.Slots
	hand     render.Hand
	subs     []inventory.Subscription
	messages []string
	runLog   RunLog
}

// New creates a Game showing the main menu.
func New(opts Options) (*Game, error) {
	screen := opts.Screen
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("create screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return nil, fmt.Errorf("init screen: %w", err)
		}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen, !opts.Settings.Fullscreen),
		log:      logger,
		audio:    opts.Audio,
		rng:      rng,
		opts:     opts,
		settings: opts.Settings,
		mainMenu: menu.NewMain(),
		pause:    menu.NewPause(),
	}, nil
}

// State returns the current mode.
func (g *Game) State() State {
	switch {
	case g.quit:
		return StateQuit
	case g.scene != nil && g.pause.Open():
		return StatePaused
	case g.scene != nil:
		return StatePlaying
	case g.mainMenu.Panel() == menu.PanelCredits:
		return StateCredits
	case g.mainMenu.Panel() == menu.PanelSettings:
		return StateSettings
	}
	return StateMainMenu
}

// Settings returns the current preferences.
func (g *Game) Settings() settings.Settings { return g.settings }

// Inventory returns the satchel of the run in progress, or nil on the menu.
func (g *Game) Inventory() *inventory.Inventory { return g.inv }

// Scene returns the loaded scene, or nil on the menu.
func (g *Game) Scene() *level.Scene { return g.scene }

// Messages returns the message log, oldest first.
func (g *Game) Messages() []string { return g.messages }

// Run draws and handles input until the player quits or ctx is cancelled.
// The screen is finalised on return.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Fini()

	stop := context.AfterFunc(ctx, func() {
		_ = g.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for !g.quit {
		g.draw()
		ev := g.screen.PollEvent()
		if ev == nil {
			break
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.renderer.Resize()
			g.screen.Sync()
		case *tcell.EventKey:
			g.HandleKey(ev)
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				g.Quit()
			}
		}
	}
	return ctx.Err()
}

// Quit ends the session, saving the run in progress.
func (g *Game) Quit() {
	if g.scene != nil {
		g.endRun(OutcomeQuit)
	}
	g.quit = true
}

// HandleKey routes one key press to the active menu or the scene.
func (g *Game) HandleKey(ev *tcell.EventKey) {
	switch g.State() {
	case StateQuit:
		return
	case StatePlaying:
		g.handlePlayKey(ev)
	case StatePaused:
		g.handlePauseKey(ev)
	default:
		g.handleMainMenuKey(ev)
	}
}

func (g *Game) handleMainMenuKey(ev *tcell.EventKey) {
	m := g.mainMenu
	switch keyToMenu(ev) {
	case menuUp:
		m.Up()
	case menuDown:
		m.Down()
	case menuLeft, menuRight:
		if m.Panel() == menu.PanelSettings {
			g.adjustSetting(&m.Settings, menuDelta(keyToMenu(ev)))
		}
	case menuSelect:
		g.audio.Play(audio.CueMenu)
		switch m.Select() {
		case menu.ActionPlay:
			g.startRun()
		case menu.ActionQuit:
			g.Quit()
		}
	case menuBack:
		m.Back()
	case menuQuit:
		g.Quit()
	}
}

func (g *Game) handlePauseKey(ev *tcell.EventKey) {
	p := g.pause
	k := keyToMenu(ev)
	switch k {
	case menuUp:
		p.Up()
	case menuDown:
		p.Down()
	case menuLeft, menuRight:
		if p.Panel() == menu.PanelSettings {
			g.adjustSetting(&p.Settings, menuDelta(k))
		}
	case menuSelect:
		g.audio.Play(audio.CueMenu)
		switch p.Select() {
		case menu.ActionBackToMenu:
			g.endRun(OutcomeMenu)
		case menu.ActionQuit:
			g.Quit()
		}
	case menuBack:
		p.Back()
	case menuQuit:
		g.Quit()
	}
}

func menuDelta(k menuKey) int {
	if k == menuLeft {
		return -1
	}
	return 1
}

// adjustSetting applies a settings panel change and persists it.
func (g *Game) adjustSetting(sp *menu.SettingsPanel, delta int) {
	if !sp.Adjust(&g.settings, delta) {
		return
	}
	g.applySettings()
	if g.opts.SettingsPath == "" {
		return
	}
	if err := g.settings.Save(g.opts.SettingsPath); err != nil {
		g.log.Warn("settings: save failed", "path", g.opts.SettingsPath, "error", err)
	}
}

func (g *Game) applySettings() {
	if g.audio != nil {
		g.audio.SetVolume(g.settings.MasterVolume)
	}
	g.renderer.SetFramed(!g.settings.Fullscreen)
	if g.scene != nil {
		g.updateView()
	}
}

func (g *Game) handlePlayKey(ev *tcell.EventKey) {
	pid := g.scene.PlayerID
	switch action := keyToAction(ev); action {
	case ActionMenu:
		g.pause.Toggle()
	case ActionQuit:
		g.Quit()
	case ActionTurnLeft:
		system.TurnLeft(g.scene, pid)
		g.updateView()
	case ActionTurnRight:
		system.TurnRight(g.scene, pid)
		g.updateView()
	case ActionCrouch:
		if system.ToggleCrouch(g.scene, pid) == component.StanceCrouching {
			g.addMessage("You crouch.")
		} else {
			g.addMessage("You stand up.")
		}
		g.updateView()
	case ActionInteract:
		g.interact()
	case ActionCycle:
		g.cycle()
	case ActionDrop:
		g.drop()
	default:
		dx, dy := actionToDelta(action)
		if dx == 0 && dy == 0 {
			return
		}
		result, exit := system.TryMove(g.scene, pid, dx, dy)
		if result == system.MoveExit {
			if e, ok := g.scene.Exits.Get(exit); ok {
				g.enterScene(level.SceneID(e.Target), &e.Spawn)
				return
			}
		}
		g.updateView()
	}
}

func (g *Game) interact() {
	id, ok := system.PickableInReach(g.scene, g.scene.PlayerID)
	if !ok {
		g.addMessage("There is nothing here to pick up.")
		return
	}
	item, ok := system.PickUp(g.scene, g.inv, id)
	if !ok {
		return
	}
	g.runLog.PickedUp = append(g.runLog.PickedUp, item.Name)
	g.audio.Play(audio.CuePickup)
	g.addMessage(fmt.Sprintf("You put the %s in your satchel.", item.Name))
	g.log.Debug("picked up", "item", item.Name, "scene", g.scene.ID, "carried", g.inv.Len())
}

func (g *Game) cycle() {
	if g.inv.Len() < 2 {
		g.addMessage("Nothing else to switch to.")
		return
	}
	g.inv.CycleActive()
	g.runLog.Cycles++
	g.audio.Play(audio.CueCycle)
	if active, ok := g.inv.Active(); ok {
		g.addMessage(fmt.Sprintf("You take out the %s.", active.Name))
	}
}

func (g *Game) drop() {
	item, err := system.DropActive(g.scene, g.inv, g.scene.PlayerID)
	switch {
	case errors.Is(err, queue.ErrEmptyQueue):
		g.addMessage("Your satchel is empty.")
		return
	case errors.Is(err, system.ErrNoRoom):
		g.addMessage("Something is already lying here.")
		return
	case err != nil:
		g.log.Warn("drop failed", "error", err)
		return
	}
	g.runLog.Dropped = append(g.runLog.Dropped, item.Name)
	g.audio.Play(audio.CueDrop)
	g.addMessage(fmt.Sprintf("You set down the %s.", item.Name))
}

// startRun begins a new play-through with an empty satchel.
func (g *Game) startRun() {
	g.inv = inventory.New()
	g.messages = nil
	g.runLog = newRunLog(g.opts.Player)
	g.log.Info("run started", "run", g.runLog.ID, "player", g.opts.Player)
	g.enterScene(level.FirstScene, nil)
}

// endRun leaves the scene, saves the run log and drops the run's satchel.
func (g *Game) endRun(outcome string) {
	g.leaveScene()
	g.pause.Close()
	if g.inv != nil {
		for _, it := range g.inv.Slice() {
			g.runLog.Carried = append(g.runLog.Carried, it.Name)
		}
	}
	g.runLog.Outcome = outcome
	g.runLog.Ended = time.Now()
	saveRunLog(g.opts.RunLogDir, g.runLog, g.log)
	g.inv = nil
}

// enterScene loads id and attaches the HUD to the satchel. spawn, when not
// nil, overrides the layout's start position.
func (g *Game) enterScene(id level.SceneID, spawn *component.Position) {
	next, err := level.Load(id)
	if err != nil {
		g.log.Error("scene load failed", "scene", id, "error", err)
		g.addMessage("The way is blocked.")
		return
	}
	g.leaveScene()
	g.scene = next
	if spawn != nil {
		g.scene.MovePlayer(*spawn)
	}
	g.subs = append(g.subs,
		g.inv.Subscribe(g.slots.Update),
		g.inv.Subscribe(g.hand.Update),
	)
	g.inv.Refresh()
	g.updateView()

	g.runLog.Scenes = append(g.runLog.Scenes, string(id))
	g.log.Info("scene entered", "scene", id, "carried", g.inv.Len())
	g.addMessage(fmt.Sprintf("You enter %s.", g.scene.Title))
	if lore := assets.SceneLore[string(id)]; len(lore) > 0 {
		g.addMessage(lore[g.rng.Intn(len(lore))])
	}
}

// leaveScene detaches the HUD listeners and unloads the scene.
func (g *Game) leaveScene() {
	if g.scene == nil {
		return
	}
	for _, id := range g.subs {
		g.inv.Unsubscribe(id)
	}
	g.subs = g.subs[:0]
	g.scene = nil
}

func (g *Game) updateView() {
	radius := system.ViewRadius(g.settings.ViewRadius(), g.scene.PlayerStance())
	system.UpdateView(g.scene, g.scene.PlayerID, radius)
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}

// hint returns the pickup prompt for the item in reach, if any.
func (g *Game) hint() string {
	id, ok := system.PickableInReach(g.scene, g.scene.PlayerID)
	if !ok {
		return ""
	}
	p, _ := g.scene.Pickables.Get(id)
	return render.PickupHint(p.Name)
}

func (g *Game) draw() {
	switch g.State() {
	case StateQuit:
		return
	case StatePlaying, StatePaused:
		g.renderer.DrawScene(g.scene)
		g.renderer.DrawHUD(&g.slots, &g.hand, render.Status{
			Title:     g.scene.Title,
			Hint:      g.hint(),
			Facing:    g.scene.PlayerFacing(),
			Crouching: g.scene.PlayerStance() == component.StanceCrouching,
			Messages:  g.messages,
		})
		if g.pause.Open() {
			g.renderer.DrawPause(g.pause, g.settings)
		}
	default:
		g.renderer.DrawMainMenu(g.mainMenu, g.settings, assets.Credits)
	}
	g.renderer.Show()
}
