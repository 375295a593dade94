package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"escaperoom/pkg/game/config"
	"escaperoom/pkg/game/devtools"
	"escaperoom/pkg/game/gameplay"
	"escaperoom/pkg/game/locale"
	gamemenu "escaperoom/pkg/game/menu"
	"escaperoom/pkg/game/notes"
	"escaperoom/pkg/game/renderer"
	ebitenrenderer "escaperoom/pkg/game/renderer/ebiten"
	"escaperoom/pkg/game/renderer/tui"
	"escaperoom/pkg/game/state"
)

// app holds what every session of one process shares
type app struct {
	cfg   config.GameConfig
	store notes.Store
	prefs *config.Preferences

	// startStage is the developer -stage flag; skip is false without it
	startStage state.Stage
	skip       bool
}

func main() {
	prefs, err := config.LoadPreferences(config.DefaultPreferencesPath())
	if err != nil {
		log.Printf("Warning: could not load preferences: %v", err)
		prefs = config.DefaultPreferences()
	}

	configPath := flag.String("config", prefs.GameConfig, "puzzle configuration file (YAML); built-in puzzle when empty")
	lang := flag.String("lang", prefs.Language, "language (en, nl); detected from LANG when empty")
	rendererName := flag.String("renderer", prefs.Renderer, "renderer to use: tui or ebiten")
	notesBackend := flag.String("notes-backend", prefs.NotesBackend, "where notes are kept: file, sqlite or memory")
	notesPath := flag.String("notes-path", prefs.NotesPath, "notes directory (file) or database (sqlite)")
	stage := flag.String("stage", "", "start at this stage (for developer testing), e.g. config or restart")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("escaperoom %s (%s)\n", renderer.Version, renderer.Commit)
		return
	}

	if err := locale.Load(locale.Match(*lang, os.Getenv("LC_ALL"), os.Getenv("LANG"))); err != nil {
		log.Fatalf("Cannot load language: %v", err)
	}

	a := &app{prefs: prefs, cfg: config.Default()}
	if *configPath != "" {
		if a.cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Cannot load puzzle configuration: %v", err)
		}
	}

	if *stage != "" {
		s, ok := devtools.ParseStage(*stage)
		if !ok {
			log.Fatalf("Unknown stage %q", *stage)
		}
		a.startStage, a.skip = s, true
	}

	path := *notesPath
	if path == "" {
		path = defaultNotesPath(*notesBackend)
	}
	a.store, err = notes.Open(*notesBackend, path)
	if err != nil {
		log.Fatalf("Cannot open notes storage: %v", err)
	}
	defer a.store.Close()

	switch *rendererName {
	case config.RendererEbiten:
		r := ebitenrenderer.New()
		renderer.SetRenderer(r)
		renderer.Init()
		if err := r.Run(a.run); err != nil {
			log.Fatalf("Window error: %v", err)
		}
	case config.RendererTUI, "":
		renderer.SetRenderer(tui.New())
		renderer.Init()
		a.run()
	default:
		log.Fatalf("Unknown renderer %q", *rendererName)
	}
}

// defaultNotesPath keeps notes next to the preferences file
func defaultNotesPath(backend string) string {
	dir := filepath.Dir(config.DefaultPreferencesPath())
	if dir == "." {
		dir = ".escaperoom"
	}
	if backend == notes.BackendSQLite {
		return filepath.Join(dir, "notes.db")
	}
	return filepath.Join(dir, "notes")
}

// run shows the title menu until the player quits
func (a *app) run() {
	for {
		switch gamemenu.RunMainMenu(a.switchLanguage) {
		case gamemenu.MainMenuActionStart:
			if quit := a.play(); quit {
				return
			}
		default:
			return
		}
	}
}

// play runs one session and reports whether the player quit the program
// rather than returning to the title menu.
func (a *app) play() bool {
	c := gameplay.NewSession(a.cfg, a.store, a.prefs)
	g := c.Game()
	if a.skip {
		devtools.SkipToStage(g, a.startStage)
	}

	for !g.Quit && !g.QuitToTitle {
		renderer.Clear()
		renderer.RenderFrame(g)
		c.ProcessIntent(renderer.GetInput())
	}
	return g.Quit
}

// switchLanguage cycles the title menu to the next language
func (a *app) switchLanguage() {
	next := locale.Next(locale.Current())
	if err := locale.Load(next); err != nil {
		log.Printf("loading language %s: %v", next, err)
		return
	}
	if err := a.prefs.SetLanguage(locale.Current()); err != nil {
		log.Printf("saving language preference: %v", err)
	}
}
