// Package app wires the catalog, store, engine, and narrator together
// and runs the Bubble Tea program.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"wordventure/internal/catalog"
	"wordventure/internal/engine"
	"wordventure/internal/game"
	"wordventure/internal/narrator"
	"wordventure/internal/progress"
	"wordventure/internal/router"
	"wordventure/internal/screen"
	"wordventure/internal/screens/adventure"
	"wordventure/internal/screens/profiles"
	"wordventure/internal/screens/stickers"
	"wordventure/internal/screens/themes"
	"wordventure/internal/screens/welcome"
	"wordventure/internal/storage"
	"wordventure/internal/ui/layout"
)

// Options configure a run of the game.
type Options struct {
	// DataPath overrides the default data file location.
	DataPath string
	// Backend selects the persistence backend: "file" or "sqlite".
	Backend string
	// UnlockAll unlocks every theme and level for this run only.
	UnlockAll bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   *game.Deps
	router *router.Router
	width  int
	height int
}

func newAppModel(deps *game.Deps) AppModel {
	profilesFactory := func() screen.Screen {
		return profiles.New(deps, func() screen.Screen {
			return themes.New(deps,
				func(themeID string, level int) screen.Screen {
					return adventure.New(deps, themeID, level)
				},
				func() screen.Screen {
					return stickers.New(deps)
				})
		})
	}

	return AppModel{
		deps:   deps,
		router: router.New(welcome.New(profilesFactory)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				m.deps.ClearNarration()
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	stars, stickerCount := 0, 0
	if p := m.deps.CurrentProfile(); p != nil {
		stars = p.TotalStars
		stickerCount = len(p.Stickers)
	}
	header := layout.RenderHeader(title, stars, stickerCount, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.deps.Narration(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// OpenBlob resolves and opens the persistence backend from options.
func OpenBlob(opts Options) (storage.Blob, error) {
	switch opts.Backend {
	case "", "file":
		path := opts.DataPath
		if path == "" {
			var err error
			path, err = storage.DefaultDataPath("progress.json")
			if err != nil {
				return nil, err
			}
		}
		return storage.OpenFile(path)
	case "sqlite":
		path := opts.DataPath
		if path == "" {
			var err error
			path, err = storage.DefaultDataPath("progress.db")
			if err != nil {
				return nil, err
			}
		}
		return storage.OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}

// Setup opens storage and builds the shared game dependencies.
func Setup(opts Options) (*game.Deps, storage.Blob, error) {
	blob, err := OpenBlob(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}

	store, err := progress.Open(blob)
	if err != nil {
		// A load failure is non-fatal: the game runs on a fresh
		// in-memory document and keeps trying to save.
		fmt.Fprintln(os.Stderr, "warning:", err)
	}
	store.SetUnlockAllOverride(opts.UnlockAll)

	cat, err := catalog.Load()
	if err != nil {
		_ = blob.Close()
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}

	deps := &game.Deps{Catalog: cat, Store: store}
	nar := narrator.New(store, deps.Say)
	deps.Engine = engine.New(cat, store, engine.WithListener(nar))
	return deps, blob, nil
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	deps, blob, err := Setup(opts)
	if err != nil {
		return err
	}
	defer func() { _ = blob.Close() }()

	p := tea.NewProgram(newAppModel(deps))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
