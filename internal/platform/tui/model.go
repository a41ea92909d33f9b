package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/display"
	"github.com/vovakirdan/pocket-arcade/internal/input"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/scene"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

// Model is the Bubble Tea model hosting one pocket console.
type Model struct {
	console  *scene.Console
	fb       *display.Framebuffer
	dec      *input.Decoder
	store    *storage.Store
	runtime  core.RuntimeConfig
	termW    int
	termH    int
	quitting bool

	// Score bookkeeping per run of the active game scene.
	lastScene  string
	scoreSaved bool
}

// NewModel builds a console with every registered scene and boots it
// into the menu. store may be nil to disable score persistence.
func NewModel(store *storage.Store, rt core.RuntimeConfig, tun config.Config) (*Model, error) {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	fb := display.NewFramebuffer(rt.ScreenW, rt.ScreenH)
	dec := input.NewDecoder()
	con := scene.NewConsole(dec, time.Duration(tun.Console.MenuPauseMS)*time.Millisecond)

	env := registry.Env{Surface: fb, Runtime: rt, Tunables: tun, Seed: rt.Seed}
	for _, sc := range registry.CreateAll(env) {
		con.Add(sc)
	}
	if err := con.Boot("menu", time.Now()); err != nil {
		return nil, err
	}

	return &Model{
		console: con,
		fb:      fb,
		dec:     dec,
		store:   store,
		runtime: rt,
	}, nil
}

// Decoder exposes the input decoder so external feeds (the TCP bridge)
// can share the console's command stream.
func (m *Model) Decoder() *input.Decoder { return m.dec }

func (m *Model) Init() tea.Cmd {
	return tickCmd(m.runtime.PollRate)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.termW = msg.Width
		m.termH = msg.Height
		return m, nil

	case TickMsg:
		m.console.Step(time.Time(msg))
		m.saveScoreOnGameOver()
		return m, tickCmd(m.runtime.PollRate)
	}

	return m, nil
}

// handleKey translates terminal keys into wireless command bytes and
// feeds them to the decoder.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "w":
		m.dec.Feed('U')
	case "down", "s":
		m.dec.Feed('D')
	case "left", "a":
		m.dec.Feed('L')
	case "right", "d":
		m.dec.Feed('R')
	case " ", "enter":
		m.dec.Feed('S')
	case "esc", "backspace":
		m.dec.Feed('B')
	default:
		// Unmapped single letters pass through as raw serial bytes.
		if len(msg.String()) == 1 {
			m.dec.Feed(msg.String()[0])
		}
	}
	return m, nil
}

// saveScoreOnGameOver records a finished run's score once. Re-entering
// the scene, or switching scenes, arms the save again.
func (m *Model) saveScoreOnGameOver() {
	active := m.console.Active()
	if active == nil {
		return
	}
	if active.ID() != m.lastScene {
		m.lastScene = active.ID()
		m.scoreSaved = false
	}

	st := active.Status()
	if !st.Over {
		m.scoreSaved = false
		return
	}
	if m.scoreSaved || st.Score <= 0 {
		return
	}
	if m.store != nil {
		//nolint:errcheck // Best-effort save, play continues regardless
		m.store.SaveScore(active.ID(), st.Score)
	}
	m.scoreSaved = true
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.termW > 0 && (m.termW < m.runtime.ScreenW || m.termH < m.runtime.ScreenH/2) {
		return "terminal too small: need at least 128x80 cells\npress q to quit\n"
	}
	return RenderFrame(m.fb)
}

// Launch jumps the console straight into a scene, keeping the menu as
// the back target.
func (m *Model) Launch(sceneID string) error {
	return m.console.Launch(sceneID, time.Now())
}

// Run starts the Bubble Tea program hosting the console, booted into
// startScene ("" or "menu" for the menu). If listenAddr is non-empty,
// a TCP command bridge feeds the same decoder.
func Run(store *storage.Store, rt core.RuntimeConfig, tun config.Config, startScene, listenAddr string) error {
	model, err := NewModel(store, rt, tun)
	if err != nil {
		return err
	}
	if startScene != "" && startScene != "menu" {
		if err := model.Launch(startScene); err != nil {
			return err
		}
	}

	if listenAddr != "" {
		ln, bridgeErr := StartCommandBridge(listenAddr, model.Decoder())
		if bridgeErr != nil {
			return bridgeErr
		}
		defer ln.Close()
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
