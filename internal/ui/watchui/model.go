// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package watchui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/relist-tui/internal/history"
	"github.com/jeranaias/relist-tui/internal/listdiff"
	"github.com/jeranaias/relist-tui/internal/roster"
	"github.com/jeranaias/relist-tui/internal/ui/components"
	"github.com/jeranaias/relist-tui/internal/ui/styles"
	"github.com/jeranaias/relist-tui/internal/watch"
)

// =============================================================================
// WATCH MODEL
// =============================================================================

// Model is the Bubble Tea model for the watch screen. It owns the current
// snapshot and reconciles each reload against it, replaying the resulting
// change set on the roster view instead of redrawing from scratch.
type Model struct {
	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int

	// Watched file
	path    string
	watcher *watch.Watcher

	// Current snapshot; nil until the first successful load
	snapshot *roster.Snapshot

	// Revision journal; nil when history is disabled
	journal *history.Journal

	// UI components
	rosterView *components.RosterView
	header     *components.Header
	statusBar  *components.StatusBar
	spin       spinner.Model
	helpView   help.Model

	// Key bindings
	keyMap KeyMap

	// State
	loading  bool
	paused   bool
	showHelp bool
	lastErr  error
}

// New creates the watch screen for the given roster file. The watcher must
// already be started; journal may be nil.
func New(theme *styles.Theme, path string, watcher *watch.Watcher, journal *history.Journal) Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = theme.Spinner

	header := components.NewHeader(theme)
	header.Path = path

	statusBar := components.NewStatusBar(theme)
	statusBar.Path = path

	return Model{
		theme:      theme,
		path:       path,
		watcher:    watcher,
		journal:    journal,
		rosterView: components.NewRosterView(theme),
		header:     header,
		statusBar:  statusBar,
		spin:       sp,
		helpView:   help.New(),
		keyMap:     DefaultKeyMap(),
		loading:    true,
	}
}

// Init kicks off the first load and the change-wait loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadRosterCmd(m.path),
		WaitForChangeCmd(m.watcher),
		m.spin.Tick,
	)
}

// =============================================================================
// RECONCILIATION
// =============================================================================

// reconcile diffs a fresh snapshot against the current one and replays the
// changes on the roster view. Returns follow-up commands: the journal write
// and the highlight fade-out.
func (m *Model) reconcile(snap *roster.Snapshot) ([]tea.Cmd, error) {
	if m.snapshot == nil {
		// First load, nothing to diff against.
		m.rosterView.SetItems(snap.Items)
		m.snapshot = snap
		m.statusBar.ItemCount = len(snap.Items)
		m.header.SetTitle(snap.Title)
		m.statusBar.SetStatus(components.StatusWatching)
		return nil, nil
	}

	cs, err := listdiff.Compute(
		m.snapshot.Items, func(it roster.Item) string { return it.ID },
		snap.Items, func(it roster.Item) string { return it.ID },
		roster.Item.Equal,
	)
	if err != nil {
		return nil, err
	}

	m.rosterView.ApplyChanges(snap.Items, cs)
	m.snapshot = snap
	m.statusBar.ItemCount = len(snap.Items)
	m.header.SetTitle(snap.Title)

	if cs.Empty() {
		m.statusBar.SetStatus(components.StatusWatching)
		return nil, nil
	}

	m.statusBar.SetStatus(components.StatusChanged)
	m.statusBar.SetChange(cs.Summary())

	cmds := []tea.Cmd{ClearHighlightsCmd()}
	if m.journal != nil {
		cmds = append(cmds, RecordRevisionCmd(m.journal, history.Revision{
			Source:     snap.Path,
			ItemCount:  len(snap.Items),
			Removals:   len(cs.Removals),
			Insertions: len(cs.Insertions),
			Moves:      len(cs.Moves),
			Updates:    len(cs.Updates),
		}))
	}
	return cmds, nil
}
