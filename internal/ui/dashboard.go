// Package ui renders the library landing screen in the terminal.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"library_landing/internal/animator"
	"library_landing/internal/domain"
	"library_landing/internal/scheduler"
)

// Acquirer yields the statistics to show. It must not fail.
type Acquirer interface {
	Acquire(ctx context.Context) domain.Snapshot
}

type Config struct {
	FrameInterval   time.Duration
	ScrollDuration  time.Duration
	Toast           ToastTiming
	RevealThreshold float64
	RevealMargin    int
	// ExitWhenDone quits once the counters and toasts have settled.
	ExitWhenDone bool
}

func DefaultConfig() Config {
	return Config{
		FrameInterval:   16 * time.Millisecond,
		ScrollDuration:  500 * time.Millisecond,
		Toast:           DefaultToastTiming(),
		RevealThreshold: 0.1,
		RevealMargin:    1,
	}
}

// Section anchors, in page order.
const (
	SectionStats    = "stats"
	SectionFeatures = "features"
	SectionPopular  = "popular"
)

var sectionKeys = map[string]string{
	"1": SectionStats,
	"2": SectionFeatures,
	"3": SectionPopular,
}

type statCard struct {
	element string
	label   string
}

var statCards = []statCard{
	{domain.ElementTotalBooks, "Total Books"},
	{domain.ElementTotalStudents, "Students"},
	{domain.ElementBooksIssued, "Books Issued"},
	{domain.ElementAvailableBooks, "Available"},
}

type featureCard struct {
	id    string
	title string
	body  string
}

var featureCards = []featureCard{
	{"feature-catalogue", "Catalogue", "Search books by title, author or category."},
	{"feature-students", "Students", "Register students and track their loans."},
	{"feature-issues", "Issues & Returns", "Issue books, record returns, flag overdue loans."},
	{"feature-recommendations", "Recommendations", "Suggestions based on borrowing history."},
}

type (
	frameMsg time.Time
	statsMsg domain.Snapshot
)

// Model is the bubbletea model of the landing screen.
type Model struct {
	cfg      Config
	styles   *Styles
	acquirer Acquirer
	ctx      context.Context

	frames   *scheduler.Frames
	store    *animator.Store
	animator *animator.Animator
	toaster  *Toaster
	observer *RevealObserver
	scroller *Scroller

	snapshot *domain.Snapshot
	tasks    map[string]*animator.Task
	width    int
	height   int
	// sized is set by the first WindowSizeMsg; reveals wait for it.
	sized bool
	focus int
	cards []string
}

// NewModel builds the landing screen. The animator must schedule on frames
// and render into store.
func NewModel(ctx context.Context, cfg Config, acquirer Acquirer, frames *scheduler.Frames, store *animator.Store, anim *animator.Animator) *Model {
	for _, c := range statCards {
		store.Add(c.element, "0")
	}

	m := &Model{
		cfg:      cfg,
		styles:   DefaultStyles(),
		acquirer: acquirer,
		ctx:      ctx,
		frames:   frames,
		store:    store,
		animator: anim,
		toaster:  NewToaster(frames, cfg.Toast),
		observer: NewRevealObserver(cfg.RevealThreshold, cfg.RevealMargin),
		scroller: NewScroller(frames, cfg.ScrollDuration),
		width:    80,
		height:   24,
		focus:    -1,
	}
	for _, c := range statCards {
		m.cards = append(m.cards, "stat-"+c.element)
	}
	for _, f := range featureCards {
		m.cards = append(m.cards, f.id)
	}
	m.relayout()
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.acquire(), m.tick())
}

func (m *Model) acquire() tea.Cmd {
	return func() tea.Msg {
		return statsMsg(m.acquirer.Acquire(m.ctx))
	}
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsMsg:
		snap := domain.Snapshot(msg)
		m.snapshot = &snap
		m.tasks = m.animator.Animate(snap.Stats.Counters())
		level, message := noticeFor(snap.Origin)
		m.toaster.Show(message, level)
		m.relayout()
		return m, nil

	case frameMsg:
		m.frames.RunFrame(time.Time(msg))
		m.reveal()
		if m.cfg.ExitWhenDone && m.settled() {
			return m, tea.Quit
		}
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.sized = true
		m.relayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.focus = (m.focus + 1) % len(m.cards)
	case "shift+tab":
		if m.focus <= 0 {
			m.focus = len(m.cards) - 1
		} else {
			m.focus--
		}
	case "down", "j":
		m.scroller.ScrollBy(1)
	case "up", "k":
		m.scroller.ScrollBy(-1)
	case "pgdown", " ":
		m.scroller.ScrollBy(m.viewportHeight())
	case "pgup":
		m.scroller.ScrollBy(-m.viewportHeight())
	default:
		if section, ok := sectionKeys[key]; ok {
			m.ScrollToSection(section)
		}
	}
	m.reveal()
	return m, nil
}

// ScrollToSection smoothly scrolls to a section anchor; unknown anchors are ignored.
func (m *Model) ScrollToSection(section string) {
	_, _, anchors := m.layout()
	if row, ok := anchors[section]; ok {
		m.scroller.ScrollTo(row)
	}
}

// settled reports whether the stats arrived and nothing is animating.
func (m *Model) settled() bool {
	if m.snapshot == nil || len(m.toaster.Active()) > 0 {
		return false
	}
	for _, t := range m.tasks {
		if t.State() != animator.Done {
			return false
		}
	}
	return true
}

func (m *Model) viewportHeight() int {
	return max(m.height-1, 1)
}

func (m *Model) relayout() {
	lines, boxes, _ := m.layout()
	m.observer.Observe(boxes...)
	m.scroller.SetMax(len(lines) - m.viewportHeight())
	m.reveal()
}

// reveal is a no-op until the terminal size is known.
func (m *Model) reveal() {
	if !m.sized {
		return
	}
	m.observer.Update(m.scroller.Offset(), m.viewportHeight())
}

func (m *Model) View() string {
	lines, _, _ := m.layout()

	top := m.scroller.Offset()
	bottom := min(top+m.viewportHeight(), len(lines))
	visible := append([]string(nil), lines[min(top, len(lines)):bottom]...)

	for i, t := range m.toaster.Active() {
		if i >= len(visible) {
			break
		}
		visible[i] = m.renderToast(t)
	}

	return strings.Join(visible, "\n") + "\n" +
		m.styles.Help.Render("tab focus • 1-3 jump to section • ↑/↓ scroll • q quit")
}

func (m *Model) renderToast(t *Toast) string {
	box := m.styles.ToastStyle(t.Level).Render(t.Message)
	w := lipgloss.Width(box)
	left := max(m.width-w, 0) + int(t.Offset()*float64(w))
	return lipgloss.NewStyle().MaxWidth(m.width).Render(strings.Repeat(" ", left) + box)
}

// layout renders the whole page and returns its lines, the card boxes and
// the first row of each section.
func (m *Model) layout() ([]string, []Box, map[string]int) {
	var lines []string
	var boxes []Box
	anchors := make(map[string]int)

	add := func(block string) int {
		top := len(lines)
		lines = append(lines, strings.Split(block, "\n")...)
		return top
	}

	add(m.styles.Title.Render("Library Management System"))
	add(m.styles.Subtitle.Render("Catalogue, circulation and students in one place."))

	anchors[SectionStats] = add(m.styles.Section.Render("At a glance"))
	var cards []string
	for _, c := range statCards {
		id := "stat-" + c.element
		cards = append(cards, m.cardStyle(id).Render(
			m.styles.CardValue.Render(m.store.Text(c.element))+"\n"+m.styles.CardLabel.Render(c.label),
		))
	}
	boxes = append(boxes, m.row(add, cards, m.cards[:len(statCards)])...)
	if m.snapshot != nil && m.snapshot.Stats.RecentIssues != nil {
		add(m.styles.Muted.Render(fmt.Sprintf("%d issues in the last 7 days", *m.snapshot.Stats.RecentIssues)))
	}

	anchors[SectionFeatures] = add(m.styles.Section.Render("Features"))
	for i := 0; i < len(featureCards); i += 2 {
		var row []string
		var ids []string
		for _, f := range featureCards[i:min(i+2, len(featureCards))] {
			row = append(row, m.cardStyle(f.id).Width(38).Render(
				m.styles.CardValue.Render(f.title)+"\n"+m.styles.CardLabel.Render(f.body),
			))
			ids = append(ids, f.id)
		}
		boxes = append(boxes, m.row(add, row, ids)...)
	}

	anchors[SectionPopular] = add(m.styles.Section.Render("Popular books"))
	switch {
	case m.snapshot == nil:
		add(m.styles.Muted.Render("Loading…"))
	case len(m.snapshot.Stats.PopularBooks) == 0:
		add(m.styles.Muted.Render("No circulation data yet."))
	default:
		for i, b := range m.snapshot.Stats.PopularBooks {
			add(fmt.Sprintf("%d. %s %s", i+1, b.Title, m.styles.Muted.Render(fmt.Sprintf("(%d issues)", b.IssueCount))))
		}
	}

	return lines, boxes, anchors
}

func (m *Model) row(add func(string) int, cards []string, ids []string) []Box {
	block := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	top := add(block)
	h := lipgloss.Height(block)

	boxes := make([]Box, 0, len(ids))
	for _, id := range ids {
		boxes = append(boxes, Box{ID: id, Top: top, Height: h})
	}
	return boxes
}

func (m *Model) cardStyle(id string) lipgloss.Style {
	switch {
	case m.focus >= 0 && m.cards[m.focus] == id:
		return m.styles.CardFocused
	case !m.observer.Revealed(id):
		return m.styles.CardHidden
	default:
		return m.styles.Card
	}
}

// Focused returns the id of the focused card, or "" when none is.
func (m *Model) Focused() string {
	if m.focus < 0 {
		return ""
	}
	return m.cards[m.focus]
}
