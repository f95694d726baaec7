package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// chromeHeight is the number of lines the browser draws around the list:
// title (2), summary (2), footer (1), border (2) and column headers (2).
const chromeHeight = 9

type tickMsg time.Time

// browserItem is one row of the browser: a mutant or a mutator.
type browserItem struct {
	title  string
	detail string
	badge  string
}

func (i browserItem) FilterValue() string { return i.title + " " + i.detail }

type browserDelegate struct {
	offset int
}

func (d browserDelegate) Height() int  { return 2 }
func (d browserDelegate) Spacing() int { return 0 }
func (d browserDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d browserDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	row, ok := item.(browserItem)
	if !ok {
		return
	}

	width := m.Width() - 10 // badge (8) + spacing (2)
	badgeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Width(8)
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	detailStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	title := truncateToWidth(row.title, width)

	if index == m.Index() {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		badgeStyle = selected.Width(8)
		titleStyle = selected
		title = animateScroll(row.title, width, d.offset)
	}

	_, _ = fmt.Fprintf(w, "%s  %s\n%s  %s",
		badgeStyle.Render(row.badge),
		titleStyle.Render(title),
		lipgloss.NewStyle().Width(8).Render(""),
		detailStyle.Render(truncateToWidth(row.detail, width)),
	)
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	// Initial pause before scrolling starts (in ticks)
	pause := 5
	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + "   ")
	start := (offset - pause) % len(runes)

	res := make([]rune, 0, width)
	for i := 0; i < width; i++ {
		res = append(res, runes[(start+i)%len(runes)])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// browserModel lists mutants or mutators with filtering and scrolling.
type browserModel struct {
	heading      string
	summary      string
	columns      string
	width        int
	height       int
	items        list.Model
	delegate     browserDelegate
	animOffset   int
	lastSelected int
	interactive  bool
}

func newBrowserModel(heading, summary, columns string, items []list.Item) browserModel {
	delegate := browserDelegate{}
	itemList := list.New(items, delegate, 80, 20)
	itemList.SetShowPagination(false)
	itemList.SetShowFilter(true)
	itemList.SetShowHelp(false)
	itemList.SetShowTitle(false)
	itemList.SetShowStatusBar(false)
	itemList.FilterInput.Placeholder = "Filter…"

	return browserModel{
		heading:     heading,
		summary:     summary,
		columns:     columns,
		width:       80,
		height:      24,
		items:       itemList,
		delegate:    delegate,
		interactive: true,
	}
}

// static prepares the model for a one-shot render that shows every item.
func (m browserModel) static(width int) browserModel {
	m.items.SetShowFilter(false)
	m.items.SetFilteringEnabled(false)
	m.interactive = false
	m.width = width
	m.height = len(m.items.Items())*m.delegate.Height() + chromeHeight + 2

	return m
}

func (m browserModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil

	case tickMsg:
		if m.items.FilterState() == list.Filtering {
			return m, nil
		}

		m.animOffset++
		m.delegate.offset = m.animOffset
		m.items.SetDelegate(m.delegate)

		return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyMsg:
		if m.items.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			}
		}

		var cmd tea.Cmd

		m.items, cmd = m.items.Update(msg)

		if m.items.Index() != m.lastSelected {
			m.lastSelected = m.items.Index()
			m.animOffset = 0
			m.delegate.offset = 0
			m.items.SetDelegate(m.delegate)
		}

		return m, cmd
	}

	return m, nil
}

func (m browserModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	listHeight := m.height - chromeHeight
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := m.width - 6

	m.items.SetHeight(listHeight)
	m.items.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	container := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	table := container.Render(lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(m.columns),
		m.items.View(),
	))

	sections := []string{
		titleStyle.Render(m.heading),
		summaryStyle.Render(m.summary),
		table,
	}

	if m.interactive {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Align(lipgloss.Center).
			Width(m.width).
			Render("↑/k up • ↓/j down • / filter • q quit"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
