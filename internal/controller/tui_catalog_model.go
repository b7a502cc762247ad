package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

// chromeHeight is the number of rows used by everything except the list:
// title (2), summary (2), footer (1), border (2), header (2).
const chromeHeight = 9

// siteDelegate renders one catalog site per row.
type siteDelegate struct {
	offset int
}

func (d siteDelegate) Height() int  { return 1 }
func (d siteDelegate) Spacing() int { return 0 }
func (d siteDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d siteDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	site, ok := item.(siteItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	var labelStyle, codeStyle lipgloss.Style

	var displayLabel string

	width := m.Width() - 8 // code column (6) + spacing (2)

	if isSelected {
		labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		codeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(6).
			Align(lipgloss.Right)

		displayLabel = animateScroll(site.label(), width, d.offset)
	} else {
		labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		codeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(6).
			Align(lipgloss.Right)

		if site.number == 0 {
			codeStyle = codeStyle.Foreground(lipgloss.Color("9"))
		}

		displayLabel = truncateToWidth(site.label(), width)
	}

	line := fmt.Sprintf("%s  %s",
		codeStyle.Render(fmt.Sprintf("%d", site.number)),
		labelStyle.Render(displayLabel),
	)
	_, _ = fmt.Fprint(w, line)
}

// animateScroll returns a width-wide window over text that advances with
// offset after a short pause, wrapping around with a gap.
func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const (
		gap   = "   "
		pause = 5 // ticks before scrolling starts
	)

	if offset < pause {
		return truncateToWidth(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := range width {
		res = append(res, runes[(start+i)%n])
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

// catalogModel browses the sites of a saved catalog.
type catalogModel struct {
	width        int
	height       int
	siteList     list.Model
	delegate     siteDelegate
	total        int
	totalFiles   int
	unresolved   int
	rendered     bool
	animOffset   int
	lastSelected int
}

func newCatalogModel() catalogModel {
	delegate := siteDelegate{}
	siteList := list.New([]list.Item{}, delegate, 80, 20)
	siteList.SetShowPagination(false)
	siteList.SetShowFilter(true)
	siteList.SetShowHelp(false)
	siteList.SetShowTitle(false)
	siteList.SetShowStatusBar(false)
	siteList.FilterInput.Placeholder = "Filter by path, code or message…"

	return catalogModel{
		width:        80,
		height:       24,
		siteList:     siteList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m catalogModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m catalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.siteList.SetWidth(m.width)

	case tickMsg:
		if m.siteList.FilterState() != list.Filtering && m.rendered {
			m.animOffset++
			m.delegate.offset = m.animOffset
			m.siteList.SetDelegate(m.delegate)

			return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.siteList.FilterState() == list.Filtering && msg.String() == "q" {
				break
			}

			return m, tea.Quit
		}

		m.siteList, cmd = m.siteList.Update(msg)

		if m.siteList.Index() != m.lastSelected {
			m.lastSelected = m.siteList.Index()
			m.animOffset = 0
			m.delegate.offset = 0
			m.siteList.SetDelegate(m.delegate)
		}

		return m, cmd

	case catalogMsg:
		m = m.handleCatalogMsg(msg)
	}

	return m, cmd
}

func (m catalogModel) handleCatalogMsg(msg catalogMsg) catalogModel {
	m.total = len(msg.sites)
	m.totalFiles = msg.files
	m.unresolved = msg.unresolved

	items := make([]list.Item, 0, len(msg.sites))
	for _, site := range msg.sites {
		items = append(items, newSiteItem(site))
	}

	m.siteList.SetItems(items)
	m.rendered = true

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

// needsPagination reports whether the list overflows the terminal.
func (m catalogModel) needsPagination() bool {
	return m.total+chromeHeight > m.height
}

func (m catalogModel) View() string {
	if !m.rendered {
		return "Loading catalog…\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("Exception Catalog")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Sites: %s   Files: %s   Unresolved: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
		accentStyle.Render(fmt.Sprintf("%d", m.totalFiles)),
		accentStyle.Render(fmt.Sprintf("%d", m.unresolved)),
	))

	table := m.renderTable()

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		table,
		footer,
	)
}

func (m catalogModel) renderTable() string {
	listHeight := m.height - chromeHeight
	if listHeight < 5 {
		listHeight = 5
	}

	// window width minus margin (2), border (2) and padding (2)
	listWidth := m.width - 6

	m.siteList.SetHeight(listHeight)
	m.siteList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%6s  %s", "Code", "Name  Path  Template"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.siteList.View(),
		),
	)
}
