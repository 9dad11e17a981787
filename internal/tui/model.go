package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jubams/ramadan-tracker/internal/catalog"
	"github.com/jubams/ramadan-tracker/internal/engine"
	"github.com/jubams/ramadan-tracker/internal/i18n"
	"github.com/jubams/ramadan-tracker/internal/ui"
)

type boardView int

const (
	viewDay boardView = iota
	viewMatrix
)

type boardModel struct {
	ctx     context.Context
	tracker *engine.Tracker
	lang    i18n.Language

	width  int
	height int

	view     boardView
	day      int
	selected int

	lastLog string
}

func newBoardModel(ctx context.Context, tracker *engine.Tracker, lang i18n.Language) boardModel {
	return boardModel{
		ctx:     ctx,
		tracker: tracker,
		lang:    lang,
		day:     tracker.CurrentDay(),
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab", "m":
			if m.view == viewDay {
				m.view = viewMatrix
			} else {
				m.view = viewDay
			}
			return m, nil
		case "left", "h":
			if m.day > 1 {
				m.day--
			}
			return m, nil
		case "right", "l":
			if m.day < m.tracker.Period().Days {
				m.day++
			}
			return m, nil
		case "t":
			m.day = m.tracker.CurrentDay()
			m.lastLog = fmt.Sprintf("Jumped to day %d.", m.day)
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < catalog.Len()-1 {
				m.selected++
			}
			return m, nil
		case " ", "enter":
			return m.togglePrimary(), nil
		case "i":
			return m.togglePrayerField(engine.FieldInTime), nil
		case "a":
			return m.togglePrayerField(engine.FieldAthkar), nil
		case "+", "=":
			return m.adjustCounter(1), nil
		case "-", "_":
			return m.adjustCounter(-1), nil
		}
	}
	return m, nil
}

func (m boardModel) selectedItem() catalog.Item {
	return catalog.Items()[m.selected]
}

func (m boardModel) editable() bool {
	return m.tracker.Editable(m.day)
}

// set routes one field write through the tracker, clamping at this input
// boundary as the store requires of its callers.
func (m boardModel) set(it catalog.Item, field engine.Field, value any) boardModel {
	if !m.editable() {
		m.lastLog = "Day " + fmt.Sprint(m.day) + " is locked (future)."
		return m
	}
	if n, ok := value.(int); ok {
		value = engine.ClampFieldValue(it, field, n)
	}
	if err := m.tracker.UpdateField(m.ctx, m.day, it.ID, field, value); err != nil {
		m.lastLog = "Update failed: " + err.Error()
		return m
	}
	rec := m.tracker.Day(m.day)
	m.lastLog = fmt.Sprintf("%s: %d%% (day %d%%)", it.ID, rec.Items[it.ID].Completion, rec.OverallCompletion)
	return m
}

func (m boardModel) togglePrimary() boardModel {
	it := m.selectedItem()
	rec := m.tracker.Day(m.day).Items[it.ID]
	switch {
	case it.Kind == catalog.KindPrayer:
		return m.set(it, engine.FieldInTime, !rec.InTime)
	case it.GoalKind == catalog.GoalNumber:
		return m.set(it, engine.FieldValue, rec.Value+1)
	default:
		return m.set(it, engine.FieldCompleted, !rec.Completed)
	}
}

func (m boardModel) togglePrayerField(field engine.Field) boardModel {
	it := m.selectedItem()
	if it.Kind != catalog.KindPrayer {
		m.lastLog = "Not a prayer."
		return m
	}
	rec := m.tracker.Day(m.day).Items[it.ID]
	if field == engine.FieldInTime {
		return m.set(it, field, !rec.InTime)
	}
	return m.set(it, field, !rec.AthkarRead)
}

func (m boardModel) adjustCounter(delta int) boardModel {
	it := m.selectedItem()
	rec := m.tracker.Day(m.day).Items[it.ID]
	switch {
	case it.Kind == catalog.KindPrayer:
		return m.set(it, engine.FieldSunnaCompleted, rec.SunnaCompleted+delta)
	case it.GoalKind == catalog.GoalNumber:
		return m.set(it, engine.FieldValue, rec.Value+delta)
	default:
		m.lastLog = "Use space to toggle this goal."
		return m
	}
}

func (m boardModel) View() string {
	header := m.renderHeader()
	var body string
	if m.view == viewMatrix {
		body = m.renderMatrix()
	} else {
		body = m.renderDay()
	}
	return header + "\n\n" + body + "\n\n" + m.renderFooter()
}

func (m boardModel) renderHeader() string {
	p := m.tracker.Period()
	date := p.DateOf(m.day)
	hijri := p.HijriDateOf(m.day)
	lock := ""
	if !m.editable() {
		lock = " " + ui.IconLock
	}
	return fmt.Sprintf("Ramadan Tracker | Day %d/%d%s | %s | %d %s %d",
		m.day, p.Days, lock, date.Format("Mon, Jan 2"), hijri.Day, hijri.Month, hijri.Year)
}

func (m boardModel) renderDay() string {
	rec := m.tracker.Day(m.day)
	var out []string
	for i, it := range catalog.Items() {
		ir := rec.Items[it.ID]
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		name := i18n.Label(m.lang, it.ID)
		line := fmt.Sprintf("%s%s %-16s %s %3d%%", cursor, ui.KindIcon(it), name, ui.ProgressBar(ir.Completion, 12), ir.Completion)
		if i == m.selected {
			line += "   " + ui.Muted.Render(m.detail(it, ir))
		}
		out = append(out, line)
	}
	out = append(out, "")
	out = append(out, fmt.Sprintf("Overall: %d%% (%d/%d items complete)", rec.OverallCompletion, rec.CompletedItems, catalog.Len()))
	return strings.Join(out, "\n")
}

func (m boardModel) detail(it catalog.Item, ir engine.ItemRecord) string {
	switch {
	case it.Kind == catalog.KindPrayer:
		return fmt.Sprintf("in-time=%v athkar=%v sunna=%d/%d", ir.InTime, ir.AthkarRead, ir.SunnaCompleted, it.SunnaCount)
	case it.GoalKind == catalog.GoalNumber:
		return fmt.Sprintf("pages=%d/%d", ir.Value, it.Target)
	default:
		return fmt.Sprintf("done=%v", ir.Completed)
	}
}

func (m boardModel) renderMatrix() string {
	items := catalog.Items()
	current := m.tracker.CurrentDay()

	var out []string
	out = append(out, "Matrix (rows: days, columns: items in daily order)")

	for day := 1; day <= m.tracker.Period().Days; day++ {
		rec := m.tracker.Day(day)
		row := fmt.Sprintf("%3d  ", day)
		for _, it := range items {
			row += ui.ProgressCell(rec.Items[it.ID].Completion) + " "
		}
		row += fmt.Sprintf(" %3d%%", rec.OverallCompletion)
		switch day {
		case m.day:
			row = ui.SelectedRow.Render(row)
		case current:
			row += " " + ui.Gold.Render("← today")
		}
		out = append(out, row)
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	keys := "↑/↓ item · ←/→ day · space toggle · i in-time · a athkar · +/- count · t today · tab matrix · q quit"
	return ui.Muted.Render(keys) + "\n" + m.lastLog
}
