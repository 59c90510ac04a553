package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/resolvai/resolvai/internal/cli/formatter"
	"github.com/resolvai/resolvai/internal/domain"
	"github.com/resolvai/resolvai/internal/store"
)

// historyKeyMap binds the history browser keys.
type historyKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Delete key.Binding
	Back   key.Binding
	Quit   key.Binding
}

var historyKeys = historyKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "subir")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "descer")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "detalhes")),
	Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remover")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "voltar")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "sair")),
}

// studiesLoadedMsg signals that the study list has been loaded.
type studiesLoadedMsg struct {
	studies []*domain.Study
	err     error
}

// storeEventMsg carries a study change notification from the bus.
type storeEventMsg struct {
	event store.Event
}

// historyView is an interactive, navigable list of saved studies.
// It reloads itself whenever the bus reports a save or removal.
type historyView struct {
	app     *App
	studies []*domain.Study
	cursor  int
	loading bool
	err     error

	// showDetail renders the selected study full-screen.
	showDetail bool

	// confirmDelete is set after the first delete keypress.
	confirmDelete bool

	events <-chan store.Event
	cancel func()
}

func newHistoryView(app *App) *historyView {
	v := &historyView{
		app:     app,
		loading: true,
	}
	if app.Bus != nil {
		v.events, v.cancel = app.Bus.Subscribe()
	}
	return v
}

func (v *historyView) Init() tea.Cmd {
	return tea.Batch(v.loadStudies(), v.waitForEvent())
}

func (v *historyView) loadStudies() tea.Cmd {
	app := v.app
	return func() tea.Msg {
		studies, err := app.Studies.List(context.Background())
		return studiesLoadedMsg{studies: studies, err: err}
	}
}

// waitForEvent blocks on the bus subscription until a change arrives.
func (v *historyView) waitForEvent() tea.Cmd {
	if v.events == nil {
		return nil
	}
	ch := v.events
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return storeEventMsg{event: ev}
	}
}

func (v *historyView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case studiesLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.studies = msg.studies
		if v.cursor >= len(v.studies) {
			v.cursor = len(v.studies) - 1
		}
		if v.cursor < 0 {
			v.cursor = 0
		}
		return v, nil

	case storeEventMsg:
		return v, tea.Batch(v.loadStudies(), v.waitForEvent())

	case tea.KeyMsg:
		return v.updateKeys(msg)
	}
	return v, nil
}

func (v *historyView) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if v.showDetail {
		switch {
		case key.Matches(msg, historyKeys.Back), key.Matches(msg, historyKeys.Select):
			v.showDetail = false
		case key.Matches(msg, historyKeys.Quit):
			if msg.String() == "ctrl+c" {
				return v.quit()
			}
			v.showDetail = false
		}
		return v, nil
	}

	switch {
	case key.Matches(msg, historyKeys.Up):
		v.confirmDelete = false
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(msg, historyKeys.Down):
		v.confirmDelete = false
		if v.cursor < len(v.studies)-1 {
			v.cursor++
		}
	case key.Matches(msg, historyKeys.Select):
		if len(v.studies) > 0 {
			v.showDetail = true
		}
	case key.Matches(msg, historyKeys.Delete):
		if len(v.studies) == 0 {
			break
		}
		if !v.confirmDelete {
			v.confirmDelete = true
			break
		}
		v.confirmDelete = false
		return v, v.removeSelected()
	case key.Matches(msg, historyKeys.Back), key.Matches(msg, historyKeys.Quit):
		return v.quit()
	}
	return v, nil
}

func (v *historyView) quit() (tea.Model, tea.Cmd) {
	if v.cancel != nil {
		v.cancel()
	}
	return v, tea.Quit
}

// removeSelected deletes the study under the cursor. The resulting
// bus event triggers the reload, so no list surgery happens here.
func (v *historyView) removeSelected() tea.Cmd {
	app := v.app
	id := v.studies[v.cursor].ID
	return func() tea.Msg {
		if err := app.Studies.Remove(context.Background(), id); err != nil {
			return studiesLoadedMsg{err: err}
		}
		return nil
	}
}

func (v *historyView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Carregando estudos...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Erro: "+v.err.Error())
	}

	if v.showDetail && v.cursor < len(v.studies) {
		return "\n" + formatter.FormatStudyDetail(v.studies[v.cursor]) + "\n\n  " +
			formatter.Dim("esc: voltar")
	}

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Histórico") + "\n\n")

	if len(v.studies) == 0 {
		b.WriteString("  " + formatter.Dim("Nenhum estudo salvo ainda.") + "\n")
		return b.String()
	}

	for i, s := range v.studies {
		cursor := "  "
		titleStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			titleStyle = formatter.StyleBold
		}

		b.WriteString(fmt.Sprintf("  %s%s  %s  %s  %s\n",
			cursor,
			formatter.TruncID(s.ID),
			formatter.MethodBadge(s.Method),
			titleStyle.Render(s.Title),
			formatter.Dim(formatter.HumanTimestamp(s.Date)),
		))
	}

	b.WriteString("\n  ")
	if v.confirmDelete {
		b.WriteString(formatter.StyleYellow.Render("pressione d novamente para remover"))
	} else {
		b.WriteString(formatter.Dim(renderKeyHints(historyKeys.Select, historyKeys.Delete, historyKeys.Quit)))
	}
	b.WriteString("\n")

	return b.String()
}

// renderKeyHints joins key binding help entries for the footer line.
func renderKeyHints(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
