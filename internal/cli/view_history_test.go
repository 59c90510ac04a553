package cli

import (
	"context"
	"testing"

	"github.com/resolvai/resolvai/internal/store"
	"github.com/resolvai/resolvai/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHistoryDriver(t *testing.T, app *App) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newHistoryView(app))
	d.DrainInit()
	return d
}

func TestHistoryView_EmptyState(t *testing.T) {
	app := testApp(t)
	d := newHistoryDriver(t, app)

	assert.Contains(t, d.View(), "Nenhum estudo salvo ainda")
}

func TestHistoryView_ListsStudies(t *testing.T) {
	app := testApp(t)
	seedStudy(t, app, "Retrabalho na expedição")
	seedStudy(t, app, "Queda de vendas")

	d := newHistoryDriver(t, app)

	view := d.View()
	assert.Contains(t, view, "Retrabalho na expedição")
	assert.Contains(t, view, "Queda de vendas")
	assert.Contains(t, view, "▸")
}

func TestHistoryView_CursorNavigation(t *testing.T) {
	app := testApp(t)
	seedStudy(t, app, "Primeiro estudo")
	seedStudy(t, app, "Segundo estudo")

	d := newHistoryDriver(t, app)
	d.PressDown()
	d.PressEnter()

	assert.Contains(t, d.View(), "esc: voltar")

	d.PressEsc()
	assert.Contains(t, d.View(), "HISTÓRICO")
}

func TestHistoryView_DeleteRequiresConfirmation(t *testing.T) {
	app := testApp(t)
	seedStudy(t, app, "Estudo a remover")

	d := newHistoryDriver(t, app)

	d.PressKey('d')
	assert.Contains(t, d.View(), "pressione d novamente")

	d.PressKey('d')

	studies, err := app.Studies.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, studies)
}

func TestHistoryView_ReloadsOnBusEvent(t *testing.T) {
	app := testApp(t)
	d := newHistoryDriver(t, app)

	assert.Contains(t, d.View(), "Nenhum estudo salvo ainda")

	s := seedStudy(t, app, "Estudo recém salvo")
	d.Send(storeEventMsg{event: store.Event{Kind: store.EventSaved, StudyID: s.ID}})

	assert.Contains(t, d.View(), "Estudo recém salvo")
}

func TestHistoryView_QuitCancelsSubscription(t *testing.T) {
	app := testApp(t)
	d := newHistoryDriver(t, app)

	d.PressKey('q')
	assert.True(t, d.Quitting)
}
