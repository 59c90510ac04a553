package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resolvai/resolvai/internal/testutil"
)

func settingsSetup(t *testing.T) *SQLiteSettingsStore {
	t.Helper()
	return NewSQLiteSettingsStore(testutil.NewTestDB(t))
}

func TestSettingsStore_ThemeDefaultsToDark(t *testing.T) {
	st := settingsSetup(t)

	theme, err := st.Theme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme, theme)
}

func TestSettingsStore_SetThemeRoundTrip(t *testing.T) {
	st := settingsSetup(t)
	ctx := context.Background()

	require.NoError(t, st.SetTheme(ctx, "light"))
	theme, err := st.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "light", theme)

	require.NoError(t, st.SetTheme(ctx, "dark"))
	theme, err = st.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)
}

func TestSettingsStore_CredentialsPerProvider(t *testing.T) {
	st := settingsSetup(t)
	ctx := context.Background()

	_, err := st.Credential(ctx, "openai")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, st.SetCredential(ctx, "openai", "sk-aaaa"))
	require.NoError(t, st.SetCredential(ctx, "groq", "gsk-bbbb"))

	key, err := st.Credential(ctx, "openai")
	require.NoError(t, err)
	assert.Equal(t, "sk-aaaa", key)

	key, err = st.Credential(ctx, "groq")
	require.NoError(t, err)
	assert.Equal(t, "gsk-bbbb", key)

	require.NoError(t, st.RemoveCredential(ctx, "openai"))
	_, err = st.Credential(ctx, "openai")
	assert.ErrorIs(t, err, ErrNotFound)

	// The other provider is untouched.
	_, err = st.Credential(ctx, "groq")
	assert.NoError(t, err)
}

func TestSettingsStore_PendingStudyConsumedOnRead(t *testing.T) {
	st := settingsSetup(t)
	ctx := context.Background()

	s := testutil.NewTestStudy("Retomar edição")
	require.NoError(t, st.SetPendingStudy(ctx, s))

	taken, err := st.TakePendingStudy(ctx)
	require.NoError(t, err)
	assert.Equal(t, s.ID, taken.ID)
	assert.Equal(t, s.Title, taken.Title)
	assert.Equal(t, s.Method, taken.Method)

	_, err = st.TakePendingStudy(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSettingsStore_PendingStudyOverwritten(t *testing.T) {
	st := settingsSetup(t)
	ctx := context.Background()

	first := testutil.NewTestStudy("Primeiro")
	second := testutil.NewTestStudy("Segundo")
	require.NoError(t, st.SetPendingStudy(ctx, first))
	require.NoError(t, st.SetPendingStudy(ctx, second))

	taken, err := st.TakePendingStudy(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, taken.ID)
}
