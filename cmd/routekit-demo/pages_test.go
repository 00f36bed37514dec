package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/routekit/pkg/routekit/constants"
	"github.com/BrandonKowalski/routekit/pkg/routekit/router"
	"github.com/BrandonKowalski/routekit/pkg/routekit/tui"
)

func TestMain(m *testing.M) {
	os.Setenv(constants.LogPathEnvVar, filepath.Join(os.TempDir(), "routekit-demo-test.log"))
	os.Exit(m.Run())
}

func setup(t *testing.T) (*demo, *router.Router, *tui.Model, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	d := newDemo(slog.New(slog.NewTextHandler(&logs, nil)))
	r := router.New(router.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	return d, r, tui.New(r, d.page1Screen()), &logs
}

func press(m *tui.Model, keys ...tea.KeyType) {
	for _, k := range keys {
		m.Update(tea.KeyMsg{Type: k})
	}
}

func typeText(m *tui.Model, text string) {
	for _, c := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{c}})
	}
}

func TestDemo_PagesToRoot(t *testing.T) {
	_, r, m, logs := setup(t)

	press(m, tea.KeyDown, tea.KeyEnter) // Go to Page 2
	press(m, tea.KeyEnter)              // Go to Page 3
	require.Equal(t, 2, r.Depth())
	require.Contains(t, m.View(), "Page 3")

	press(m, tea.KeyDown, tea.KeyEnter) // Go to root
	require.Same(t, r.Root(), r.Current())
	require.Contains(t, logs.String(), "Page 2 dismissed")
}

func TestDemo_SheetFlow(t *testing.T) {
	d, r, m, logs := setup(t)

	press(m, tea.KeyDown, tea.KeyDown, tea.KeyDown, tea.KeyEnter) // Go to Sheet 1
	sheet := r.Current()
	require.True(t, sheet.IsPathNode())

	press(m, tea.KeyEnter) // Go to Sheet 2
	require.Equal(t, 1, sheet.Path().Len())

	press(m, tea.KeyDown, tea.KeyEnter) // Go to navigation begin
	require.Same(t, sheet, r.Current())

	press(m, tea.KeyDown, tea.KeyEnter) // Show alert
	typeText(m, "hey")
	press(m, tea.KeyEnter)
	require.Equal(t, "hey", d.note)
	require.Contains(t, m.View(), "Alert says: hey")

	press(m, tea.KeyDown, tea.KeyEnter) // Go back
	require.Same(t, r.Root(), r.Current())
	require.Contains(t, logs.String(), "Sheet 1 dismissed")
}

func TestDemo_ZoomAndAlert(t *testing.T) {
	d, r, m, logs := setup(t)

	press(m, tea.KeyEnter) // Zoom transition
	tr := r.Current().Transition()
	require.NotNil(t, tr)
	require.Equal(t, d.zoom, tr.Namespace)

	press(m, tea.KeyEsc)
	require.Same(t, r.Root(), r.Current())

	press(m, tea.KeyDown, tea.KeyDown, tea.KeyEnter) // Show alert
	require.NotNil(t, r.Root().Alert())
	typeText(m, "1")
	require.Nil(t, r.Root().Alert())
	require.Contains(t, logs.String(), "Destroying..")
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"config", "log-level", "lang"} {
		require.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	require.Error(t, cmd.Args(cmd, []string{"extra"}))
}
