package views

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	"gui-demos/internal/panel"
)

func TestThreadsViewOpensWindowPerWorker(t *testing.T) {
	test.NewTempApp(t)

	var events []panel.Event
	v := NewThreadsView(func(e panel.Event) { events = append(events, e) })
	require.Empty(t, v.PanelIDs())

	s0, s1 := panel.NewState(0), panel.NewState(1)
	v.ApplyViews([]panel.View{s0.View(), s1.View()})
	require.Equal(t, []int{0, 1}, v.PanelIDs())
	require.Len(t, v.desk.Windows, 3)

	s1.Apply(panel.Event{Panel: 1, Kind: panel.Click})
	v.ApplyViews([]panel.View{s0.View(), s1.View()})
	require.Len(t, v.desk.Windows, 3)

	w1, ok := v.Panel(1)
	require.True(t, ok)
	require.Equal(t, "Hello 'Arthur', age 23", w1.Greeting())
	require.Empty(t, events)

	test.Tap(w1.ClickButton())
	require.Equal(t, []panel.Event{{Panel: 1, Kind: panel.Click, Seq: 1}}, events)
}

func TestThreadsViewSpawnButton(t *testing.T) {
	test.NewTempApp(t)

	spawned := 0
	v := NewThreadsView(func(panel.Event) {})
	v.SetSpawnHandler(func() { spawned++ })

	test.Tap(v.SpawnButton())
	test.Tap(v.SpawnButton())
	require.Equal(t, 2, spawned)

	v.SetFrame(4, 2)
	v.SetStatus("spawned worker 2")
	require.Equal(t, "spawned worker 2", v.statusBar.Status())
}
