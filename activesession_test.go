package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestActiveSessionLifecycle(t *testing.T) {
	now := time.Date(2024, 11, 18, 9, 0, 0, 0, time.UTC)
	a := NewActiveSession()
	a.now = func() time.Time { return now }

	require.False(t, a.Running())
	require.Zero(t, a.Elapsed())

	a.Start("Alpha", "write the parser")
	require.True(t, a.Running())
	require.Equal(t, "Alpha", a.ProjectName)
	require.Equal(t, "write the parser", a.Intention)

	now = now.Add(10 * time.Minute)
	require.Equal(t, 10*time.Minute, a.Elapsed())

	// Pause freezes; time passing no longer counts.
	a.Pause()
	require.False(t, a.Running())
	now = now.Add(5 * time.Minute)
	require.Equal(t, 10*time.Minute, a.Elapsed())

	// Resume continues from where it stopped.
	a.Resume()
	require.True(t, a.Running())
	now = now.Add(2 * time.Minute)
	require.Equal(t, 12*time.Minute, a.Elapsed())

	a.Reset()
	require.False(t, a.Running())
	require.Zero(t, a.Elapsed())
	require.Empty(t, a.ProjectName)
	require.Empty(t, a.Intention)
}

func TestActiveSessionPauseIdempotent(t *testing.T) {
	now := time.Date(2024, 11, 18, 9, 0, 0, 0, time.UTC)
	a := NewActiveSession()
	a.now = func() time.Time { return now }

	a.Start("Alpha", "x")
	now = now.Add(3 * time.Minute)
	a.Pause()
	a.Pause()
	require.Equal(t, 3*time.Minute, a.Elapsed())
}

func TestActiveSessionResumeGuards(t *testing.T) {
	now := time.Date(2024, 11, 18, 9, 0, 0, 0, time.UTC)
	a := NewActiveSession()
	a.now = func() time.Time { return now }

	// Nothing to resume yet.
	a.Resume()
	require.False(t, a.Running())

	// Resume while running is a no-op.
	a.Start("Alpha", "x")
	now = now.Add(time.Minute)
	a.Resume()
	require.Equal(t, time.Minute, a.Elapsed())

	// Pausing again after a resume accumulates across both spans.
	a.Pause()
	a.Resume()
	now = now.Add(4 * time.Minute)
	a.Pause()
	require.Equal(t, 5*time.Minute, a.Elapsed())
}

func TestActiveSessionStartDiscardsPreviousState(t *testing.T) {
	now := time.Date(2024, 11, 18, 9, 0, 0, 0, time.UTC)
	a := NewActiveSession()
	a.now = func() time.Time { return now }

	a.Start("Alpha", "x")
	now = now.Add(30 * time.Minute)
	a.Pause()

	a.Start("Beta", "y")
	require.True(t, a.Running())
	require.Zero(t, a.Elapsed())
	require.Equal(t, "Beta", a.ProjectName)
}
