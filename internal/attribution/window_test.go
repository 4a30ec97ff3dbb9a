package attribution

import (
	"testing"
	"time"

	"channelmix/internal/domain"

	"github.com/stretchr/testify/require"
)

func Test_ParseWindow(t *testing.T) {
	t.Run("parses click and view days", func(t *testing.T) {
		w := ParseWindow("7d_click_1d_view")
		require.Equal(t, 7*24*time.Hour, w.Click)
		require.Equal(t, 24*time.Hour, w.View)
	})

	t.Run("unparseable setting keeps defaults", func(t *testing.T) {
		w := ParseWindow("whatever")
		require.Equal(t, DefaultWindow(), w)
	})

	t.Run("partial setting keeps the other default", func(t *testing.T) {
		w := ParseWindow("14d_click")
		require.Equal(t, 14*24*time.Hour, w.Click)
		require.Equal(t, DefaultWindow().View, w.View)
	})
}

func Test_FilterTouches(t *testing.T) {
	conversion := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	w := ParseWindow("7d_click_1d_view")

	event := domain.ConversionEvent{
		OccurredAt: conversion,
		Touches: []domain.Touch{
			{Channel: "meta", Kind: domain.TouchKind_Click, OccurredAt: conversion.AddDate(0, 0, -10)},
			{Channel: "google", Kind: domain.TouchKind_Click, OccurredAt: conversion.AddDate(0, 0, -3)},
			{Channel: "display", Kind: domain.TouchKind_View, OccurredAt: conversion.AddDate(0, 0, -2)},
			{Channel: "display", Kind: domain.TouchKind_View, OccurredAt: conversion.Add(-6 * time.Hour)},
			{Channel: "email", Kind: domain.TouchKind_Click, OccurredAt: conversion.Add(time.Hour)},
		},
	}

	kept := w.FilterTouches(event)
	require.Len(t, kept, 2)
	require.Equal(t, "google", kept[0].Channel)
	require.Equal(t, "display", kept[1].Channel)
}
