package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMonthRange(t *testing.T) {
	start, end, err := MonthRange("2025-02")
	require.NoError(t, err)
	require.Equal(t, 2025, start.Year())
	require.Equal(t, time.February, start.Month())
	require.Equal(t, 1, start.Day())
	require.Equal(t, time.March, end.Month())

	_, _, err = MonthRange("2025/02")
	require.Error(t, err)
}

func TestAddMonths(t *testing.T) {
	m, err := AddMonths("2025-11", 3)
	require.NoError(t, err)
	require.Equal(t, "2026-02", m)
}

func TestPreviousMonth(t *testing.T) {
	jan := time.Date(2025, 1, 15, 10, 0, 0, 0, time.Local)
	require.Equal(t, "2024-12", PreviousMonth(jan))
}
