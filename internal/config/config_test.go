package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "auto", cfg.Format)
	require.Equal(t, 100, cfg.Top)
}

func TestValidate_RequiresInput(t *testing.T) {
	cfg := &Config{Format: "auto", Top: 100}
	require.Error(t, cfg.Validate())
}

func TestValidate_RejectsUnknownFormat(t *testing.T) {
	cfg := &Config{Input: "x", Format: "yaml", Top: 100}
	require.Error(t, cfg.Validate())
}

func TestValidate_RejectsPartialShape(t *testing.T) {
	cfg := &Config{Input: "x", Format: "auto", Top: 100, ShapeRows: 5}
	require.Error(t, cfg.Validate())
}

func TestValidate_AcceptsFullShape(t *testing.T) {
	cfg := &Config{Input: "x", Format: "auto", Top: 100, ShapeRows: 5, ShapeCols: 6}
	require.NoError(t, cfg.Validate())
}
