package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labyrinth/pkg/game/config"
)

func TestApplyFlags_OnlyChangedFlags(t *testing.T) {
	var f flags
	cmd := &cobra.Command{}
	cmd.Flags().IntVarP(&f.size, "size", "s", 1, "")
	cmd.Flags().StringVar(&f.traversal, "traversal", "x", "")
	cmd.Flags().IntVar(&f.retries, "retries", 99, "")
	require.NoError(t, cmd.Flags().Parse([]string{"-s", "12", "--traversal", "path-walk"}))

	cfg := config.Default()
	applyFlags(cmd, f, &cfg)
	assert.Equal(t, 12, cfg.RoomCount)
	assert.Equal(t, "path-walk", cfg.Traversal)
	assert.Equal(t, config.Default().MaxRetries, cfg.MaxRetries)
}

func TestRootCmd_RunsHeadless(t *testing.T) {
	out := filepath.Join(t.TempDir(), "labyrinth.json")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"-s", "30", "--seed", "3", "--renderer", "none", "--json", out})
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.FileExists(t, out)
}

func TestRootCmd_RejectsBadConfig(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"-s", "0", "--renderer", "none"})
	assert.Error(t, cmd.ExecuteContext(context.Background()))
}
