package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// newTestCmd returns a command writing to buf and a viper preset to plain output.
func newTestCmd() (*cobra.Command, *bytes.Buffer, *viper.Viper) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	v := viper.New()
	v.Set("format", "plain")
	return cmd, buf, v
}

// memFs returns an in-memory filesystem holding one input file.
func memFs(t *testing.T, name, content string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	return fs
}

// captureDebugLog routes the default logger into a buffer at debug level
// for the duration of the test.
func captureDebugLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return buf
}
