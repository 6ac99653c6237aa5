package main

import (
	"image"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccidentPlot_ParseDelimiter(t *testing.T) {
	t.Parallel()

	t.Run("single_rune", func(t *testing.T) {
		t.Parallel()
		c, err := parseDelimiter(";")
		require.NoError(t, err)
		assert.Equal(t, ';', c)
	})

	t.Run("tab", func(t *testing.T) {
		t.Parallel()
		c, err := parseDelimiter("\t")
		require.NoError(t, err)
		assert.Equal(t, '\t', c)
	})

	for _, bad := range []string{"", ";;"} {
		t.Run("reject_"+bad, func(t *testing.T) {
			t.Parallel()
			_, err := parseDelimiter(bad)
			require.ErrorContains(t, err, "single character")
		})
	}
}

func TestAccidentPlot_RootCmd_RejectsLongDelimiter(t *testing.T) {
	t.Parallel()
	cmd := newRootCmd(func(image.Image, string) error {
		t.Fatal("window must not open for an invalid delimiter")
		return nil
	})
	cmd.SetArgs([]string{"--delimiter", ";;"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	require.ErrorContains(t, err, "single character")
}

func TestAccidentPlot_EnvOr(t *testing.T) {
	t.Setenv("ACCIDENTPLOT_TEST_COL", "LON")
	t.Setenv("ACCIDENTPLOT_TEST_EMPTY", "")
	assert.Equal(t, "LON", envOr("ACCIDENTPLOT_TEST_COL", defaultXCol))
	assert.Equal(t, defaultYCol, envOr("ACCIDENTPLOT_TEST_EMPTY", defaultYCol))
	assert.Equal(t, defaultInput, envOr("ACCIDENTPLOT_TEST_UNSET", defaultInput))
}

func TestAccidentPlot_RootCmd_EnvDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ongevallen.csv")
	require.NoError(t, os.WriteFile(path, []byte("LON;LAT\n1;4\n2;5\n"), 0o644))
	t.Setenv("ACCIDENTPLOT_INPUT", path)
	t.Setenv("ACCIDENTPLOT_X_COL", "LON")
	t.Setenv("ACCIDENTPLOT_Y_COL", "LAT")

	var gotImg image.Image
	var gotTitle string
	cmd := newRootCmd(func(img image.Image, title string) error {
		gotImg, gotTitle = img, title
		return nil
	})
	cmd.SetArgs([]string{"--delimiter", ";", "--width", "200", "--height", "100"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	require.NoError(t, cmd.Execute())
	require.NotNil(t, gotImg)
	assert.Equal(t, path, gotTitle)
	assert.Equal(t, 200, gotImg.Bounds().Dx())
	assert.Equal(t, 100, gotImg.Bounds().Dy())
}
