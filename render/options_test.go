package render_test

import (
	"testing"

	"github.com/katalvlaran/titrate/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in   string
		want render.Format
	}{
		{"png", render.FormatPNG},
		{"PNG", render.FormatPNG},
		{" svg ", render.FormatSVG},
	}
	for _, tc := range cases {
		got, err := render.ParseFormat(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}

	_, err := render.ParseFormat("jpeg")
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
	_, err = render.ParseFormat("")
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "png", render.FormatPNG.String())
	assert.Equal(t, ".svg", render.FormatSVG.Ext())
	assert.Equal(t, "Format(7)", render.Format(7).String())
}

// TestOptions_Panic ensures option constructors fail fast.
func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { render.WithSize(0, 10) })
	assert.Panics(t, func() { render.WithSize(10, -1) })
	assert.Panics(t, func() { render.WithFormat(render.Format(9)) })
	assert.Panics(t, func() { render.WithSubject("  ") })
	assert.NotPanics(t, func() { render.WithTitle("") })
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Isoelectric point (pI ≈ 7.59)", render.PILabel(7.589))
	assert.Equal(t, "pKa ≈ 2.10", render.PKaLabel(2.1))
}
