package assets

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSampleImage(t *testing.T) {
	img := SampleImage(200, 100)
	require.Equal(t, image.Rect(0, 0, 200, 100), img.Bounds())

	require.Equal(t, color.NRGBA{A: 0xff}, img.NRGBAAt(0, 50))
	require.Equal(t, color.NRGBA{A: 0xff}, img.NRGBAAt(199, 99))
	require.Equal(t, uint8(0xc0), img.NRGBAAt(5, 5).G)
	require.Equal(t, uint8(0x60), img.NRGBAAt(40, 5).G)

	// deterministic
	require.Equal(t, img.Pix, SampleImage(200, 100).Pix)
}

func TestSampleImage_ClampsSize(t *testing.T) {
	require.Equal(t, image.Rect(0, 0, 1, 1), SampleImage(0, -4).Bounds())
}
