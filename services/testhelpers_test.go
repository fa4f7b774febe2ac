package services

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"stresscheck/models"

	"github.com/stretchr/testify/require"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 128, A: 255})
		}
	}
	return img
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage()))
	return buf.Bytes()
}

func jpegBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, testImage(), nil))
	return buf.Bytes()
}

// sampleAnswers scores 10+5+20+15+20+20+15 = 105.
func sampleAnswers() models.Answers {
	return models.Answers{
		Q1: "Pekerjaan / tugas",
		Q2: "Beberapa hari",
		Q3: "Lelah atau Mati rasa",
		Q4: "Sulit tidur",
		Q5: "Menarik diri dari sekitar",
		Q6: "Tidak ada",
		Q7: "Tidak tahu, tapi ingin merasa lebih baik",
	}
}
