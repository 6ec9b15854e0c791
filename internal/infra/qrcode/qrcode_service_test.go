package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"m", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
		{"", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, recoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_LinkPNG(t *testing.T) {
	svc := newQRCodeService(256, "M")

	data, err := svc.LinkPNG("https://api.example.com/auth/verify/ana%40example.com?token=abc")
	require.NoError(t, err)
	require.Greater(t, len(data), len(pngMagic))
	assert.Equal(t, pngMagic, data[:len(pngMagic)])
}

func TestQRCodeService_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		data, err := newQRCodeService(size, "M").LinkPNG("https://example.com")
		require.NoError(t, err)

		img, err := png.DecodeConfig(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, size, img.Width)
		assert.Equal(t, size, img.Height)
	}
}

func TestQRCodeService_Errors(t *testing.T) {
	_, err := newQRCodeService(-1, "M").LinkPNG("https://example.com")
	assert.Error(t, err)

	_, err = newQRCodeService(256, "M").LinkPNG("")
	assert.Error(t, err)
}
