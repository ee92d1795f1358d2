package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"storerating/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(size int, level, baseURL string) *qrcodeService {
	return NewQRCodeService(&config.Config{
		QRCode: &config.QRCodeConfig{Size: size, ErrorCorrectionLevel: level, BaseURL: baseURL},
	}).(*qrcodeService)
}

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"low", qrcode.Low},
		{"M", qrcode.Medium},
		{"medium", qrcode.Medium},
		{"Q", qrcode.High},
		{"high", qrcode.High},
		{"H", qrcode.Highest},
		{"Highest", qrcode.Highest},
		{"", qrcode.Medium},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_Defaults(t *testing.T) {
	svc := NewQRCodeService(nil).(*qrcodeService)

	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, qrcode.Medium, svc.errorCorrectionLevel)
}

func TestQRCodeService_StoreURL(t *testing.T) {
	svc := newTestService(256, "M", "https://ratings.example.com/")
	id := uuid.MustParse("0b7c1f7e-2a44-4c55-9a31-1c3c8e6f0d21")

	assert.Equal(t, "https://ratings.example.com/stores/0b7c1f7e-2a44-4c55-9a31-1c3c8e6f0d21", svc.StoreURL(id))
}

func TestQRCodeService_GenerateStoreQR(t *testing.T) {
	svc := newTestService(128, "H", "https://ratings.example.com")

	qrBytes, err := svc.GenerateStoreQR(uuid.New())
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, 128, img.Bounds().Dy())
}

func TestQRCodeService_ParseStoreQR(t *testing.T) {
	svc := newTestService(256, "M", "https://ratings.example.com")
	id := uuid.New()

	t.Run("round trip", func(t *testing.T) {
		got, err := svc.ParseStoreQR(svc.StoreURL(id))
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("relative path with trailing slash", func(t *testing.T) {
		got, err := svc.ParseStoreQR("/stores/" + id.String() + "/")
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("not a store link", func(t *testing.T) {
		_, err := svc.ParseStoreQR("https://ratings.example.com/users/" + id.String())
		assert.Error(t, err)
	})

	t.Run("bad id", func(t *testing.T) {
		_, err := svc.ParseStoreQR("https://ratings.example.com/stores/not-a-uuid")
		assert.Error(t, err)
	})
}
