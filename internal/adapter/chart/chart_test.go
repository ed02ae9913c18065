package chart_test

import (
	"testing"
	"time"

	"github.com/IRI3V/proyecto/internal/adapter/chart"
	"github.com/IRI3V/proyecto/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func day(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRenderDailySales(t *testing.T) {
	renderer := chart.NewRenderer()

	t.Run("MultiplePoints", func(t *testing.T) {
		png, err := renderer.RenderDailySales([]domain.DailySales{
			{Day: day("2026-08-29"), Total: decimal.NewFromInt(28)},
			{Day: day("2026-08-30"), Total: decimal.NewFromInt(12)},
			{Day: day("2026-08-31"), Total: decimal.NewFromInt(40)},
		})
		require.NoError(t, err)
		require.Greater(t, len(png), len(pngSignature))
		assert.Equal(t, pngSignature, png[:len(pngSignature)])
	})

	t.Run("SinglePoint", func(t *testing.T) {
		png, err := renderer.RenderDailySales([]domain.DailySales{
			{Day: day("2026-08-31"), Total: decimal.NewFromInt(28)},
		})
		require.NoError(t, err)
		require.Greater(t, len(png), len(pngSignature))
		assert.Equal(t, pngSignature, png[:len(pngSignature)])
	})

	t.Run("NoPoints", func(t *testing.T) {
		_, err := renderer.RenderDailySales(nil)
		require.Error(t, err)
	})
}
