// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package units

import (
	"testing"

	"github.com/ajenhl/tile-images/pkg/types"
)

func TestMMToPx(t *testing.T) {
	tests := []struct {
		name string
		mm   int
		dpi  int
		want int
	}{
		{"one inch at 300", 25, 300, 295},          // floor(25/25.4*300)
		{"default width at 300", 312, 300, 3685},   // floor(3685.03...)
		{"default height at 300", 440, 300, 5196},  // floor(5196.85...)
		{"zero length", 0, 300, 0},
		{"low dpi", 100, 72, 283}, // floor(283.46...)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MMToPx(tt.mm, tt.dpi); got != tt.want {
				t.Errorf("MMToPx(%d, %d) = %d, want %d", tt.mm, tt.dpi, got, tt.want)
			}
		})
	}
}

func TestPxToPt(t *testing.T) {
	tests := []struct {
		name string
		px   int
		dpi  int
		want float64
	}{
		{"one inch at 300", 300, 300, 72},
		{"thousand pixels at 300", 1000, 300, 240},
		{"identity at 72", 144, 72, 144},
		{"zero pixels", 0, 300, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PxToPt(tt.px, tt.dpi); got != tt.want {
				t.Errorf("PxToPt(%d, %d) = %v, want %v", tt.px, tt.dpi, got, tt.want)
			}
		})
	}
}

func TestPrintableArea(t *testing.T) {
	cfg := types.RenderConfig{DPI: 300, WidthMM: 312, HeightMM: 440}
	got := PrintableArea(cfg)
	want := types.Dimensions{Width: 3685, Height: 5196}
	if got != want {
		t.Errorf("PrintableArea(%+v) = %v, want %v", cfg, got, want)
	}
	if !got.Positive() {
		t.Error("default printable area should be positive")
	}

	empty := PrintableArea(types.RenderConfig{DPI: 300, WidthMM: 0, HeightMM: 440})
	if empty.Positive() {
		t.Errorf("zero-width area reported positive: %v", empty)
	}
}
