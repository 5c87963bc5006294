// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float32
		want int16
	}{
		{"Zero", 0, 0},
		{"Max", 1.0, 32767},
		{"Min", -1.0, -32767},
		{"Half", 0.5, 16383},
		{"ClampAbove", 2.5, 32767},
		{"ClampBelow", -3.0, -32767},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.in); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestInterleave_Stereo(t *testing.T) {
	t.Parallel()

	got, err := Interleave([][]float32{
		{0.1, 0.2, 0.3},
		{0.9, 0.8, 0.7},
	})
	if err != nil {
		t.Fatalf("Interleave() error = %v", err)
	}

	want := []float32{0.1, 0.9, 0.2, 0.8, 0.3, 0.7}
	if len(got) != len(want) {
		t.Fatalf("Interleave() returned %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestInterleave_Mono(t *testing.T) {
	t.Parallel()

	got, err := Interleave([][]float32{{0.1, 0.2}})
	if err != nil {
		t.Fatalf("Interleave() error = %v", err)
	}
	if len(got) != 2 || got[0] != 0.1 || got[1] != 0.2 {
		t.Errorf("Interleave() = %v, want [0.1 0.2]", got)
	}
}

func TestInterleave_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Interleave(nil); !errors.Is(err, ErrNoChannels) {
		t.Errorf("Interleave(nil) error = %v, want ErrNoChannels", err)
	}

	_, err := Interleave([][]float32{{0.1, 0.2}, {0.3}})
	if !errors.Is(err, ErrChannelLengthMismatch) {
		t.Errorf("Interleave() error = %v, want ErrChannelLengthMismatch", err)
	}
}

func TestDeinterleave_Roundtrip(t *testing.T) {
	t.Parallel()

	channels := [][]float32{
		{0.1, 0.2, 0.3, 0.4},
		{0.5, 0.6, 0.7, 0.8},
		{0.9, 1.0, -0.9, -1.0},
	}

	interleaved, err := Interleave(channels)
	if err != nil {
		t.Fatalf("Interleave() error = %v", err)
	}

	back, err := Deinterleave(interleaved, len(channels))
	if err != nil {
		t.Fatalf("Deinterleave() error = %v", err)
	}

	for ch := range channels {
		for i := range channels[ch] {
			if back[ch][i] != channels[ch][i] {
				t.Errorf("back[%d][%d] = %v, want %v", ch, i, back[ch][i], channels[ch][i])
			}
		}
	}
}

func TestDeinterleave_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Deinterleave([]float32{0.1}, 0); !errors.Is(err, ErrNoChannels) {
		t.Errorf("Deinterleave() error = %v, want ErrNoChannels", err)
	}

	_, err := Deinterleave([]float32{0.1, 0.2, 0.3}, 2)
	if !errors.Is(err, ErrInvalidChannelCount) {
		t.Errorf("Deinterleave() error = %v, want ErrInvalidChannelCount", err)
	}
}

func BenchmarkInterleave(b *testing.B) {
	left := make([]float32, 4096)
	right := make([]float32, 4096)
	for i := range left {
		left[i] = float32(i%1000) / 1000.0
		right[i] = -left[i]
	}
	channels := [][]float32{left, right}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = Interleave(channels)
	}
}
