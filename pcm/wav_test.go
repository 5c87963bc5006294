// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
)

func TestWriteWAV16_Roundtrip(t *testing.T) {
	t.Parallel()

	samples := []float32{0, 0.5, -0.5, 1, -1, 0.25}

	path := filepath.Join(t.TempDir(), "out.wav")
	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating output: %v", err)
	}

	if err := WriteWAV16(out, 8000, 2, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("closing output: %v", err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("reopening output: %v", err)
	}
	defer in.Close()

	dec := wav.NewDecoder(in)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("decoding written wav: %v", err)
	}

	if dec.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", dec.SampleRate)
	}
	if dec.NumChans != 2 {
		t.Errorf("NumChans = %d, want 2", dec.NumChans)
	}
	if dec.BitDepth != 16 {
		t.Errorf("BitDepth = %d, want 16", dec.BitDepth)
	}

	want := []int{0, 16383, -16383, 32767, -32767, 8191}
	if len(buf.Data) != len(want) {
		t.Fatalf("decoded %d samples, want %d", len(buf.Data), len(want))
	}
	for i := range want {
		if buf.Data[i] != want[i] {
			t.Errorf("Data[%d] = %d, want %d", i, buf.Data[i], want[i])
		}
	}
}

func TestWriteWAV16_InvalidLayout(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")
	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating output: %v", err)
	}
	defer out.Close()

	err = WriteWAV16(out, 8000, 2, []float32{0.1, 0.2, 0.3})
	if !errors.Is(err, ErrInvalidChannelCount) {
		t.Errorf("WriteWAV16() error = %v, want ErrInvalidChannelCount", err)
	}
}
