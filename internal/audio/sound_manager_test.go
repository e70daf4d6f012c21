package audio

import (
	"math"
	"testing"
	"time"
)

// TestSoundManagerGracefulDegradation verifies audio calls are safe without a speaker
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(0.5)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayBump()
	sm.Cleanup()
}

func TestNewSoundManager_ClampsVolume(t *testing.T) {
	if v := NewSoundManager(3).volume; v != 1 {
		t.Errorf("Expected volume clamped to 1, got %v", v)
	}
	if v := NewSoundManager(-1).volume; v != 0 {
		t.Errorf("Expected volume clamped to 0, got %v", v)
	}
}

func TestOscillator_Duration(t *testing.T) {
	rate := sampleRate
	osc := NewOscillator(440, 10*time.Millisecond, WaveSquare, rate)
	want := rate.N(10 * time.Millisecond)

	total := 0
	buf := make([][2]float64, 128)
	for {
		n, ok := osc.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v != 1 && v != -1 {
				t.Fatalf("Square wave sample out of range: %v", v)
			}
		}
		total += n
		if !ok {
			break
		}
	}

	if total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
}

func TestBumpStreamer_DecaysToSilence(t *testing.T) {
	s := NewBumpStreamer(sampleRate, 1)

	buf := make([][2]float64, sampleRate.N(bumpDuration))
	n, _ := s.Stream(buf)
	if n != len(buf) {
		t.Fatalf("Expected %d samples, got %d", len(buf), n)
	}

	head := math.Abs(buf[0][0])
	tail := math.Abs(buf[n-1][0])
	if head == 0 || tail >= head {
		t.Errorf("Expected the tone to fade out, head=%v tail=%v", head, tail)
	}
}

func TestBumpStreamer_ZeroVolumeIsSilent(t *testing.T) {
	s := NewBumpStreamer(sampleRate, 0)

	buf := make([][2]float64, 64)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 || buf[i][1] != 0 {
			t.Fatalf("Sample %d not silent: %v", i, buf[i])
		}
	}
}
