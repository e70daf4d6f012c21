package input

import "testing"

func TestSample(t *testing.T) {
	src := StaticSource{Forward: true, RotateRight: true, Quit: true}

	got := Sample(src)
	want := Intents{RotateRight: true, Forward: true}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
	if !got.Any() {
		t.Error("Expected Any to be true")
	}
	if (Intents{}).Any() {
		t.Error("Expected empty intents to report nothing")
	}
}

func TestKeyString(t *testing.T) {
	if Forward.String() != "Forward" {
		t.Errorf("Expected Forward, got %s", Forward)
	}
	if Key(99).String() != "Unknown" {
		t.Errorf("Expected Unknown, got %s", Key(99))
	}
	if len(Keys()) != int(keyCount) {
		t.Errorf("Expected %d keys, got %d", keyCount, len(Keys()))
	}
}
