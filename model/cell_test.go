package model

import "testing"

func TestCellBit(t *testing.T) {
	if Dead.Bit() != 0 {
		t.Fatalf("Dead.Bit() = %d, want 0", Dead.Bit())
	}
	if Live.Bit() != 1 {
		t.Fatalf("Live.Bit() = %d, want 1", Live.Bit())
	}
}

func TestCellIsAlive(t *testing.T) {
	if Dead.IsAlive() {
		t.Fatal("Dead.IsAlive() = true")
	}
	if !Live.IsAlive() {
		t.Fatal("Live.IsAlive() = false")
	}
}
