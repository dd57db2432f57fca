package controller

import "testing"

func TestShiftOrderAfterStrobe(t *testing.T) {
	c := New()
	c.SetButton(A, true)
	c.SetButton(Start, true)

	c.Write(1) // strobe high
	c.Write(0) // strobe low, latches A and Start

	want := []uint8{1, 0, 0, 1, 0, 0, 0, 0}
	for i, w := range want {
		got := c.Read() & 1
		if got != w {
			t.Errorf("read %d: got bit %d, want %d", i, got, w)
		}
	}
}

func TestReadsPastEightReturnOne(t *testing.T) {
	c := New()
	c.Write(1)
	c.Write(0)
	for i := 0; i < 8; i++ {
		c.Read()
	}
	for i := 0; i < 4; i++ {
		if got := c.Read() & 1; got != 1 {
			t.Errorf("extended read %d: got %d, want 1", i, got)
		}
	}
}

func TestOpenBusBitsAlwaysSet(t *testing.T) {
	c := New()
	if got := c.Read() & 0xC0; got != openBusBits {
		t.Errorf("open-bus bits = %#02x, want %#02x", got, openBusBits)
	}
}

func TestStrobeHighPinsIndexAndResamples(t *testing.T) {
	c := New()
	c.Write(1) // strobe high
	c.Read()
	c.Read()
	c.SetButton(A, true)
	if got := c.Read() & 1; got != 1 {
		t.Errorf("strobe-high read should resample live A state, got %d", got)
	}
	c.SetButton(A, false)
	if got := c.Read() & 1; got != 0 {
		t.Errorf("strobe-high read should resample live A state, got %d", got)
	}
}

func TestResetClearsState(t *testing.T) {
	c := New()
	c.SetButton(A, true)
	c.Write(1)
	c.Write(0)
	c.Read()
	c.Reset()
	if c.shift != 0 || c.index != 0 || c.strobe {
		t.Error("Reset should clear shift register, index, and strobe")
	}
}
