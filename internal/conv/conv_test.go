package conv

import (
	"math"
	"testing"
)

func TestIntToUint32(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want uint32
	}{
		{"zero", 0, 0},
		{"small", 42, 42},
		{"max uint32", math.MaxUint32, math.MaxUint32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IntToUint32(tt.in); got != tt.want {
				t.Fatalf("IntToUint32(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestIntToUint32PanicsOnOverflow(t *testing.T) {
	tests := []struct {
		name string
		in   int
	}{
		{"negative", -1},
		{"above max uint32", math.MaxUint32 + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("IntToUint32(%d) did not panic", tt.in)
				}
			}()
			IntToUint32(tt.in)
		})
	}
}

func TestIntToUint16(t *testing.T) {
	if got := IntToUint16(0); got != 0 {
		t.Fatalf("IntToUint16(0) = %d, want 0", got)
	}
	if got := IntToUint16(math.MaxUint16); got != math.MaxUint16 {
		t.Fatalf("IntToUint16(MaxUint16) = %d, want %d", got, math.MaxUint16)
	}
}

func TestIntToUint16PanicsOnOverflow(t *testing.T) {
	tests := []struct {
		name string
		in   int
	}{
		{"negative", -1},
		{"above max uint16", math.MaxUint16 + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("IntToUint16(%d) did not panic", tt.in)
				}
			}()
			IntToUint16(tt.in)
		})
	}
}

func TestUint64ToUint32(t *testing.T) {
	if got := Uint64ToUint32(0); got != 0 {
		t.Fatalf("Uint64ToUint32(0) = %d, want 0", got)
	}
	if got := Uint64ToUint32(math.MaxUint32); got != math.MaxUint32 {
		t.Fatalf("Uint64ToUint32(MaxUint32) = %d, want %d", got, math.MaxUint32)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("Uint64ToUint32(MaxUint32+1) did not panic")
		}
	}()
	Uint64ToUint32(uint64(math.MaxUint32) + 1)
}

func TestUint64ToUint16(t *testing.T) {
	if got := Uint64ToUint16(0); got != 0 {
		t.Fatalf("Uint64ToUint16(0) = %d, want 0", got)
	}
	if got := Uint64ToUint16(math.MaxUint16); got != math.MaxUint16 {
		t.Fatalf("Uint64ToUint16(MaxUint16) = %d, want %d", got, math.MaxUint16)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("Uint64ToUint16(MaxUint16+1) did not panic")
		}
	}()
	Uint64ToUint16(uint64(math.MaxUint16) + 1)
}
