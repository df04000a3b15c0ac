package buf

import "testing"

func TestEndianHelpers(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}

	if got := U32LE(data); got != 0x67452301 {
		t.Fatalf("U32LE = 0x%x, want 0x67452301", got)
	}
	if got := I32LE(data); got != 0x67452301 {
		t.Fatalf("I32LE = 0x%x, want 0x67452301", got)
	}
	if got := I32LE([]byte{0xff, 0xff, 0xff, 0xff}); got != -1 {
		t.Fatalf("I32LE = %d, want -1", got)
	}
	// 120.5f = 0x42F10000
	if got := F32LE([]byte{0x00, 0x00, 0xf1, 0x42}); got != 120.5 {
		t.Fatalf("F32LE = %v, want 120.5", got)
	}

	short := []byte{0xAA}
	if U32LE(short) != 0 || I32LE(short) != 0 || F32LE(short) != 0 {
		t.Fatalf("short reads should return 0")
	}
}

func TestPutHelpers(t *testing.T) {
	b := make([]byte, 6)
	if !PutF32LE(b[2:], 120.5) {
		t.Fatalf("PutF32LE reported short buffer")
	}
	want := []byte{0, 0, 0x00, 0x00, 0xf1, 0x42}
	for i := range want {
		if b[i] != want[i] {
			t.Fatalf("byte %d = 0x%02x, want 0x%02x", i, b[i], want[i])
		}
	}
	if PutU32LE(b[4:], 0xdeadbeef) {
		t.Fatalf("PutU32LE should refuse a 2-byte slice")
	}
	if b[4] != 0xf1 || b[5] != 0x42 {
		t.Fatalf("refused write must leave bytes untouched")
	}
}

func TestF32At(t *testing.T) {
	b := []byte{0, 0, 0x00, 0x00, 0xf1, 0x42}
	if v, ok := F32At(b, 2); !ok || v != 120.5 {
		t.Fatalf("F32At(2) = %v,%v want 120.5,true", v, ok)
	}
	if _, ok := F32At(b, 3); ok {
		t.Fatalf("F32At(3) should be out of range")
	}
	if _, ok := F32At(b, -1); ok {
		t.Fatalf("F32At(-1) should be out of range")
	}
}
