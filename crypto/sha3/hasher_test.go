package sha3

import (
	"bytes"
	"testing"

	xsha3 "golang.org/x/crypto/sha3"
)

func TestHasherStreaming(t *testing.T) {
	data := []byte("hello world, this is a longer test string for streaming sha3")
	want := Sum256(data)

	// Byte by byte.
	h := New256()
	for _, b := range data {
		h.Write([]byte{b})
	}
	got := make([]byte, 32)
	h.Read(got)
	if !bytes.Equal(got, want[:]) {
		t.Fatalf("streaming byte-by-byte: %x vs %x", got, want)
	}
}

func TestHasherMultiBlock(t *testing.T) {
	// Exactly 2 blocks + partial, written in chunks of 37 (not aligned to
	// the 136-byte rate).
	data := sequentialBytes(136*2 + 50)
	want := Sum256(data)

	h := New256()
	for i := 0; i < len(data); i += 37 {
		end := i + 37
		if end > len(data) {
			end = len(data)
		}
		h.Write(data[i:end])
	}
	got := make([]byte, 32)
	h.Read(got)
	if !bytes.Equal(got, want[:]) {
		t.Fatalf("multi-block streaming: %x vs %x", got, want)
	}
}

func TestHasherSum(t *testing.T) {
	data := []byte("sum leaves the state intact")
	h := New512()
	h.Write(data)
	a := h.Sum(nil)
	b := h.Sum(nil)
	if !bytes.Equal(a, b) {
		t.Fatal("repeated Sum calls disagree")
	}
	want := Sum512(data)
	if !bytes.Equal(a, want[:]) {
		t.Fatalf("Sum = %x, want %x", a, want)
	}
}

func TestHasherReadMatchesXCrypto(t *testing.T) {
	data := []byte("test data for read comparison")
	for _, readLen := range []int{32, 64, 136, 200, 500} {
		ref := xsha3.NewShake256()
		ref.Write(data)
		want := make([]byte, readLen)
		ref.Read(want)

		h := NewShake256()
		h.Write(data)
		got := make([]byte, readLen)
		h.Read(got)
		if !bytes.Equal(got, want) {
			t.Fatalf("Read(%d) mismatch:\ngot:  %x\nwant: %x", readLen, got, want)
		}
	}
}

func TestHasherReadMultipleCalls(t *testing.T) {
	data := []byte("streaming read test")

	h1 := NewShake128()
	h1.Write(data)
	all := make([]byte, 300)
	h1.Read(all)

	h2 := NewShake128()
	h2.Write(data)
	var parts []byte
	for i := 0; i < 300; {
		chunk := 37
		if i+chunk > 300 {
			chunk = 300 - i
		}
		buf := make([]byte, chunk)
		h2.Read(buf)
		parts = append(parts, buf...)
		i += chunk
	}
	if !bytes.Equal(all, parts) {
		t.Fatalf("multi-read mismatch:\ngot:  %x\nwant: %x", parts, all)
	}
}

func TestHasherCShake(t *testing.T) {
	fname := []byte("KMAC")
	custom := []byte("stream")
	data := sequentialBytes(300)

	want := CShakeSum256(data, 150, fname, custom)
	h := NewCShake256(fname, custom)
	h.Write(data)
	got := make([]byte, 150)
	h.Read(got)
	if !bytes.Equal(got, want) {
		t.Fatalf("streaming cSHAKE256 mismatch:\ngot:  %x\nwant: %x", got, want)
	}
}

func TestHasherReset(t *testing.T) {
	h := New256()
	h.Write([]byte("first"))
	h.Read(make([]byte, 32))

	h.Reset()
	h.Write([]byte("second"))
	got := make([]byte, 32)
	h.Read(got)

	want := Sum256([]byte("second"))
	if !bytes.Equal(got, want[:]) {
		t.Fatalf("Read after Reset mismatch:\ngot:  %x\nwant: %x", got, want)
	}
}

func TestHasherWriteAfterReadPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on Write after Read")
		}
	}()
	h := NewShake256()
	h.Write([]byte("data"))
	h.Read(make([]byte, 32))
	h.Write([]byte("more"))
}

func TestHasherXOFSumPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on Sum of an XOF instance")
		}
	}()
	NewShake128().Sum(nil)
}

func FuzzSum256(f *testing.F) {
	f.Add([]byte(nil))
	f.Add([]byte("hello"))
	f.Add(make([]byte, 136))
	f.Add(make([]byte, 137))
	f.Add(make([]byte, 136*3+50))

	f.Fuzz(func(t *testing.T, data []byte) {
		want := xsha3.Sum256(data)

		got := Sum256(data)
		if got != want {
			t.Fatalf("Sum256 mismatch for len=%d\ngot:  %x\nwant: %x", len(data), got, want)
		}

		h := New256()
		for _, b := range data {
			h.Write([]byte{b})
		}
		stream := make([]byte, 32)
		h.Read(stream)
		if !bytes.Equal(stream, want[:]) {
			t.Fatalf("Hasher byte-by-byte mismatch for len=%d\ngot:  %x\nwant: %x", len(data), stream, want)
		}
	})
}
