package keccak

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// Keccak-f[1600] of the all-zero state, first plane, from the Keccak team's
// published intermediate values.
var zeroStateLanes = [5]uint64{
	0xf1258f7940e1dde7,
	0x84d5ccf933c0478a,
	0xd598261ea65aa9ee,
	0xbd1547306f80494d,
	0x8b284e056253d057,
}

func TestF1600ZeroState(t *testing.T) {
	var s [StateLen]byte
	F1600(&s)
	for i, want := range zeroStateLanes {
		got := binary.LittleEndian.Uint64(s[i*8:])
		if got != want {
			t.Errorf("lane %d = %#016x, want %#016x", i, got, want)
		}
	}
}

func TestF1600Deterministic(t *testing.T) {
	var a, b [StateLen]byte
	for i := range a {
		a[i] = byte(i * 3)
		b[i] = byte(i * 3)
	}
	F1600(&a)
	F1600(&b)
	if a != b {
		t.Fatal("permutation is not deterministic")
	}
	F1600(&a)
	if a == b {
		t.Fatal("second application left the state unchanged")
	}
}

func TestPad101(t *testing.T) {
	// Empty message pads to exactly one block.
	p := Pad101(nil, 136, 0x06)
	if len(p) != 136 {
		t.Fatalf("padded length %d, want 136", len(p))
	}
	if p[0] != 0x06 || p[135] != 0x80 {
		t.Fatalf("pad bytes %#02x ... %#02x", p[0], p[135])
	}
	for _, b := range p[1:135] {
		if b != 0 {
			t.Fatal("interior padding not zero")
		}
	}
}

func TestPad101BlockBoundary(t *testing.T) {
	// A message of exactly one block gains a full extra block.
	m := make([]byte, 136)
	p := Pad101(m, 136, 0x1f)
	if len(p) != 272 {
		t.Fatalf("padded length %d, want 272", len(p))
	}
}

func TestPad101SuffixMerge(t *testing.T) {
	// One byte short of the rate: suffix and closing bit share a byte.
	m := make([]byte, 135)
	p := Pad101(m, 136, 0x1f)
	if len(p) != 136 {
		t.Fatalf("padded length %d, want 136", len(p))
	}
	if p[135] != 0x1f^0x80 {
		t.Fatalf("merged pad byte %#02x, want %#02x", p[135], 0x1f^0x80)
	}
}

func TestPad101ZeroSuffixPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on zero suffix")
		}
	}()
	Pad101(nil, 136, 0)
}

func testSponge(capacity int) *Sponge {
	pad := func(m []byte, rate int) []byte {
		return Pad101(m, rate, 0x1f)
	}
	return NewSponge(F1600, pad, capacity)
}

func TestSpongeRates(t *testing.T) {
	s := testSponge(64)
	if s.Rate() != 136 || s.Capacity() != 64 {
		t.Fatalf("rate %d capacity %d", s.Rate(), s.Capacity())
	}
}

func TestNewSpongeBadCapacity(t *testing.T) {
	for _, capacity := range []int{0, 200, 201, 63, -8} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("capacity %d: expected panic", capacity)
				}
			}()
			testSponge(capacity)
		}()
	}
}

func TestSqueezeExtends(t *testing.T) {
	// Repeated squeezes of one instance form a single output stream;
	// distinct instances with the same input agree.
	s1 := testSponge(64)
	s1.AbsorbAll([]byte("stream test"))
	a := append(s1.Squeeze(), s1.Squeeze()...)

	s2 := testSponge(64)
	s2.AbsorbAll([]byte("stream test"))
	b := append(s2.Squeeze(), s2.Squeeze()...)
	if !bytes.Equal(a, b) {
		t.Fatal("same input produced different streams")
	}
	if bytes.Equal(a[:136], a[136:]) {
		t.Fatal("successive squeezes repeated")
	}
}

func TestDuplexNilSqueezes(t *testing.T) {
	s1 := testSponge(64)
	s1.AbsorbAll([]byte("duplex"))
	s2 := s1.Clone()
	if !bytes.Equal(s1.Duplex(nil), s2.Squeeze()) {
		t.Fatal("Duplex(nil) differs from Squeeze")
	}
}

func TestDuplexRawAlignment(t *testing.T) {
	// An aligned block is absorbed raw: pre-padding it by hand and handing
	// the result to Duplex must equal AbsorbAll of the message.
	msg := []byte("aligned duplex block input")
	s1 := testSponge(64)
	s1.AbsorbAll(msg)

	s2 := testSponge(64)
	s2.Duplex(Pad101(msg, s2.Rate(), 0x1f))
	if !bytes.Equal(s1.Squeeze(), s2.Squeeze()) {
		t.Fatal("raw duplex absorption diverged from AbsorbAll")
	}
}

func TestDuplexUnalignedPads(t *testing.T) {
	msg := []byte("short")
	s1 := testSponge(64)
	out1 := s1.Duplex(msg)

	s2 := testSponge(64)
	s2.AbsorbAll(msg)
	if !bytes.Equal(out1, s2.state[:s2.rate]) {
		t.Fatal("unaligned duplex differs from AbsorbAll")
	}
}

func TestCloneIndependent(t *testing.T) {
	s := testSponge(64)
	s.AbsorbAll([]byte("clone me"))
	c := s.Clone()
	want := c.Squeeze()

	fresh := testSponge(64)
	fresh.AbsorbAll([]byte("clone me"))
	if !bytes.Equal(want, fresh.Squeeze()) {
		t.Fatal("clone squeeze diverged from a fresh instance")
	}
	// Advancing the clone must not disturb the original.
	c.AbsorbAll([]byte("diverge"))
	if !bytes.Equal(s.Squeeze(), want) {
		t.Fatal("original state was disturbed by its clone")
	}
}

func BenchmarkF1600(b *testing.B) {
	var s [StateLen]byte
	b.SetBytes(StateLen)
	for i := 0; i < b.N; i++ {
		F1600(&s)
	}
}
