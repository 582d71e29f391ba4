package crypto

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignVerify(t *testing.T) {
	pw := []byte("hunter2")
	m := []byte("hello")
	key, err := DeriveKey(nil, pw)
	require.NoError(t, err)

	sig := Sign(m, pw)
	require.True(t, Verify(sig, m, &key.PublicKey))
}

func TestSignDeterministic(t *testing.T) {
	pw := []byte("hunter2")
	m := []byte("same message")
	a := Sign(m, pw)
	b := Sign(m, pw)
	require.Equal(t, 0, a.H.Cmp(b.H))
	require.Equal(t, 0, a.Z.Cmp(b.Z))
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	pw := []byte("hunter2")
	m := []byte("hello")
	key, err := DeriveKey(nil, pw)
	require.NoError(t, err)
	sig := Sign(m, pw)

	// Replace the last byte with its complement.
	bad := append([]byte(nil), m...)
	bad[len(bad)-1] = ^bad[len(bad)-1]
	require.False(t, Verify(sig, bad, &key.PublicKey))

	// Any single-bit flip must also fail.
	bad = append([]byte(nil), m...)
	bad[0] ^= 0x01
	require.False(t, Verify(sig, bad, &key.PublicKey))
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	pw := []byte("hunter2")
	m := []byte("hello")
	key, err := DeriveKey(nil, pw)
	require.NoError(t, err)
	sig := Sign(m, pw)

	badH := &Signature{H: new(big.Int).Add(sig.H, big.NewInt(1)), Z: sig.Z}
	require.False(t, Verify(badH, m, &key.PublicKey))

	badZ := &Signature{H: sig.H, Z: new(big.Int).Add(sig.Z, big.NewInt(1))}
	require.False(t, Verify(badZ, m, &key.PublicKey))
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	m := []byte("hello")
	sig := Sign(m, []byte("hunter2"))
	other, err := DeriveKey(nil, []byte("hunter3"))
	require.NoError(t, err)
	require.False(t, Verify(sig, m, &other.PublicKey))
}

func TestSignatureCodec(t *testing.T) {
	// Values small enough to be exact under the fixed 64-byte challenge
	// field round-trip bit for bit.
	sig := &Signature{H: big.NewInt(123456789), Z: big.NewInt(-987654321)}
	b := sig.Marshal()
	require.Greater(t, len(b), 64)

	got, err := UnmarshalSignature(b)
	require.NoError(t, err)
	require.Equal(t, 0, got.H.Cmp(sig.H))
	require.Equal(t, 0, got.Z.Cmp(sig.Z))
}

func TestSignatureCodecRealSignature(t *testing.T) {
	pw := []byte("hunter2")
	m := []byte("serialize me")
	key, err := DeriveKey(nil, pw)
	require.NoError(t, err)
	sig := Sign(m, pw)

	got, err := UnmarshalSignature(sig.Marshal())
	require.NoError(t, err)
	// The response is below r < 2^519 and round-trips exactly; the
	// challenge field is exact whenever the top bit is clear.
	require.Equal(t, 0, got.Z.Cmp(sig.Z))
	if sig.H.BitLen() < 512 {
		require.Equal(t, 0, got.H.Cmp(sig.H))
		require.True(t, Verify(got, m, &key.PublicKey))
	}
}

func TestUnmarshalSignatureTooShort(t *testing.T) {
	_, err := UnmarshalSignature(make([]byte, 64))
	require.ErrorIs(t, err, ErrSignatureLength)
}

func TestSpecScenarioSignature(t *testing.T) {
	// pw = "hunter2", m = "hello": sign, verify, then flip the last byte
	// of m to its complement and watch verification fail.
	pw := []byte("hunter2")
	m := []byte("hello")
	key, err := DeriveKey(nil, pw)
	require.NoError(t, err)

	sig := Sign(m, pw)
	require.True(t, Verify(sig, m, &key.PublicKey))

	m2 := []byte("hell\x90") // 'o' = 0x6f, complement 0x90
	require.False(t, Verify(sig, m2, &key.PublicKey))
}
