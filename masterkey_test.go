// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package keygen

import (
	"encoding/hex"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/matryer/is"
)

var fingerprintRE = regexp.MustCompile(`^[0-9a-f]{8}$`)

// TestDeriveMasterKey_BIP32Vector1 checks the master key of BIP32 test vector 1
func TestDeriveMasterKey_BIP32Vector1(t *testing.T) {
	is := is.New(t)

	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	is.NoErr(err)

	master, err := DeriveMasterKey(seed, &chaincfg.MainNetParams)
	is.NoErr(err)
	is.Equal(master.String(), "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi")

	xpub, err := master.PublicString()
	is.NoErr(err)
	is.Equal(xpub, "xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8")

	fp, err := master.Fingerprint()
	is.NoErr(err)
	is.Equal(fp, "3442193e")

	is.NoErr(master.crossCheck(seed))
}

// TestDeriveMasterKey_Deterministic verifies the same seed always gives the same key
func TestDeriveMasterKey_Deterministic(t *testing.T) {
	is := is.New(t)

	m, err := ParseMnemonic(testMnemonic12)
	is.NoErr(err)

	seed1 := m.Seed("")
	seed2 := m.Seed("")
	is.Equal(seed1, seed2)

	k1, err := DeriveMasterKey(seed1, &chaincfg.MainNetParams)
	is.NoErr(err)
	k2, err := DeriveMasterKey(seed2, &chaincfg.MainNetParams)
	is.NoErr(err)

	is.True(k1.String() != "")
	is.Equal(k1.String(), k2.String())
	is.True(strings.HasPrefix(k1.String(), "xprv"))

	fp, err := k1.Fingerprint()
	is.NoErr(err)
	is.Equal(fp, "73c5da0a")
}

// TestDeriveMasterKey_DefaultsToMainnet verifies a nil network means mainnet
func TestDeriveMasterKey_DefaultsToMainnet(t *testing.T) {
	is := is.New(t)

	seed := make([]byte, SeedSize)
	seed[0] = 1

	k1, err := DeriveMasterKey(seed, nil)
	is.NoErr(err)
	k2, err := DeriveMasterKey(seed, &chaincfg.MainNetParams)
	is.NoErr(err)
	is.Equal(k1.String(), k2.String())
}

// TestDeriveMasterKey_Testnet verifies the network only changes version bytes
func TestDeriveMasterKey_Testnet(t *testing.T) {
	is := is.New(t)

	seed := make([]byte, SeedSize)
	main, err := DeriveMasterKey(seed, &chaincfg.MainNetParams)
	is.NoErr(err)
	test, err := DeriveMasterKey(seed, &chaincfg.TestNet3Params)
	is.NoErr(err)

	is.True(strings.HasPrefix(test.String(), "tprv"))
	is.True(main.String() != test.String())

	fpMain, err := main.Fingerprint()
	is.NoErr(err)
	fpTest, err := test.Fingerprint()
	is.NoErr(err)
	is.Equal(fpMain, fpTest)
	is.NoErr(test.crossCheck(seed))
}

// TestDeriveMasterKey_BadSeed verifies malformed seeds are derivation failures
func TestDeriveMasterKey_BadSeed(t *testing.T) {
	for _, n := range []int{0, 8, 15, 65, 128} {
		is := is.New(t)
		_, err := DeriveMasterKey(make([]byte, n), nil)
		is.True(errors.Is(err, ErrDerivation))

		var serr *StageError
		is.True(errors.As(err, &serr))
		is.Equal(serr.Stage, StageDerivation)
	}
}

// TestCrossCheck_Mismatch verifies a key is rejected against another seed
func TestCrossCheck_Mismatch(t *testing.T) {
	is := is.New(t)

	seedA := make([]byte, SeedSize)
	seedB := make([]byte, SeedSize)
	seedB[SeedSize-1] = 1

	k, err := DeriveMasterKey(seedA, nil)
	is.NoErr(err)
	is.True(errors.Is(k.crossCheck(seedB), ErrDerivation))
}

// TestFingerprint_ManyWallets derives ten fresh wallets and checks their fingerprints
func TestFingerprint_ManyWallets(t *testing.T) {
	is := is.New(t)

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		entropy, err := NewEntropy(nil)
		is.NoErr(err)
		m, err := NewMnemonic(entropy)
		is.NoErr(err)
		k, err := DeriveMasterKey(m.Seed(""), nil)
		is.NoErr(err)

		fp, err := k.Fingerprint()
		is.NoErr(err)
		is.True(fingerprintRE.MatchString(fp))
		seen[fp] = true
	}

	is.True(len(seen) > 0)
}

// TestFingerprint_Deterministic verifies the fingerprint depends only on the key
func TestFingerprint_Deterministic(t *testing.T) {
	is := is.New(t)

	k, err := DeriveMasterKey(make([]byte, 32), nil)
	is.NoErr(err)

	fp1, err := Fingerprint(k.ExtendedKey())
	is.NoErr(err)
	fp2, err := k.Fingerprint()
	is.NoErr(err)
	is.Equal(fp1, fp2)
	is.True(fingerprintRE.MatchString(fp1))
}
