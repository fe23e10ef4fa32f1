// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package keygen

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/tyler-smith/go-bip32"
)

// FingerprintSize is the number of HASH160 bytes shown as a fingerprint.
const FingerprintSize = 4

// MasterKey is the BIP32 master extended private key for one network.
type MasterKey struct {
	key *hdkeychain.ExtendedKey
}

// DeriveMasterKey derives the master extended private key from a seed.
// hdkeychain rejects seeds outside 16..64 bytes and the (astronomically
// unlikely) seeds that map to an invalid private key.
func DeriveMasterKey(seed []byte, net *chaincfg.Params) (*MasterKey, error) {
	if net == nil {
		net = &chaincfg.MainNetParams
	}
	key, err := hdkeychain.NewMaster(seed, net)
	if err != nil {
		return nil, stageErr(StageDerivation, fmt.Errorf("could not derive master key: %w", err))
	}
	return &MasterKey{key: key}, nil
}

// ExtendedKey returns the underlying hdkeychain key.
func (k *MasterKey) ExtendedKey() *hdkeychain.ExtendedKey {
	return k.key
}

// String returns the base58 serialized extended private key (xprv on mainnet).
func (k *MasterKey) String() string {
	return k.key.String()
}

// PublicString returns the base58 serialized extended public key.
func (k *MasterKey) PublicString() (string, error) {
	pub, err := k.key.Neuter()
	if err != nil {
		return "", stageErr(StageDerivation, fmt.Errorf("could not neuter master key: %w", err))
	}
	return pub.String(), nil
}

// Fingerprint returns the master key fingerprint as shown by hardware wallets.
func (k *MasterKey) Fingerprint() (string, error) {
	return Fingerprint(k.key)
}

// Fingerprint computes the BIP32 key fingerprint of key: the first four bytes
// of HASH160 over the compressed public key, as eight lowercase hex characters
// with the most significant byte first.
func Fingerprint(key *hdkeychain.ExtendedKey) (string, error) {
	pub, err := key.ECPubKey()
	if err != nil {
		return "", stageErr(StageDerivation, fmt.Errorf("could not get public key: %w", err))
	}
	id := btcutil.Hash160(pub.SerializeCompressed())
	return hex.EncodeToString(id[:FingerprintSize]), nil
}

// crossCheck derives the master key a second time with go-bip32 and compares
// the public key and chain code with k. The two libraries share no HD code, so
// agreement means neither derivation is corrupted.
func (k *MasterKey) crossCheck(seed []byte) error {
	other, err := bip32.NewMasterKey(seed)
	if err != nil {
		return stageErr(StageDerivation, fmt.Errorf("could not derive reference master key: %w", err))
	}

	if !bytes.Equal(other.ChainCode, k.key.ChainCode()) {
		return stageErr(StageDerivation, fmt.Errorf("master chain code mismatch between derivations"))
	}

	otherPub, err := btcec.ParsePubKey(other.PublicKey().Key)
	if err != nil {
		return stageErr(StageDerivation, fmt.Errorf("could not parse reference public key: %w", err))
	}
	pub, err := k.key.ECPubKey()
	if err != nil {
		return stageErr(StageDerivation, fmt.Errorf("could not get public key: %w", err))
	}
	if !pub.IsEqual(otherPub) {
		return stageErr(StageDerivation, fmt.Errorf("master public key mismatch between derivations"))
	}
	return nil
}
