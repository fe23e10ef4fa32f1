// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package keygen

import (
	"io"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/rs/zerolog"
)

// DefaultLabel is the label used when the operator does not supply one.
const DefaultLabel = "Bitcoin Wallet"

// Options configures a generation run. The zero value generates a mainnet
// wallet with an empty passphrase from the system CSPRNG.
type Options struct {
	// Label is shown in the printable report. Empty means DefaultLabel.
	Label string

	// Passphrase is the optional BIP39 passphrase.
	Passphrase string

	// Entropy overrides the entropy source. Nil uses the system CSPRNG.
	Entropy io.Reader

	// Network selects the key version bytes and the network line of the
	// printable report. Nil means mainnet.
	Network *chaincfg.Params

	// Now returns the report timestamp. Nil means time.Now.
	Now func() time.Time

	// Logger receives progress messages. It never sees secret material.
	Logger *zerolog.Logger
}

// Result is the outcome of a run.
type Result struct {
	Mnemonic    *Mnemonic
	MasterKey   *MasterKey
	Fingerprint string
	Label       string
	Generated   time.Time
	Artifacts   []Artifact

	// Paths lists the written files. Only Run sets it.
	Paths []string
}

func (o Options) withDefaults() Options {
	if o.Label == "" {
		o.Label = DefaultLabel
	}
	if o.Network == nil {
		o.Network = &chaincfg.MainNetParams
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
	return o
}

// Generate runs the pipeline up to and including rendering, without touching
// the filesystem: entropy, mnemonic, seed, master key, fingerprint, artifacts.
// Every failure is a *StageError naming the step that failed.
func Generate(opts Options) (*Result, error) {
	opts = opts.withDefaults()
	log := opts.Logger

	entropy, err := NewEntropy(opts.Entropy)
	if err != nil {
		return nil, err
	}
	defer wipe(entropy)

	mnemonic, err := NewMnemonic(entropy)
	if err != nil {
		return nil, err
	}
	if err := verifyRoundTrip(mnemonic, entropy); err != nil {
		return nil, err
	}
	log.Info().Int("words", len(mnemonic.words)).Msgf("✓ Generated %d-word BIP39 mnemonic", len(mnemonic.words))

	seed := mnemonic.Seed(opts.Passphrase)
	defer wipe(seed)

	master, err := DeriveMasterKey(seed, opts.Network)
	if err != nil {
		return nil, err
	}
	if err := master.crossCheck(seed); err != nil {
		return nil, err
	}
	log.Info().Str("network", opts.Network.Name).Msg("✓ Derived master private key")

	fingerprint, err := master.Fingerprint()
	if err != nil {
		return nil, err
	}
	log.Info().Str("fingerprint", fingerprint).Msgf("✓ Calculated fingerprint: %s", fingerprint)

	now := opts.Now()
	return &Result{
		Mnemonic:    mnemonic,
		MasterKey:   master,
		Fingerprint: fingerprint,
		Label:       opts.Label,
		Generated:   now,
		Artifacts:   renderArtifacts(mnemonic.Words(), fingerprint, opts.Label, NetworkName(opts.Network), now),
	}, nil
}

// Run generates a wallet and writes its artifacts into dir.
func Run(dir string, opts Options) (*Result, error) {
	res, err := Generate(opts)
	if err != nil {
		return nil, err
	}

	log := opts.withDefaults().Logger
	paths, err := WriteArtifacts(dir, res.Artifacts)
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		log.Info().Str("path", p).Msgf("✓ Created %s", p)
	}
	res.Paths = paths
	return res, nil
}
