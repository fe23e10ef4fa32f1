package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/complex-gh/keygen"
	"github.com/matryer/is"
)

func TestDerive(t *testing.T) {
	is := is.New(t)

	fp, xpub, err := derive("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")
	is.NoErr(err)
	is.Equal(fp, "73c5da0a")
	is.True(strings.HasPrefix(xpub, "xpub"))
}

func TestDerive_MatchesGenerate(t *testing.T) {
	is := is.New(t)

	res, err := keygen.Generate(keygen.Options{})
	is.NoErr(err)

	fp, _, err := derive(res.Mnemonic.String())
	is.NoErr(err)
	is.Equal(fp, res.Fingerprint)

	// the import file layout is accepted as well
	fp, _, err = derive(keygen.RenderImportList(res.Mnemonic.Words()))
	is.NoErr(err)
	is.Equal(fp, res.Fingerprint)
}

func TestDerive_Invalid(t *testing.T) {
	is := is.New(t)

	_, _, err := derive("not a seed phrase")
	is.True(errors.Is(err, keygen.ErrEncoding))
}
