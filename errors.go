// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package keygen

import (
	"errors"
	"fmt"
)

// Stage identifies the pipeline step an error came from.
type Stage string

const (
	StageEntropy    Stage = "entropy"
	StageEncoding   Stage = "encoding"
	StageDerivation Stage = "derivation"
	StageFilesystem Stage = "filesystem"
)

// Sentinel errors, one per stage. A *StageError matches its stage's sentinel
// with errors.Is.
var (
	ErrEntropy    = errors.New("entropy source failure")
	ErrEncoding   = errors.New("mnemonic encoding failure")
	ErrDerivation = errors.New("key derivation failure")
	ErrFilesystem = errors.New("filesystem failure")
)

// StageError wraps a failure with the stage that produced it.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's stage.
func (e *StageError) Is(target error) bool {
	switch e.Stage {
	case StageEntropy:
		return target == ErrEntropy
	case StageEncoding:
		return target == ErrEncoding
	case StageDerivation:
		return target == ErrDerivation
	case StageFilesystem:
		return target == ErrFilesystem
	}
	return false
}

func stageErr(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Err: err}
}
