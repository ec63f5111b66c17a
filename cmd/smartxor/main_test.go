package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hacksafely/smart-xor-encoder/cmd/smartxor/internal/emit"
	"github.com/hacksafely/smart-xor-encoder/pkg/xor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPayload = append(bytes.Repeat([]byte{0x90}, 100), 0xfc, 0x48, 0x83, 0xe4, 0xf0, 0xe8, 0xc0, 0x00, 0x00, 0x41)

func writeInput(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shellcode.bin")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestRun_MissingFile(t *testing.T) {
	var stdout, stderr strings.Builder
	dir := t.TempDir()
	out := filepath.Join(dir, "encoded.bin")

	err := run([]string{"-o", out}, &stdout, &stderr)
	assert.ErrorIs(t, err, errUsage)
	assert.Contains(t, stderr.String(), "Missing required FILE argument")
	assert.Contains(t, stderr.String(), "USAGE:")
	assert.Empty(t, stdout.String())
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no output file should be created")
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr strings.Builder
	assert.NoError(t, run([]string{"-h"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "USAGE:")
}

func TestRun_BadFlags(t *testing.T) {
	var stdout, stderr strings.Builder
	input := writeInput(t, testPayload)

	err := run([]string{"--bogus", input}, &stdout, &stderr)
	assert.ErrorIs(t, err, errUsage)

	err = run([]string{"-f", "yaml", input}, &stdout, &stderr)
	assert.ErrorIs(t, err, errUsage)

	err = run([]string{"-f", "hex", "--verify", input}, &stdout, &stderr)
	assert.ErrorIs(t, err, errUsage)

	err = run([]string{input, input}, &stdout, &stderr)
	assert.ErrorIs(t, err, errUsage)
}

func TestRun_Raw(t *testing.T) {
	var stdout, stderr strings.Builder
	input := writeInput(t, testPayload)
	out := filepath.Join(t.TempDir(), "encoded_shellcode.bin")

	err := run([]string{"-o", out, "--seed", "42", "--verify", input}, &stdout, &stderr)
	require.NoError(t, err)

	expected := xor.Select(testPayload, xor.NewRandSource(42), xor.DefaultTrials)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, expected.Encoded, data)
	assert.Equal(t, testPayload, xor.Apply(data, expected.Key))

	report := stdout.String()
	assert.Contains(t, report, fmt.Sprintf("XOR key: %d\n", expected.Key))
	assert.Contains(t, report, "Saved as: "+out+"\n")
	assert.Contains(t, report, fmt.Sprintf("xor_decode(&data, %d);", expected.Key))
}

func TestRun_EmptyInput(t *testing.T) {
	var stdout, stderr strings.Builder
	input := writeInput(t, nil)
	out := filepath.Join(t.TempDir(), "encoded.bin")

	require.NoError(t, run([]string{"-o", out, input}, &stdout, &stderr))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestRun_MissingInput(t *testing.T) {
	var stdout, stderr strings.Builder
	dir := t.TempDir()
	out := filepath.Join(dir, "encoded.bin")

	err := run([]string{"-o", out, filepath.Join(dir, "nope.bin")}, &stdout, &stderr)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, errUsage)
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_UnwritableOutput(t *testing.T) {
	var stdout, stderr strings.Builder
	input := writeInput(t, testPayload)
	out := filepath.Join(t.TempDir(), "missing", "encoded.bin")

	err := run([]string{"-o", out, input}, &stdout, &stderr)
	assert.Error(t, err)
	assert.Empty(t, stdout.String())
}

func TestRun_Exhaustive(t *testing.T) {
	var stdout, stderr strings.Builder
	input := writeInput(t, testPayload)
	dir := t.TempDir()
	out := filepath.Join(dir, "encoded.bin")
	manifest := filepath.Join(dir, "manifest.yaml")

	err := run([]string{"-x", "-v", "-o", out, "-m", manifest, input}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "over 255 trials")
	assert.Contains(t, stdout.String(), "Manifest: "+manifest)

	f, err := os.Open(manifest)
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()
	m, err := emit.ReadManifest(f)
	require.NoError(t, err)
	assert.True(t, m.Exhaustive)
	assert.Equal(t, xor.KeySpace, m.Trials)
	assert.Equal(t, len(testPayload), m.Size)
	assert.Nil(t, m.Seed)
	assert.InDelta(t, m.InputEntropy, m.EncodedEntropy, 1e-12)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, testPayload, xor.Apply(data, xor.Key(m.Key)))
}

func TestRun_GoFormat(t *testing.T) {
	var stdout, stderr strings.Builder
	input := writeInput(t, []byte{0x00, 0x00, 0x00, 0x00})
	out := filepath.Join(t.TempDir(), "payload.go")

	err := run([]string{"-f", "go", "-p", "payload", "--seed", "7", "-o", out, input}, &stdout, &stderr)
	require.NoError(t, err)

	key := byte(xor.NewRandSource(7).NextKey())
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	src := string(data)
	assert.Contains(t, src, "package payload\n")
	assert.Contains(t, src, fmt.Sprintf("const payload_goKey byte = 0x%02x\n", key))
	assert.Contains(t, src, fmt.Sprintf("var payload_go = %#v\n", []byte{key, key, key, key}))
}
