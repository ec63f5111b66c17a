package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hacksafely/smart-xor-encoder/cmd/smartxor/internal/emit"
	"github.com/hacksafely/smart-xor-encoder/pkg/entropy"
	"github.com/hacksafely/smart-xor-encoder/pkg/xor"
)

var (
	errVerifyFailed = errors.New("verification failed")
)

func encode(cfg config, stdout io.Writer) error {
	payload, inputEntropy, err := readPayload(cfg.input)
	if err != nil {
		return err
	}

	var trials []xor.Trial
	opts := []xor.SelectorOpt{xor.SetTrials(cfg.trials)}
	if cfg.seeded {
		opts = append(opts, xor.UseSeed(cfg.seed))
	}
	if cfg.exhaustive {
		opts = append(opts, xor.Exhaustive())
	}
	if cfg.verbose {
		opts = append(opts, xor.OnTrial(func(t xor.Trial) {
			trials = append(trials, t)
		}))
	}
	sel, err := xor.NewSelector(opts...)
	if err != nil {
		return fmt.Errorf("failed to set up key search: %w", err)
	}
	result := sel.Select(payload)

	params := emit.Params{
		Key:     byte(result.Key),
		Encoded: result.Encoded,
		Package: cfg.pkg,
		Name:    emit.IdentFor(cfg.output),
	}
	if cfg.format == emit.Go && len(params.Package) == 0 {
		params.Package, err = emit.PackageFor(cfg.output)
		if err != nil {
			return err
		}
	}
	if err := emit.WriteFile(cfg.output, cfg.format, params); err != nil {
		return fmt.Errorf("failed to save encoded payload to '%s': %w", cfg.output, err)
	}

	if cfg.verify {
		if err := verifyOutput(cfg.output, result.Key, payload); err != nil {
			return err
		}
	}

	if len(cfg.manifest) > 0 {
		m := emit.Manifest{
			Input:          cfg.input,
			Output:         cfg.output,
			Format:         cfg.format,
			Key:            int(result.Key),
			Size:           len(result.Encoded),
			Trials:         result.Trials,
			Exhaustive:     cfg.exhaustive,
			InputEntropy:   inputEntropy,
			EncodedEntropy: result.Entropy,
		}
		if cfg.seeded {
			seed := cfg.seed
			m.Seed = &seed
		}
		if err := emit.WriteManifest(cfg.manifest, m); err != nil {
			return fmt.Errorf("failed to save manifest to '%s': %w", cfg.manifest, err)
		}
	}

	if cfg.verbose {
		printTrials(stdout, trials)
	}
	printSummary(stdout, cfg, result, inputEntropy)
	return nil
}

// readPayload reads the whole input file, scoring it along the way.
func readPayload(path string) ([]byte, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var counter entropy.Counter
	data, err := io.ReadAll(io.TeeReader(f, &counter))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read input file: %w", err)
	}
	return data, counter.Entropy(), nil
}

func verifyOutput(path string, key xor.Key, payload []byte) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", errVerifyFailed, err)
	}
	defer func() {
		_ = f.Close()
	}()

	r, err := xor.NewReader(f, key)
	if err != nil {
		return fmt.Errorf("%w: %v", errVerifyFailed, err)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: %v", errVerifyFailed, err)
	}
	if !bytes.Equal(decoded, payload) {
		return fmt.Errorf("%w: decoding '%s' with key %d doesn't reproduce the input", errVerifyFailed, path, key)
	}
	return nil
}
