package main

import (
	"fmt"
	"io"

	"github.com/hacksafely/smart-xor-encoder/pkg/xor"
	"github.com/jedib0t/go-pretty/v6/table"
)

func printTrials(w io.Writer, trials []xor.Trial) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Trial", "Key", "Entropy", "Best"})
	for _, trial := range trials {
		best := ""
		if trial.Improved {
			best = "*"
		}
		t.AppendRow(table.Row{
			trial.Index + 1,
			int(trial.Key),
			fmt.Sprintf("%.6f", trial.Entropy),
			best,
		})
	}
	t.Render()
}

func printSummary(w io.Writer, cfg config, result xor.Result, inputEntropy float64) {
	_, _ = fmt.Fprintf(w, "Smart XOR encoding complete!\n")
	_, _ = fmt.Fprintf(w, "XOR key: %d\n", result.Key)
	_, _ = fmt.Fprintf(w, "Entropy: %.4f bits/byte (input %.4f) over %d trials\n", result.Entropy, inputEntropy, result.Trials)
	_, _ = fmt.Fprintf(w, "Saved as: %s\n", cfg.output)
	if len(cfg.manifest) > 0 {
		_, _ = fmt.Fprintf(w, "Manifest: %s\n", cfg.manifest)
	}
	_, _ = fmt.Fprintf(w, "Use this XOR key in your decoder: xor_decode(&data, %d);\n", result.Key)
}
