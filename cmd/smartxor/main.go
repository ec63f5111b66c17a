package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hacksafely/smart-xor-encoder/cmd/internal"
	"github.com/hacksafely/smart-xor-encoder/cmd/smartxor/internal/emit"
	"github.com/hacksafely/smart-xor-encoder/pkg/xor"
	flag "github.com/spf13/pflag"
)

const (
	defaultOutput = "encoded_shellcode.bin"
)

var (
	version = "dev"

	errUsage = errors.New("usage error")
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, errUsage):
		os.Exit(2)
	default:
		internal.Fatal("%v", err)
	}
}

type config struct {
	input      string
	output     string
	format     emit.Format
	pkg        string
	manifest   string
	trials     int
	seed       uint64
	seeded     bool
	exhaustive bool
	verify     bool
	verbose    bool
}

func run(args []string, stdout, stderr io.Writer) error {
	var (
		helpFlag    bool
		versionFlag bool
		formatFlag  string
		cfg         config
	)
	flags := flag.NewFlagSet("smartxor", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVar(&versionFlag, "version", false, "Prints the version of smartxor.")
	flags.StringVarP(&cfg.output, "output", "o", defaultOutput, "Path of the encoded output file. An existing file will be replaced.")
	flags.StringVarP(&formatFlag, "format", "f", string(emit.Raw), "Output format, one of raw, hex, or go.")
	flags.StringVarP(&cfg.pkg, "package", "p", "", "Package name used with the go format. Defaults to the name of the output directory.")
	flags.StringVarP(&cfg.manifest, "manifest", "m", "", "Optionally write a YAML manifest describing the result to this path.")
	flags.IntVarP(&cfg.trials, "trials", "n", xor.DefaultTrials, "Number of random candidate keys to try.")
	flags.Uint64Var(&cfg.seed, "seed", 0, "Seed for the key search, which makes the output reproducible.")
	flags.BoolVarP(&cfg.exhaustive, "exhaustive", "x", false, "Try every key from 1 to 255 exactly once instead of sampling randomly.")
	flags.BoolVar(&cfg.verify, "verify", false, "Read the raw output back and confirm that the key recovers the input.")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "Print a table of every trial.")
	flags.Usage = func() {
		_, _ = fmt.Fprintf(stderr, `
smartxor screens a binary payload with a single-byte XOR key, chosen to minimize the entropy of the output.
The key is reported so that it can be used to decode the payload later.

USAGE:  smartxor [FLAGS] FILE

ARGS:
    FILE is the input payload to be encoded.

FLAGS:
%s
SECURITY:
    This is not encryption, this is obfuscation, and they are very different things!
Single-byte XOR is trivially reversible, and the key search is not cryptographically secure.
`, flags.FlagUsages())
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		flags.Usage()
		internal.EchoTo(stderr, "Error parsing flags: %v", err)
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if helpFlag {
		flags.Usage()
		return nil
	}
	if versionFlag {
		internal.EchoTo(stdout, "smartxor %s", version)
		return nil
	}

	switch flags.NArg() {
	case 0:
		flags.Usage()
		internal.EchoTo(stderr, "Missing required FILE argument")
		return errUsage
	case 1:
		cfg.input = flags.Arg(0)
	default:
		flags.Usage()
		internal.EchoTo(stderr, "Only one FILE argument may be given")
		return errUsage
	}

	format, err := emit.ParseFormat(formatFlag)
	if err != nil {
		internal.EchoTo(stderr, "%v", err)
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	cfg.format = format
	cfg.seeded = flags.Changed("seed")
	if cfg.verify && cfg.format != emit.Raw {
		internal.EchoTo(stderr, "The --verify flag may only be used with the raw format")
		return errUsage
	}

	return encode(cfg, stdout)
}
