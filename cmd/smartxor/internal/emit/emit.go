package emit

import (
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"
	"unicode"
)

// Format is an on-disk representation of encoded data.
type Format string

const (
	// Raw writes the encoded bytes with no framing or header.
	Raw Format = "raw"
	// Hex writes the encoded bytes as a single line of lower case hex.
	Hex Format = "hex"
	// Go writes a Go source file declaring the key and the encoded bytes.
	Go Format = "go"
)

var (
	ErrUnknownFormat = errors.New("unknown output format")
)

var (
	//go:embed encoded.go.tmpl
	tmplText     string
	tmplTemplate = template.Must(template.New("encoded").Parse(tmplText))
)

// ParseFormat returns the Format named by s, ignoring case and surrounding space.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Raw, Hex, Go:
		return f, nil
	default:
		return "", fmt.Errorf("%w: '%s', must be one of %s, %s, or %s", ErrUnknownFormat, s, Raw, Hex, Go)
	}
}

// Params is everything needed to render encoded data.
type Params struct {
	Key     byte
	Encoded []byte

	// Package and Name are only used by the Go format.
	Package string
	Name    string
}

type tmplParams struct {
	Package    string
	Name       string
	Key        string
	DataString string
}

// Render writes the encoded data to w in the given format.
func Render(w io.Writer, format Format, params Params) error {
	switch format {
	case Raw:
		_, err := w.Write(params.Encoded)
		return err
	case Hex:
		if _, err := io.WriteString(w, hex.EncodeToString(params.Encoded)); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	case Go:
		pkg := strings.TrimSpace(params.Package)
		if len(pkg) == 0 {
			return errors.New("a package name is required for the go format")
		}
		name := params.Name
		if len(name) == 0 {
			name = "encoded"
		}
		return tmplTemplate.Execute(w, tmplParams{
			Package:    pkg,
			Name:       name,
			Key:        fmt.Sprintf("0x%02x", params.Key),
			DataString: fmt.Sprintf("%#v", params.Encoded),
		})
	default:
		return fmt.Errorf("%w: '%s'", ErrUnknownFormat, format)
	}
}

var (
	fileCleansePattern = regexp.MustCompile(`[^a-zA-Z0-9_]`)
)

// IdentFor derives a Go identifier from the base name of a file path.
// For example, "out/encoded-shellcode.bin" becomes "encoded_shellcode_bin".
func IdentFor(path string) string {
	_, fname := filepath.Split(path)
	ident := fileCleansePattern.ReplaceAllString(fname, "_")
	if len(ident) == 0 {
		return "encoded"
	}
	if unicode.IsDigit(rune(ident[0])) {
		ident = "_" + ident
	}
	return ident
}

// PackageFor derives a package name from the directory holding path.
func PackageFor(path string) (string, error) {
	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return "", err
	}
	pkg := strings.ToLower(fileCleansePattern.ReplaceAllString(filepath.Base(dir), "_"))
	if len(pkg) == 0 || pkg == "_" || unicode.IsDigit(rune(pkg[0])) {
		return "main", nil
	}
	return pkg, nil
}
