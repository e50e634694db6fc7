// Package render streams generated sequences to an io.Writer.
//
// Every format writes element by element through a buffered writer, so
// rendering a sequence never materialises it.
package render

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
	"syscall"

	"github.com/katalvlaran/fizzbuzz/sequence"
	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format int

const (
	// Text writes one element per line: 1, 2, Fizz, ...
	Text Format = iota
	// JSON writes a single JSON array: [1,2,"Fizz"].
	JSON
	// JSONL writes one JSON value per line.
	JSONL
	// YAML writes a YAML block sequence.
	YAML
)

var formatNames = map[Format]string{
	Text:  "text",
	JSON:  "json",
	JSONL: "jsonl",
	YAML:  "yaml",
}

// ErrUnknownFormat is returned by ParseFormat and Write for unsupported formats.
var ErrUnknownFormat = errors.New("render: unknown format")

// String implements fmt.Stringer.
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}

	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a case-insensitive name to a Format. "yml" and "ndjson" are accepted aliases.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "txt":
		return Text, nil
	case "json":
		return JSON, nil
	case "jsonl", "ndjson":
		return JSONL, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return Text, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// IsBrokenPipe reports whether err means the reader went away (e.g. `| head`).
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// Write encodes seq to w in format f. It stops pulling elements at the
// first write error. A broken pipe is not an error: the consumer simply
// stopped reading.
func Write(w io.Writer, seq iter.Seq[sequence.Element], f Format) error {
	var encode func(*bufio.Writer, sequence.Element, bool) error
	switch f {
	case Text:
		encode = writeText
	case JSON:
		encode = writeJSON
	case JSONL:
		encode = writeJSONL
	case YAML:
		encode = writeYAML
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}

	bw := bufio.NewWriter(w)
	err := writeAll(bw, seq, f, encode)
	if err == nil {
		err = bw.Flush()
	}
	if IsBrokenPipe(err) {
		return nil
	}

	return err
}

func writeAll(bw *bufio.Writer, seq iter.Seq[sequence.Element], f Format, encode func(*bufio.Writer, sequence.Element, bool) error) error {
	if f == JSON {
		if err := bw.WriteByte('['); err != nil {
			return err
		}
	}

	first := true
	for e := range seq {
		if err := encode(bw, e, first); err != nil {
			return err
		}
		first = false
	}

	if f == JSON {
		if _, err := bw.WriteString("]\n"); err != nil {
			return err
		}
	}

	return nil
}

func writeText(bw *bufio.Writer, e sequence.Element, _ bool) error {
	_, err := fmt.Fprintln(bw, e.String())

	return err
}

func writeJSON(bw *bufio.Writer, e sequence.Element, first bool) error {
	if !first {
		if err := bw.WriteByte(','); err != nil {
			return err
		}
	}
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	_, err = bw.Write(b)

	return err
}

func writeJSONL(bw *bufio.Writer, e sequence.Element, _ bool) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = bw.Write(b)

	return err
}

func writeYAML(bw *bufio.Writer, e sequence.Element, _ bool) error {
	// yaml.Marshal quotes words that would otherwise read back as non-strings
	b, err := yaml.Marshal(e)
	if err != nil {
		return err
	}
	if _, err = bw.WriteString("- "); err != nil {
		return err
	}
	_, err = bw.Write(b)

	return err
}
