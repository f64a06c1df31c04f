package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-blocks-utils/value"
)

// readInput reads the named file, or standard input when name is "-".
func (a *app) readInput(name string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(a.stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	a.logger.Debug("input read", slog.String("file", name), slog.Int("bytes", len(data)))
	return data, nil
}

// decodeDocuments decodes every YAML document in data. JSON input is a
// single YAML document.
func decodeDocuments(data []byte, nullAsUndefined bool) ([]any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var docs []any
	for {
		var doc any
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
		}
		docs = append(docs, normalize(doc, nullAsUndefined))
	}
}

// decodeObject decodes a single object document with the koanf parser
// matching name. Standard input is read as YAML. An empty document
// yields a nil map.
func decodeObject(name string, data []byte, nullAsUndefined bool) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var parser koanf.Parser = kyaml.Parser()
	if name != "-" {
		p, err := parserFor(name)
		if err != nil {
			return nil, err
		}
		parser = p
	}
	m, err := parser.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParseFailed, name, err)
	}
	if m == nil {
		return nil, nil
	}
	return normalize(m, nullAsUndefined).(map[string]any), nil
}

// normalize turns decoded nulls into value.Null (or leaves them undefined)
// and stringifies non-string mapping keys, in place where possible.
func normalize(v any, nullAsUndefined bool) any {
	switch x := v.(type) {
	case nil:
		if nullAsUndefined {
			return nil
		}
		return value.Null
	case map[string]any:
		for k, e := range x {
			x[k] = normalize(e, nullAsUndefined)
		}
		return x
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, e := range x {
			m[fmt.Sprint(k)] = normalize(e, nullAsUndefined)
		}
		return m
	case []any:
		for i, e := range x {
			x[i] = normalize(e, nullAsUndefined)
		}
		return x
	}
	return v
}
