// Package scenario loads, walks and rewrites the voiced dialogue dataset.
//
// The dataset is a JSON object of protagonists, each an object of blocks, each
// an array of line entries. Key order is kept from the source file so the
// traversal order and the rewritten file both follow it.
package scenario

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/gowebpki/jcs"
	"github.com/kaptinlin/jsonschema"
)

// ErrShape indicates the document is valid JSON but not protagonist → block → lines.
var ErrShape = errors.New("dataset shape invalid")

const datasetSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": {
    "type": "object",
    "additionalProperties": {
      "type": "array"
    }
  }
}`

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile([]byte(datasetSchema))
	if err != nil {
		return nil, fmt.Errorf("compile dataset schema: %w", err)
	}
	return schema, nil
})

// Dataset is a decoded dialogue dataset.
type Dataset struct {
	root *Node
}

// Entry is one line entry together with its position in the dataset.
type Entry struct {
	Protagonist string
	Block       string
	Index       int
	Line        Line

	node *Node
}

// Location formats the entry position as "protagonist/block[index]".
func (e Entry) Location() string {
	return fmt.Sprintf("%s/%s[%d]", e.Protagonist, e.Block, e.Index)
}

// SetVoice replaces the entry's voice identifier in the underlying document.
func (e Entry) SetVoice(id string) {
	if e.node == nil || !e.node.IsObject() {
		return
	}
	e.node.Set(fieldVoice, StringNode(id))
}

// Load reads and decodes a dataset file.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return Parse(data)
}

// Parse decodes a dataset document after checking its shape.
func Parse(data []byte) (*Dataset, error) {
	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}

	dec := newDecoder(bytes.NewReader(data))
	root, err := decodeNode(dec)
	if err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if _, err := dec.ReadToken(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode dataset: unexpected data after top-level value")
	}

	result := schema.ValidateJSON(data)
	if !result.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrShape, result.Errors)
	}

	return &Dataset{root: root}, nil
}

// Walk calls fn for every line entry in protagonist, block, index order.
func (d *Dataset) Walk(fn func(Entry)) {
	for _, protagonist := range d.root.Members() {
		for _, block := range protagonist.Value.Members() {
			for i, item := range block.Value.Items() {
				fn(Entry{
					Protagonist: protagonist.Name,
					Block:       block.Name,
					Index:       i,
					Line:        classify(item),
					node:        item,
				})
			}
		}
	}
}

// Marshal encodes the dataset with two-space indentation, keeping key order.
func (d *Dataset) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := jsontext.NewEncoder(&buf, encoderOptions()...)
	if err := encodeNode(enc, d.root); err != nil {
		return nil, fmt.Errorf("encode dataset: %w", err)
	}
	return buf.Bytes(), nil
}

// Digest returns the sha256 hex digest of the RFC 8785 canonical form of the dataset.
func (d *Dataset) Digest() (string, error) {
	data, err := d.Marshal()
	if err != nil {
		return "", err
	}
	canonical, err := jcs.Transform(data)
	if err != nil {
		return "", fmt.Errorf("canonicalize dataset: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// Save writes the dataset to path, replacing the file atomically.
func (d *Dataset) Save(path string) error {
	data, err := d.Marshal()
	if err != nil {
		return err
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp dataset: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close dataset: %w", err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("chmod dataset: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace dataset: %w", err)
	}
	return nil
}
