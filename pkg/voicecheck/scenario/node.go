package scenario

import (
	"fmt"
	"io"

	"github.com/go-json-experiment/json/jsontext"
)

// Node is one value of an order-preserving JSON document. Objects keep their
// members in source order so a rewritten dataset diffs cleanly against the original.
type Node struct {
	kind    jsontext.Kind
	text    string // unescaped string, or the raw literal of a number/bool/null
	members []Member
	items   []*Node
}

// Member is a name/value pair of an object node.
type Member struct {
	Name  string
	Value *Node
}

// StringNode returns a node holding a JSON string.
func StringNode(s string) *Node {
	return &Node{kind: '"', text: s}
}

// Kind reports the JSON kind of the node.
func (n *Node) Kind() jsontext.Kind { return n.kind }

// IsObject reports whether the node is a JSON object.
func (n *Node) IsObject() bool { return n.kind == '{' }

// IsArray reports whether the node is a JSON array.
func (n *Node) IsArray() bool { return n.kind == '[' }

// String returns the value of a string node.
func (n *Node) String() (string, bool) {
	if n == nil || n.kind != '"' {
		return "", false
	}
	return n.text, true
}

// Members returns the members of an object node in source order.
func (n *Node) Members() []Member { return n.members }

// Items returns the elements of an array node.
func (n *Node) Items() []*Node { return n.items }

// Lookup returns the value of the named member. With duplicate names the last one wins.
func (n *Node) Lookup(name string) (*Node, bool) {
	for i := len(n.members) - 1; i >= 0; i-- {
		if n.members[i].Name == name {
			return n.members[i].Value, true
		}
	}
	return nil, false
}

// Set replaces the value of the named member, appending it when absent.
func (n *Node) Set(name string, value *Node) {
	for i := len(n.members) - 1; i >= 0; i-- {
		if n.members[i].Name == name {
			n.members[i].Value = value
			return
		}
	}
	n.members = append(n.members, Member{Name: name, Value: value})
}

func decodeNode(dec *jsontext.Decoder) (*Node, error) {
	switch dec.PeekKind() {
	case '{':
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		n := &Node{kind: '{'}
		for dec.PeekKind() != '}' {
			// The name token is only valid until the next decoder call.
			tok, err := dec.ReadToken()
			if err != nil {
				return nil, err
			}
			name := tok.String()
			value, err := decodeNode(dec)
			if err != nil {
				return nil, err
			}
			n.members = append(n.members, Member{Name: name, Value: value})
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return n, nil
	case '[':
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		n := &Node{kind: '['}
		for dec.PeekKind() != ']' {
			item, err := decodeNode(dec)
			if err != nil {
				return nil, err
			}
			n.items = append(n.items, item)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return n, nil
	default:
		tok, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}
		return &Node{kind: tok.Kind(), text: tok.String()}, nil
	}
}

func encodeNode(enc *jsontext.Encoder, n *Node) error {
	switch n.kind {
	case '{':
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for _, m := range n.members {
			if err := enc.WriteToken(jsontext.String(m.Name)); err != nil {
				return err
			}
			if err := encodeNode(enc, m.Value); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndObject)
	case '[':
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, item := range n.items {
			if err := encodeNode(enc, item); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndArray)
	case '"':
		return enc.WriteToken(jsontext.String(n.text))
	case 'n', 't', 'f', '0':
		return enc.WriteValue(jsontext.Value(n.text))
	default:
		return fmt.Errorf("encode node: unexpected kind %v", n.kind)
	}
}

// encoderOptions format datasets with two-space indentation and a space after
// each colon. Non-ASCII text is written literally.
func encoderOptions() []jsontext.Options {
	return []jsontext.Options{
		jsontext.AllowDuplicateNames(true),
		jsontext.WithIndent("  "),
		jsontext.SpaceAfterColon(true),
	}
}

func newDecoder(r io.Reader) *jsontext.Decoder {
	return jsontext.NewDecoder(r, jsontext.AllowDuplicateNames(true))
}
