// Package frontmatter encodes and decodes the YAML metadata block at the
// top of a task file.
// Implements: prd003-frontmatter-codec (decode, encode, round-trip law);
//
//	docs/ARCHITECTURE § Frontmatter Codec.
package frontmatter

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/satchel/pkg/types"
)

// Delimiter is the line that opens and closes the metadata block.
const Delimiter = "---"

// Decode splits text into a decoded FrontMatter and the body. A document
// with no leading delimiter decodes to an empty FrontMatter with the whole
// text as body; list and filter operations use that to skip such files. An
// opened but unterminated metadata block is a format error.
func Decode(text string) (*types.FrontMatter, string, error) {
	rest, ok := strings.CutPrefix(text, Delimiter+"\n")
	if !ok {
		return types.NewFrontMatter(), text, nil
	}

	var block, body string
	switch {
	case strings.HasPrefix(rest, Delimiter+"\n"):
		block, body = "", rest[len(Delimiter)+1:]
	case rest == Delimiter:
		block, body = "", ""
	default:
		if i := strings.Index(rest, "\n"+Delimiter+"\n"); i >= 0 {
			block, body = rest[:i+1], rest[i+len(Delimiter)+2:]
		} else if strings.HasSuffix(rest, "\n"+Delimiter) {
			block, body = rest[:len(rest)-len(Delimiter)], ""
		} else {
			return nil, "", fmt.Errorf("%w: unterminated metadata block", types.ErrInvalidFormat)
		}
	}

	fm, err := decodeBlock(block)
	if err != nil {
		return nil, "", err
	}
	return fm, body, nil
}

// decodeBlock parses the text between the delimiters into a FrontMatter.
func decodeBlock(block string) (*types.FrontMatter, error) {
	if strings.TrimSpace(block) == "" {
		return types.NewFrontMatter(), nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(block), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidFormat, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, fmt.Errorf("%w: metadata block is not a single document", types.ErrInvalidFormat)
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: metadata block is not a mapping", types.ErrInvalidFormat)
	}
	return mappingValue(root)
}

// mappingValue converts a YAML mapping node into a FrontMatter, preserving
// key order.
func mappingValue(n *yaml.Node) (*types.FrontMatter, error) {
	fm := types.NewFrontMatter()
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valNode := n.Content[i], n.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: non-scalar mapping key", types.ErrInvalidFormat)
		}
		v, err := nodeValue(valNode)
		if err != nil {
			return nil, err
		}
		fm.Set(keyNode.Value, v)
	}
	return fm, nil
}

// nodeValue converts a YAML node into a typed Value.
func nodeValue(n *yaml.Node) (types.Value, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	switch n.Kind {
	case yaml.ScalarNode:
		return scalarValue(n), nil
	case yaml.SequenceNode:
		items := make([]string, 0, len(n.Content))
		for _, c := range n.Content {
			if c.Kind != yaml.ScalarNode {
				return types.Value{}, fmt.Errorf("%w: nested sequences are not supported", types.ErrInvalidFormat)
			}
			items = append(items, c.Value)
		}
		return types.List(items), nil
	case yaml.MappingNode:
		obj, err := mappingValue(n)
		if err != nil {
			return types.Value{}, err
		}
		return types.Object(obj), nil
	}
	return types.Value{}, fmt.Errorf("%w: unsupported metadata node", types.ErrInvalidFormat)
}

// scalarValue maps a scalar node to a Value by its resolved tag. Quoted
// scalars carry the !!str tag, so a quoted "true" stays a string.
func scalarValue(n *yaml.Node) types.Value {
	switch n.Tag {
	case "!!bool":
		if b, err := strconv.ParseBool(n.Value); err == nil {
			return types.Bool(b)
		}
	case "!!int", "!!float":
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return types.Number(f)
		}
	case "!!null":
		return types.Null()
	}
	// !!str, !!timestamp, and anything unparseable keep their raw text.
	return types.String(n.Value)
}

// Encode serializes the mapping and body back into canonical task-file text.
// Invariants: key order preserved, multiline strings as block literals,
// arrays as flow sequences, nested objects as flow mappings, and ambiguous
// scalar strings quoted so a later Decode returns the original string type.
func Encode(fm *types.FrontMatter, body string) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(Delimiter + "\n")

	if fm.Len() > 0 {
		root := mappingNode(fm, 0)
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(root); err != nil {
			return "", fmt.Errorf("%w: %v", types.ErrInvalidFormat, err)
		}
		if err := enc.Close(); err != nil {
			return "", fmt.Errorf("%w: %v", types.ErrInvalidFormat, err)
		}
	}

	buf.WriteString(Delimiter + "\n")
	buf.WriteString(body)
	return buf.String(), nil
}

// mappingNode builds a YAML mapping node from a FrontMatter. Nested
// mappings (depth > 0) use flow style.
func mappingNode(fm *types.FrontMatter, depth int) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if depth > 0 {
		n.Style = yaml.FlowStyle
	}
	for _, key := range fm.Keys() {
		v, _ := fm.Get(key)
		keyNode := &yaml.Node{}
		keyNode.SetString(key)
		n.Content = append(n.Content, keyNode, valueNode(v, depth))
	}
	return n
}

// valueNode builds a YAML node for a Value. The switch is exhaustive over
// the value kinds; this is the encode boundary the tagged union exists for.
func valueNode(v types.Value, depth int) *yaml.Node {
	switch v.Kind {
	case types.KindString, types.KindDate:
		n := &yaml.Node{}
		n.SetString(v.Str)
		return n
	case types.KindNumber:
		tag, text := numberScalar(v.Num)
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: text}
	case types.KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.Bool)}
	case types.KindList:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
		for _, item := range v.List {
			c := &yaml.Node{}
			c.SetString(item)
			n.Content = append(n.Content, c)
		}
		return n
	case types.KindObject:
		obj := v.Obj
		if obj == nil {
			obj = types.NewFrontMatter()
		}
		return mappingNode(obj, depth+1)
	case types.KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
	// Unknown kinds encode as empty strings rather than panicking; the
	// parser never produces them.
	n := &yaml.Node{}
	n.SetString("")
	return n
}

// numberScalar formats a number, using the int tag for integral values so
// whole numbers round-trip without a trailing ".0".
func numberScalar(f float64) (tag, text string) {
	if f == math.Trunc(f) && !math.IsInf(f, 0) && math.Abs(f) < 1e15 {
		return "!!int", strconv.FormatFloat(f, 'f', -1, 64)
	}
	return "!!float", strconv.FormatFloat(f, 'g', -1, 64)
}
