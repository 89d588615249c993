// SPDX-License-Identifier: MIT
// Package: matrix
//
// io.go - YAML reading and writing of adjacency matrices.
//
// Accepted documents:
//
//	- [-1, 5]            # bare sequence of rows
//	- [5, -1]
//
//	matrix:              # or a mapping with a "matrix" key
//	  - [-1, 5]
//	  - [5, -1]

package matrix

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// document is the mapping form written by Encode.
type document struct {
	Matrix Adjacency `yaml:"matrix"`
}

// Decode reads one YAML document from r and validates the matrix.
func Decode(r io.Reader) (Adjacency, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}

	var a Adjacency
	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&a); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
	case yaml.MappingNode:
		var doc document
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		a = doc.Matrix
	default:
		return nil, fmt.Errorf("%w: expected a sequence or a mapping", ErrDecode)
	}

	if err := Validate(a); err != nil {
		return nil, err
	}

	return a, nil
}

// Encode writes a as a YAML mapping with a "matrix" key, one flow-style
// row per line.
func Encode(w io.Writer, a Adjacency) error {
	rows := make([]*yaml.Node, len(a))
	for i, row := range a {
		r := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, v := range row {
			r.Content = append(r.Content, &yaml.Node{
				Kind:  yaml.ScalarNode,
				Value: formatEntry(v),
			})
		}
		rows[i] = r
	}
	doc := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "matrix"},
			{Kind: yaml.SequenceNode, Content: rows},
		},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}

// formatEntry prints integral values without a fractional part.
func formatEntry(v float64) string {
	return fmt.Sprintf("%g", v)
}
