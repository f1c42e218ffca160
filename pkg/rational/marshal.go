// Copyright (c) 2025, Cookbook Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rational

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"gopkg.in/yaml.v3"
)

// The wire form of a Rational is always an explicit two-element integer
// sequence [numerator, denominator]. Decimal literals are rejected on input
// so a stored value can never be silently approximated.

const yamlIntTag = "!!int"

// MarshalYAML implements yaml.Marshaler, emitting a flow-style
// [numerator, denominator] sequence.
func (r Rational) MarshalYAML() (any, error) {
	node := &yaml.Node{
		Kind:  yaml.SequenceNode,
		Style: yaml.FlowStyle,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: yamlIntTag, Value: r.Num().String()},
			{Kind: yaml.ScalarNode, Tag: yamlIntTag, Value: r.Den().String()},
		},
	}
	return node, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Rational) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) != 2 {
		return fmt.Errorf("%w: expected [numerator, denominator] pair", ErrMalformedRational)
	}
	num, err := intFromScalar(node.Content[0])
	if err != nil {
		return err
	}
	den, err := intFromScalar(node.Content[1])
	if err != nil {
		return err
	}
	parsed, err := FromBigInts(num, den)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func intFromScalar(node *yaml.Node) (*big.Int, error) {
	if node.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("%w: component is not a scalar", ErrMalformedRational)
	}
	n, ok := new(big.Int).SetString(node.Value, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrMalformedRational, node.Value)
	}
	return n, nil
}

// MarshalJSON implements json.Marshaler.
func (r Rational) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	buf.WriteString(r.Num().String())
	buf.WriteByte(',')
	buf.WriteString(r.Den().String())
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Rational) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: expected [numerator, denominator] pair: %v", ErrMalformedRational, err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("%w: expected [numerator, denominator] pair, got %d elements", ErrMalformedRational, len(raw))
	}
	num, err := intFromJSON(raw[0])
	if err != nil {
		return err
	}
	den, err := intFromJSON(raw[1])
	if err != nil {
		return err
	}
	parsed, err := FromBigInts(num, den)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func intFromJSON(raw json.RawMessage) (*big.Int, error) {
	s := strings.TrimSpace(string(raw))
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an integer", ErrMalformedRational, s)
	}
	return n, nil
}
