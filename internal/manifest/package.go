package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// FileName is the manifest file at the root of a generated project.
const FileName = "package.json"

// DependencySections are the maps dependency keys are removed from.
var DependencySections = []string{"dependencies", "devDependencies"}

// ErrMalformed indicates a manifest that is not a JSON object.
var ErrMalformed = errors.New("malformed manifest")

// member is one key/value pair of a JSON object. Values stay raw so that
// untouched members round-trip byte-for-byte apart from indentation.
type member struct {
	Key   string
	Value json.RawMessage
}

// object is a JSON object that remembers member order.
type object []member

// Package is a parsed package.json.
type Package struct {
	members object
}

// Parse decodes data strictly. Anything other than a single JSON object is
// an ErrMalformed error.
func Parse(data []byte) (*Package, error) {
	obj, err := decodeObject(data)
	if err != nil {
		return nil, err
	}
	return &Package{members: obj}, nil
}

// Name returns the "name" member, or "" when it is absent or not a string.
func (p *Package) Name() string {
	raw, ok := p.members.get("name")
	if !ok {
		return ""
	}
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return ""
	}
	return name
}

// SetName sets the "name" member, adding it first when absent.
func (p *Package) SetName(name string) error {
	raw, err := encodeString(name)
	if err != nil {
		return err
	}
	if !p.members.set("name", raw) {
		p.members = append(object{{Key: "name", Value: raw}}, p.members...)
	}
	return nil
}

// Dependencies returns the keys of one dependency section in document order.
func (p *Package) Dependencies(section string) ([]string, error) {
	raw, ok := p.members.get(section)
	if !ok {
		return nil, nil
	}
	deps, err := decodeObject(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", section, err)
	}
	keys := make([]string, len(deps))
	for i, m := range deps {
		keys[i] = m.Key
	}
	return keys, nil
}

// RemoveDependencies deletes keys from every dependency section that has
// them. It returns "section/key" for each removal.
func (p *Package) RemoveDependencies(keys ...string) ([]string, error) {
	drop := make(map[string]bool, len(keys))
	for _, k := range keys {
		drop[k] = true
	}

	var removed []string
	for _, section := range DependencySections {
		raw, ok := p.members.get(section)
		if !ok {
			continue
		}
		deps, err := decodeObject(raw)
		if err != nil {
			return removed, fmt.Errorf("%s: %w", section, err)
		}

		kept := deps[:0]
		for _, m := range deps {
			if drop[m.Key] {
				removed = append(removed, section+"/"+m.Key)
				continue
			}
			kept = append(kept, m)
		}

		encoded, err := kept.MarshalJSON()
		if err != nil {
			return removed, err
		}
		p.members.set(section, encoded)
	}
	return removed, nil
}

// Bytes serializes the manifest with two-space indentation and a trailing
// newline.
func (p *Package) Bytes() ([]byte, error) {
	compact, err := p.members.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return nil, fmt.Errorf("formatting manifest: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func (o object) get(key string) (json.RawMessage, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// set replaces the first member named key and reports whether it existed.
func (o object) set(key string, value json.RawMessage) bool {
	for i := range o {
		if o[i].Key == key {
			o[i].Value = value
			return true
		}
	}
	return false
}

// MarshalJSON writes the members compactly in order.
func (o object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := encodeString(m.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(m.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// decodeObject reads a single top-level JSON object, keeping member order.
func decodeObject(data []byte) (object, error) {
	var probe interface{}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if _, ok := probe.(map[string]interface{}); !ok {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrMalformed)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil { // opening brace
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	obj := object{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected token %v", ErrMalformed, tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: member %q: %v", ErrMalformed, key, err)
		}
		obj = append(obj, member{Key: key, Value: raw})
	}
	if _, err := dec.Token(); err != nil && err != io.EOF { // closing brace
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return obj, nil
}

// encodeString JSON-encodes s without HTML escaping.
func encodeString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
