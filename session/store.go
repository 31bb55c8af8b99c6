// SPDX-License-Identifier: MIT

package session

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Save writes s as a YAML document.
func (s *Session) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}

	return enc.Close()
}

// Load reads a YAML document into a fresh Session and validates it.
// Unknown keys are rejected. An empty document yields an empty Session.
func Load(r io.Reader) (*Session, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	s := &Session{}
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("session: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// SaveFile writes s to path, replacing any existing file.
func (s *Session) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if err = s.Save(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// LoadFile reads a Session from path.
func LoadFile(path string) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// String renders the session as YAML for display.
func (s *Session) String() string {
	out, err := yaml.Marshal(s)
	if err != nil {
		return err.Error()
	}

	return string(out)
}
