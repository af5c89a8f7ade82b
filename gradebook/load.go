// SPDX-License-Identifier: MIT

package gradebook

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadSheet reads a YAML grade sheet from path and validates it.
func LoadSheet(path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gradebook: open sheet: %w", err)
	}
	defer f.Close()

	s, err := ParseSheet(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// ParseSheet decodes a YAML grade sheet:
//
//	students: [Ann, Ben]     # optional
//	exams: [Maths, Physics]  # optional
//	marks:
//	  - [10, 20]
//	  - [30, 34]
//
// Unknown keys are rejected. The decoded sheet is validated before return.
func ParseSheet(r io.Reader) (*Sheet, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Sheet
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("gradebook: empty sheet document: %w", ErrEmpty)
		}
		return nil, fmt.Errorf("gradebook: parse sheet: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}
