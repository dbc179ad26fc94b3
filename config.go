package pdump

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig reports a malformed or out-of-range configuration
// document.
var ErrInvalidConfig = errors.New("invalid config")

// ParseConfig builds a Dumper from a YAML document. Absent fields keep
// the [New] defaults, so an empty document is valid. Limit validation
// happens here, at construction, never per dump.
//
//	max_length: 120
//	max_elements: 6
//	max_depth: 2
//	stringify_objects: false
//	pairs_detection: true
func ParseConfig(data []byte) (*Dumper, error) {
	d := New()
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	if d.MaxLength < 0 {
		return nil, fmt.Errorf("%w: max_length must be non-negative, got %d", ErrInvalidConfig, d.MaxLength)
	}
	if d.MaxElements < 1 {
		return nil, fmt.Errorf("%w: max_elements must be positive, got %d", ErrInvalidConfig, d.MaxElements)
	}
	if d.MaxDepth < 0 {
		return nil, fmt.Errorf("%w: max_depth must be non-negative, got %d", ErrInvalidConfig, d.MaxDepth)
	}
	return d, nil
}
