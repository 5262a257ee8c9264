package resolve

import (
	"errors"
	"fmt"
	"strings"

	"molliectl/internal/mollie"
)

var (
	// ErrUnknownResource is returned when a hint matches no known resource.
	ErrUnknownResource = errors.New("unknown resource")
	// ErrAmbiguousResource is returned when a hint matches more than one
	// known resource.
	ErrAmbiguousResource = errors.New("ambiguous resource")
	// ErrUnrecognizedID is returned when no descriptor prefix matches a
	// resource ID.
	ErrUnrecognizedID = errors.New("unrecognized id format")
)

// ByHint resolves a partial or full resource name against the descriptor
// set. An exact name match wins immediately; otherwise the hint matches
// every name that contains it as a substring, and resolution only succeeds
// when exactly one name matches.
func ByHint(hint string, descriptors []mollie.Descriptor) (string, error) {
	names := make([]string, 0, len(descriptors))
	for _, desc := range descriptors {
		if desc.Name == hint {
			return hint, nil
		}
		names = append(names, desc.Name)
	}

	var matches []string
	for _, name := range names {
		if strings.Contains(name, hint) {
			matches = append(matches, name)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: no resource found for name %q, use one of: %s",
			ErrUnknownResource, hint, strings.Join(names, ", "))
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: hint %q matches multiple resources: %s",
			ErrAmbiguousResource, hint, strings.Join(matches, ", "))
	}
}

// ByID infers the resource type from a resource ID by scanning the
// descriptors in order and returning the first whose ID prefix matches.
// Mollie IDs are self-describing (tr_ for payments, cst_ for customers,
// and so on), so get operations need no explicit type.
func ByID(resourceID string, descriptors []mollie.Descriptor) (string, error) {
	for _, desc := range descriptors {
		if desc.IDPrefix != "" && strings.HasPrefix(resourceID, desc.IDPrefix) {
			return desc.Name, nil
		}
	}
	return "", fmt.Errorf("%w: cannot find a resource for id %q", ErrUnrecognizedID, resourceID)
}
