package model

import (
	"errors"
	"fmt"
)

// SourceType names where an element's geometry physically lives.
type SourceType string

const (
	SourceHost SourceType = "HOST"
	SourceLink SourceType = "LINK"
	SourceDWG  SourceType = "DWG"
)

// ErrInvalidSourceType is returned when a SourceIdentity is constructed
// with a SourceType outside {HOST, LINK, DWG}.
var ErrInvalidSourceType = errors.New("model: invalid source type")

// ErrEmptySourceID is returned when a SourceIdentity is constructed with
// an empty source id.
var ErrEmptySourceID = errors.New("model: source id must not be empty")

// SourceIdentity stamps every element metadata record with where its
// geometry came from. The triple is authoritative: nothing in this module
// parses SourceID back into a SourceType.
type SourceIdentity struct {
	SourceType  SourceType
	SourceID    string
	SourceLabel string
}

// NewSourceIdentity validates and constructs a SourceIdentity. SourceLabel
// defaults to SourceID when left empty. An invalid SourceType or an empty
// SourceID is a construction error, not a silently zeroed struct.
func NewSourceIdentity(sourceType SourceType, sourceID, sourceLabel string) (SourceIdentity, error) {
	switch sourceType {
	case SourceHost, SourceLink, SourceDWG:
	default:
		return SourceIdentity{}, fmt.Errorf("%w: %q", ErrInvalidSourceType, sourceType)
	}
	if sourceID == "" {
		return SourceIdentity{}, ErrEmptySourceID
	}
	if sourceLabel == "" {
		sourceLabel = sourceID
	}
	return SourceIdentity{SourceType: sourceType, SourceID: sourceID, SourceLabel: sourceLabel}, nil
}
