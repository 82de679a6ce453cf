package model

import (
	"errors"
	"testing"
)

func TestNewSourceIdentity(t *testing.T) {
	tests := []struct {
		name        string
		sourceType  SourceType
		sourceID    string
		sourceLabel string
		wantErr     error
		wantLabel   string
	}{
		{name: "host with label", sourceType: SourceHost, sourceID: "123", sourceLabel: "Wall-1", wantLabel: "Wall-1"},
		{name: "link without label defaults to id", sourceType: SourceLink, sourceID: "456", wantLabel: "456"},
		{name: "dwg ok", sourceType: SourceDWG, sourceID: "A-WALL", wantLabel: "A-WALL"},
		{name: "invalid type", sourceType: "BOGUS", sourceID: "1", wantErr: ErrInvalidSourceType},
		{name: "empty id", sourceType: SourceHost, sourceID: "", wantErr: ErrEmptySourceID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewSourceIdentity(tt.sourceType, tt.sourceID, tt.sourceLabel)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.SourceLabel != tt.wantLabel {
				t.Errorf("SourceLabel = %q, want %q", got.SourceLabel, tt.wantLabel)
			}
		})
	}
}
