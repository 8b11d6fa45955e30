package x12

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSegment(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantTag  string
		wantLen  int
		wantErr  bool
	}{
		{
			name:    "CLM with composite",
			input:   "CLM*KZN-20260101-001*62.50***41:B:1*Y*A*Y*Y",
			wantTag: "CLM",
			wantLen: 9,
		},
		{
			name:    "lowercase tag normalized",
			input:   "ref*F8*ABC-42",
			wantTag: "REF",
			wantLen: 2,
		},
		{
			name:    "empty data",
			input:   "   ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg, err := ParseSegment(tt.input, nil)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTag, seg.Tag)
			assert.Equal(t, tt.wantLen, seg.ElementCount())
		})
	}
}

func TestSegmentElementAccess(t *testing.T) {
	seg, err := ParseSegment("CLM*KZN-001*62.50***41:B:7*Y*A*Y*Y", nil)
	require.NoError(t, err)

	assert.Equal(t, "KZN-001", seg.Element(1))
	assert.Equal(t, "62.50", seg.Element(2))
	assert.Equal(t, "", seg.Element(3))
	assert.Equal(t, "", seg.Element(42), "positions past the end are empty")

	assert.Equal(t, "41", seg.Component(5, 1, nil))
	assert.Equal(t, "B", seg.Component(5, 2, nil))
	assert.Equal(t, "7", seg.Component(5, 3, nil))
	assert.Equal(t, "", seg.Component(5, 4, nil))
	assert.Equal(t, "KZN-001", seg.Component(1, 1, nil), "simple element is its own first component")
}

func TestSegmentBytes(t *testing.T) {
	seg := &Segment{Tag: "REF", Elements: []string{"F8", "ABC-42", "", ""}}
	assert.Equal(t, "REF*F8*ABC-42~", string(seg.Bytes(nil)), "trailing empties trimmed")

	d := &Delimiters{Element: '|', Component: ':', Repetition: '^', Segment: '\n'}
	assert.Equal(t, "REF|F8|ABC-42\n", string(seg.Bytes(d)))
}
