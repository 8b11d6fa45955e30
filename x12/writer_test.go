package x12

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterEmit(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		elements []string
		want     string
		wantErr  error
	}{
		{
			name:     "basic segment",
			tag:      "NM1",
			elements: []string{"41", "2", "ACME"},
			want:     "NM1*41*2*ACME~",
		},
		{
			name:     "trailing empties trimmed",
			tag:      "NM1",
			elements: []string{"41", "2", "ACME", "", "", ""},
			want:     "NM1*41*2*ACME~",
		},
		{
			name:     "interior empties preserved",
			tag:      "NM1",
			elements: []string{"41", "2", "ACME", "", "", "46", "ID1"},
			want:     "NM1*41*2*ACME***46*ID1~",
		},
		{
			name:     "empty tag rejected",
			tag:      "",
			elements: []string{"X"},
			wantErr:  ErrEmptyTag,
		},
		{
			name:     "bare segment rejected",
			tag:      "REF",
			elements: []string{"", ""},
			wantErr:  ErrBareSegment,
		},
		{
			name:     "element separator rejected in value",
			tag:      "NM1",
			elements: []string{"41", "AC*ME"},
			wantErr:  ErrReservedCharacter,
		},
		{
			name:     "segment terminator rejected in value",
			tag:      "NTE",
			elements: []string{"ADD", "GRP~100"},
			wantErr:  ErrReservedCharacter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter()
			err := w.Emit(tt.tag, tt.elements...)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				var werr *WriterError
				assert.ErrorAs(t, err, &werr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(w.Bytes()))
			assert.Equal(t, 1, w.SegmentCount())
		})
	}
}

func TestWriterComposite(t *testing.T) {
	w := NewWriter()

	comp, err := w.Composite("HC", "A0425", "RJ")
	require.NoError(t, err)
	assert.Equal(t, "HC:A0425:RJ", comp)

	comp, err = w.Composite("41", "B", "1", "", "")
	require.NoError(t, err)
	assert.Equal(t, "41:B:1", comp, "trailing empty components trimmed")

	_, err = w.Composite("HC", "A04:25")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReservedCharacter)

	require.NoError(t, w.Emit("SV1", comp, "60.00"))
	assert.Equal(t, "SV1*41:B:1*60.00~", string(w.Bytes()))
}

func TestWriterTransactionCounting(t *testing.T) {
	w := NewWriter()

	require.NoError(t, w.Emit("ISA", "00", "x"))
	require.NoError(t, w.Emit("GS", "HC", "x"))

	w.MarkST()
	require.NoError(t, w.Emit("ST", "837", "0001"))
	require.NoError(t, w.Emit("BHT", "0019", "00"))
	require.NoError(t, w.Emit("CLM", "C1", "10.00"))
	assert.Equal(t, 3, w.CountSinceST())

	require.NoError(t, w.EndTransaction("0001"))
	assert.True(t, strings.HasSuffix(string(w.Bytes()), "SE*4*0001~"))

	// A second EndTransaction without MarkST is an accounting error.
	err := w.EndTransaction("0001")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoTransactionOpen)
}

func TestWriterAppend(t *testing.T) {
	body := NewWriter()
	require.NoError(t, body.Emit("BHT", "0019", "00"))
	require.NoError(t, body.Emit("CLM", "C1", "10.00"))

	w := NewWriter()
	w.MarkST()
	require.NoError(t, w.Emit("ST", "837", "0001"))
	require.NoError(t, w.Append(body))
	require.NoError(t, w.EndTransaction("0001"))

	assert.Equal(t, 4, w.SegmentCount())
	assert.Equal(t, "ST*837*0001~BHT*0019*00~CLM*C1*10.00~SE*4*0001~", string(w.Bytes()))

	other := NewWriter(WithDelimiters(&Delimiters{Element: '|', Component: ':', Repetition: '^', Segment: '~'}))
	require.NoError(t, other.Emit("REF", "D9", "X"))
	err := w.Append(other)
	require.Error(t, err)
	var werr *WriterError
	assert.True(t, errors.As(err, &werr))
}

func TestWriterPretty(t *testing.T) {
	w := NewWriter(WithPretty(true))
	require.NoError(t, w.Emit("ST", "837", "0001"))
	require.NoError(t, w.Emit("BHT", "0019", "00"))
	assert.Equal(t, "ST*837*0001~\nBHT*0019*00~\n", string(w.Bytes()))
}

func TestWriterReset(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.Emit("ST", "837", "0001"))
	w.Reset()
	assert.Zero(t, w.SegmentCount())
	assert.Empty(t, w.Bytes())
}
