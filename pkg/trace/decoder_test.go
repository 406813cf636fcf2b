package trace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/splice/pkg/domain"
	"github.com/aretw0/splice/pkg/trace"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []domain.Step
		wantErr error
	}{
		{
			name: "plain trace",
			raw:  "001010",
			want: []domain.Step{
				{Index: 0, Input: "00", Output: "1"},
				{Index: 1, Input: "01", Output: "0"},
			},
		},
		{
			name: "separators are stripped",
			raw:  "001_010 \t01x1",
			want: []domain.Step{
				{Index: 0, Input: "00", Output: "1"},
				{Index: 1, Input: "01", Output: "0"},
				{Index: 2, Input: "01", Output: "1"},
			},
		},
		{
			name: "empty trace decodes to zero steps",
			raw:  "",
			want: []domain.Step{},
		},
		{
			name: "only separators decodes to zero steps",
			raw:  "___",
			want: []domain.Step{},
		},
		{
			name:    "length not a multiple of three",
			raw:     "0010",
			wantErr: domain.ErrInvalidTraceLength,
		},
		{
			name:    "separators do not pad the length",
			raw:     "00_10",
			wantErr: domain.ErrInvalidTraceLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps, err := trace.Decode(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, steps)
		})
	}
}

func TestClean(t *testing.T) {
	assert.Equal(t, "001010", trace.Clean("001_010"))
	assert.Equal(t, "", trace.Clean("abc"))
}

func TestDecode_DemoTrace(t *testing.T) {
	steps, err := trace.Decode("001010010101100001110110")
	require.NoError(t, err)
	require.Len(t, steps, 8)

	assert.Equal(t, domain.Step{Index: 0, Input: "00", Output: "1"}, steps[0])
	assert.Equal(t, domain.Step{Index: 7, Input: "11", Output: "0"}, steps[7])
}
