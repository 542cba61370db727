package grading

import (
	"math"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/checkmygrade/core"
)

func TestMarkToGrade(t *testing.T) {
	tests := []struct {
		mark string
		want string
	}{
		{mark: "100", want: "A"},
		{mark: "93", want: "A"},
		{mark: "92.99", want: "B"},
		{mark: "85", want: "B"},
		{mark: "84.99", want: "C"},
		{mark: "75", want: "C"},
		{mark: "74.99", want: "D"},
		{mark: "60", want: "D"},
		{mark: "59.99", want: "F"},
		{mark: "0", want: "F"},
		{mark: " 88 ", want: "B"},
		{mark: "B", want: "B"},
		{mark: "n/a", want: "n/a"},
	}
	for _, tt := range tests {
		t.Run(tt.mark, func(t *testing.T) {
			assert.Equal(t, tt.want, MarkToGrade(tt.mark))
		})
	}
}

func TestGradeToMark(t *testing.T) {
	want := map[string]float64{"A": 96.5, "B": 88.5, "C": 79.5, "D": 67.0, "F": 30.0}
	for _, letter := range Letters {
		got, ok := GradeToMark(letter)
		assert.True(t, ok, letter)
		assert.Equal(t, want[letter], got, letter)

		lower, ok := GradeToMark(strings.ToLower(letter))
		assert.True(t, ok, "lowercase "+letter)
		assert.Equal(t, got, lower)
	}

	_, ok := GradeToMark("E")
	assert.False(t, ok)
}

func TestRepresentativeMark(t *testing.T) {
	assert.Equal(t, "96.5", RepresentativeMark("a"))
	assert.Equal(t, "67.0", RepresentativeMark("D"))
	assert.Equal(t, "30.0", RepresentativeMark("F"))
	assert.Equal(t, "Z", RepresentativeMark("Z"))
}

func TestRoundTripIsLossyButIdempotent(t *testing.T) {
	for _, mark := range []string{"100", "93", "90", "84.5", "61", "12"} {
		first := RepresentativeMark(MarkToGrade(mark))
		second := RepresentativeMark(MarkToGrade(first))
		assert.Equal(t, first, second, mark)
	}
	assert.Equal(t, "88.5", RepresentativeMark(MarkToGrade("90")))
}

func TestSortableMark(t *testing.T) {
	tests := []struct {
		name    string
		mark    string
		want    float64
		wantErr bool
	}{
		{name: "numeric", mark: "72.5", want: 72.5},
		{name: "letter", mark: "b", want: 88.5},
		{name: "garbage", mark: "xx", wantErr: true},
		{name: "empty", mark: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SortableMark(tt.mark)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnresolvable))
				assert.True(t, math.IsInf(SortKey(tt.mark), -1))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, SortKey(tt.mark))
		})
	}
}

func TestParseMark(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr error
	}{
		{in: "0", want: 0},
		{in: "100", want: 100},
		{in: "55.5", want: 55.5},
		{in: "-1", wantErr: ErrOutOfRange},
		{in: "100.01", wantErr: ErrOutOfRange},
		{in: "ten", wantErr: ErrNotNumeric},
		{in: "NaN", wantErr: ErrNotNumeric},
		{in: "1e1", want: 10},
		{in: "0x1p6", wantErr: ErrNotNumeric},
		{in: "0X10", wantErr: ErrNotNumeric},
		{in: "5_0", wantErr: ErrNotNumeric},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMark(tt.in)
			if tt.wantErr != nil {
				assert.True(t, core.IsValidation(err))
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLetter(t *testing.T) {
	got, err := ParseLetter(" c ")
	assert.NoError(t, err)
	assert.Equal(t, "C", got)

	_, err = ParseLetter("E")
	assert.True(t, errors.Is(err, ErrInvalidGrade))
}

func TestEntry_Resolve(t *testing.T) {
	tests := []struct {
		name      string
		entry     Entry
		wantGrade string
		wantMark  string
		wantErr   error
	}{
		{name: "mark", entry: Entry{Mark: "91"}, wantGrade: "B", wantMark: "91"},
		{name: "letter", entry: Entry{Letter: "d"}, wantGrade: "D", wantMark: "67.0"},
		{name: "both", entry: Entry{Mark: "91", Letter: "A"}, wantErr: ErrConflictingEntry},
		{name: "none", entry: Entry{}, wantErr: ErrMissingEntry},
		{name: "bad mark", entry: Entry{Mark: "101"}, wantErr: ErrOutOfRange},
		{name: "bad letter", entry: Entry{Letter: "G"}, wantErr: ErrInvalidGrade},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grade, mark, err := tt.entry.Resolve()
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantGrade, grade)
			assert.Equal(t, tt.wantMark, mark)
		})
	}
}
