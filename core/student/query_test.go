package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func names(students []Student) []string {
	out := make([]string, 0, len(students))
	for _, s := range students {
		out = append(out, s.FirstName)
	}
	return out
}

func fixtures() []Student {
	return []Student{
		{FirstName: "Cara", LastName: "smith", Email: "cara@uni.edu", CourseID: "DATA200", Mark: "85"},
		{FirstName: "Ann", LastName: "Brown", Email: "ann@uni.edu", CourseID: "CS101", Mark: "B"},
		{FirstName: "Bea", LastName: "Smith", Email: "BEA@uni.edu", CourseID: "DATA200", Mark: "n/a"},
		{FirstName: "Dan", LastName: "Adams", Email: "dan@uni.edu", CourseID: "DATA200", Mark: "85"},
	}
}

func TestSort(t *testing.T) {
	tests := []struct {
		name  string
		field SortField
		order Order
		want  []string
	}{
		{name: "name asc", field: SortByName, order: Asc, want: []string{"Dan", "Ann", "Bea", "Cara"}},
		{name: "name desc", field: SortByName, order: Desc, want: []string{"Cara", "Bea", "Ann", "Dan"}},
		{name: "mark asc", field: SortByMark, order: Asc, want: []string{"Bea", "Cara", "Dan", "Ann"}},
		{name: "mark desc keeps ties in order", field: SortByMark, order: Desc, want: []string{"Ann", "Cara", "Dan", "Bea"}},
		{name: "email asc", field: SortByEmail, order: Asc, want: []string{"Ann", "Bea", "Cara", "Dan"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			students := fixtures()
			got := Sort(students, tt.field, tt.order)
			assert.Equal(t, tt.want, names(got))
			assert.Equal(t, fixtures(), students, "input is not modified")
		})
	}
}

func TestSort_reversesAscendingWithoutTies(t *testing.T) {
	students := []Student{{Mark: "10"}, {Mark: "70"}, {Mark: "40"}}
	asc := Sort(students, SortByMark, Asc)
	desc := Sort(students, SortByMark, Desc)
	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		term string
		want []string
	}{
		{term: "SMITH", want: []string{"Cara", "Bea"}},
		{term: "bea@", want: []string{"Bea"}},
		{term: "cs1", want: []string{"Ann"}},
		{term: "nobody", want: []string{}},
		{term: "", want: []string{"Cara", "Ann", "Bea", "Dan"}},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Search(fixtures(), tt.term)))
		})
	}
}

func TestInCourse(t *testing.T) {
	assert.Equal(t, []string{"Cara", "Bea", "Dan"}, names(InCourse(fixtures(), "DATA200")))
	assert.Empty(t, InCourse(fixtures(), "data200"))
}

func TestParseSortField(t *testing.T) {
	tests := []struct {
		in      string
		want    SortField
		wantErr bool
	}{
		{in: "", want: SortByName},
		{in: "Mark", want: SortByMark},
		{in: " email ", want: SortByEmail},
		{in: "grade", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSortField(tt.in)
			if tt.wantErr {
				assert.Equal(t, ErrInvalidSortField, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOrder(t *testing.T) {
	o, err := ParseOrder("")
	assert.NoError(t, err)
	assert.Equal(t, Asc, o)

	o, err = ParseOrder("DESC")
	assert.NoError(t, err)
	assert.Equal(t, Desc, o)

	_, err = ParseOrder("up")
	assert.Equal(t, ErrInvalidOrder, err)
}
