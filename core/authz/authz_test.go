package authz

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnforcer(t *testing.T) {
	e, err := NewEnforcer()
	require.NoError(t, err)

	tests := []struct {
		name string
		role string
		perm Permission
		want bool
	}{
		{name: "professor writes grades", role: "Professor", perm: Permission{Grade, Write}, want: true},
		{name: "professor deletes courses", role: "Professor", perm: Permission{Course, Delete}, want: true},
		{name: "professor reads stats", role: "Professor", perm: Permission{Stats, Read}, want: true},
		{name: "professor cannot write stats", role: "Professor", perm: Permission{Stats, Write}},
		{name: "student reads own record", role: "Student", perm: Permission{Student, ReadOwn}, want: true},
		{name: "student reads own report", role: "Student", perm: Permission{Report, ReadOwn}, want: true},
		{name: "student cannot read every report", role: "Student", perm: Permission{Report, Read}},
		{name: "student cannot write grades", role: "Student", perm: Permission{Grade, Write}},
		{name: "student cannot sort", role: "Student", perm: Permission{Student, Sort}},
		{name: "both change password", role: "Student", perm: Permission{Account, ChangePassword}, want: true},
		{name: "unknown role", role: "Admin", perm: Permission{Student, Read}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Can(tt.role, tt.perm))
			if !tt.want {
				assert.True(t, errors.Is(e.Check(tt.role, tt.perm), ErrForbidden))
			}
		})
	}
}
