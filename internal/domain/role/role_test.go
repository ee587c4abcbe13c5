package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantToken string
		wantErr   bool
	}{
		{name: "admin", in: "admin", wantToken: "adminToken"},
		{name: "employee mixed case", in: " Employee ", wantToken: "employeeToken"},
		{name: "legacy", in: "legacy", wantToken: "token"},
		{name: "unknown", in: "guest", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Lookup(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, d.TokenKey)
		})
	}
}

func TestDescriptor_KeysNeverOverlap(t *testing.T) {
	seen := map[string]Name{}
	for _, n := range Names() {
		for _, k := range MustLookup(n).Keys() {
			owner, dup := seen[k]
			assert.False(t, dup, "ключ %s принадлежит и %s, и %s", k, owner, n)
			seen[k] = n
		}
	}
}

func TestDescriptor_Paths(t *testing.T) {
	d := MustLookup(Employee)

	assert.Equal(t, "/api/user/records/5", d.RecordPath("5"))
	assert.Equal(t, "/api/user/records/5/images", d.RecordImagesPath("5"))
	assert.Equal(t, "/api/user/images/9", d.ImagePath("9"))
	assert.Equal(t, "/api/employee/employees/3", d.EmployeePath("3"))
	assert.True(t, d.ForceAssignee)
	assert.False(t, d.ImageDescriptions)
}

func TestDescriptor_PathsEscapeID(t *testing.T) {
	d := MustLookup(Admin)

	assert.Equal(t, "/api/records/a%2Fb", d.RecordPath("a/b"))
	assert.Equal(t, "/api/records/x%3Fy=1/images", d.RecordImagesPath("x?y=1"))
	assert.Equal(t, "/api/images/%23frag", d.ImagePath("#frag"))
	assert.Equal(t, "/api/employee/employees/a%20b", d.EmployeePath("a b"))
	assert.Equal(t, "/api/records/007", d.RecordPath("007"))
}
