package repository

import "testing"

func TestOrderClause(t *testing.T) {
	tests := []struct {
		sortBy  string
		sortDir string
		want    string
	}{
		{"id", "asc", "id ASC"},
		{"lastName", "desc", "last_name DESC"},
		{"dateOfBirth", "DESC", "date_of_birth DESC"},
		{"createdAt", "", "created_at ASC"},
		// Unknown columns fall back to the primary key
		{"password; DROP TABLE patients", "asc", "id ASC"},
		{"", "desc", "id DESC"},
	}

	for _, tt := range tests {
		if got := orderClause(patientSortColumns, tt.sortBy, tt.sortDir); got != tt.want {
			t.Errorf("orderClause(%q, %q) = %q, want %q", tt.sortBy, tt.sortDir, got, tt.want)
		}
	}
}

func TestDoctorSortColumns(t *testing.T) {
	if got := orderClause(doctorSortColumns, "consultationFee", "desc"); got != "consultation_fee DESC" {
		t.Errorf("unexpected clause %q", got)
	}
	if got := orderClause(doctorSortColumns, "licenseNumber", "asc"); got != "license_number ASC" {
		t.Errorf("unexpected clause %q", got)
	}
}
