package service

import "testing"

func TestLifecycleToken(t *testing.T) {
	tests := []struct {
		entityName string
		action     string
		id         int64
		want       string
	}{
		{"PATIENT", ActionCreated, 42, "PATIENT_CREATED:42"},
		{"DOCTOR", ActionUpdated, 7, "DOCTOR_UPDATED:7"},
		{"SCHEDULE", ActionDeleted, 1, "SCHEDULE_DELETED:1"},
	}

	for _, tt := range tests {
		if got := LifecycleToken(tt.entityName, tt.action, tt.id); got != tt.want {
			t.Errorf("LifecycleToken(%q, %q, %d) = %q, want %q", tt.entityName, tt.action, tt.id, got, tt.want)
		}
	}
}
