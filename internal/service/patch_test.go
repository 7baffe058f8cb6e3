package service

import (
	"encoding/json"
	"testing"
)

func TestTaskPatchTriState(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		check   func(*testing.T, TaskPatch)
	}{
		{
			name:    "absent key stays unset",
			payload: `{}`,
			check: func(t *testing.T, p TaskPatch) {
				if p.Title.Set || p.DueDate.Set || p.Completed.Set {
					t.Error("expected all fields unset")
				}
			},
		},
		{
			name:    "explicit null is set and null",
			payload: `{"dueDate": null}`,
			check: func(t *testing.T, p TaskPatch) {
				if !p.DueDate.Set || !p.DueDate.Null {
					t.Errorf("expected set+null, got %+v", p.DueDate)
				}
				if p.DoDate.Set {
					t.Error("doDate should stay unset")
				}
			},
		},
		{
			name:    "explicit false is set with value",
			payload: `{"completed": false}`,
			check: func(t *testing.T, p TaskPatch) {
				if !p.Completed.Set || p.Completed.Null || p.Completed.Value {
					t.Errorf("expected set false, got %+v", p.Completed)
				}
			},
		},
		{
			name:    "values decode per field",
			payload: `{"title": "A", "dueDate": "2025-01-01", "isEphemeral": true}`,
			check: func(t *testing.T, p TaskPatch) {
				if !p.Title.Set || p.Title.Value != "A" {
					t.Errorf("title: %+v", p.Title)
				}
				if !p.DueDate.Set || p.DueDate.Value != "2025-01-01" {
					t.Errorf("dueDate: %+v", p.DueDate)
				}
				if !p.IsEphemeral.Set || !p.IsEphemeral.Value {
					t.Errorf("isEphemeral: %+v", p.IsEphemeral)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var patch TaskPatch
			if err := json.Unmarshal([]byte(tt.payload), &patch); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			tt.check(t, patch)
		})
	}
}

func TestFieldRejectsWrongType(t *testing.T) {
	var patch TaskPatch
	if err := json.Unmarshal([]byte(`{"completed": "yes"}`), &patch); err == nil {
		t.Fatal("expected type error")
	}
}
