package demo

import (
	"errors"
	"testing"
	"time"
)

func TestScenarioValidate(t *testing.T) {
	tests := []struct {
		name       string
		scenario   *Scenario
		wantErr    bool
		errField   string
		wantWidth  int
		wantHeight int
	}{
		{
			name: "valid scenario",
			scenario: &Scenario{
				Name:   "test",
				Width:  100,
				Height: 30,
				Setup:  DefaultSetup(),
			},
			wantWidth:  100,
			wantHeight: 30,
		},
		{
			name:     "missing name",
			scenario: &Scenario{Description: "Test scenario"},
			wantErr:  true,
			errField: "Name",
		},
		{
			name:       "default width and height",
			scenario:   &Scenario{Name: "test"},
			wantWidth:  120,
			wantHeight: 40,
		},
		{
			name: "unknown fail op",
			scenario: &Scenario{
				Name:  "test",
				Steps: []Step{Wait(time.Millisecond), Fail(Op("Explode"))},
			},
			wantErr:  true,
			errField: "Steps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scenario.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("error type = %T, want *ValidationError", err)
				}
				if verr.Field != tt.errField {
					t.Errorf("Field = %q, want %q", verr.Field, tt.errField)
				}
				return
			}
			if tt.scenario.Width != tt.wantWidth {
				t.Errorf("Width = %d, want %d", tt.scenario.Width, tt.wantWidth)
			}
			if tt.scenario.Height != tt.wantHeight {
				t.Errorf("Height = %d, want %d", tt.scenario.Height, tt.wantHeight)
			}
			if tt.scenario.Setup == nil {
				t.Error("Setup should be defaulted")
			}
		})
	}
}

func TestStepBuilders(t *testing.T) {
	if s := Wait(time.Second); s.Type != StepWait || s.Duration != time.Second {
		t.Errorf("Wait() = %+v", s)
	}
	if s := Key("d"); s.Type != StepKey || s.Key != "d" {
		t.Errorf("Key() = %+v", s)
	}
	if s := KeyWithDesc("d", "Delete"); s.Description != "Delete" {
		t.Errorf("KeyWithDesc() = %+v", s)
	}
	if s := Type("hi"); s.Type != StepTypeText || s.Text != "hi" {
		t.Errorf("Type() = %+v", s)
	}
	if s := Fail(OpDeleteComment); s.Type != StepFail || s.Op != OpDeleteComment {
		t.Errorf("Fail() = %+v", s)
	}
	if s := Annotate("note"); s.Type != StepAnnotate || s.Annotation != "note" {
		t.Errorf("Annotate() = %+v", s)
	}
	if s := Capture(); s.Type != StepCapture {
		t.Errorf("Capture() = %+v", s)
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "Name", Message: "scenario name is required"}
	want := "validation error: Name: scenario name is required"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
