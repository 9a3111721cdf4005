package ui

import (
	"errors"
	"strings"
	"testing"
)

func TestClampWidth(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{in: 0, want: MinTerminalWidth},
		{in: 59, want: MinTerminalWidth},
		{in: 80, want: 80},
		{in: 250, want: MaxContentWidth},
	}

	for _, tt := range tests {
		if got := clampWidth(tt.in); got != tt.want {
			t.Errorf("clampWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestHeader_Render(t *testing.T) {
	out := NewHeader("Decoded frame", "SetAndGetLanguageResponse", []Field{
		{Key: "Action", Value: "get"},
		{Key: "Language", Value: "german"},
	}).SetWidth(80).Render()

	for _, want := range []string{"DECODED FRAME", "SetAndGetLanguageResponse", "Action:", "german"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Action") > strings.Index(out, "Language:") {
		t.Error("fields rendered out of order")
	}
}

func TestResult_Render(t *testing.T) {
	tests := []struct {
		name   string
		result *Result
		want   []string
	}{
		{
			name:   "success",
			result: NewSuccessResult("Frame encoded", []Field{{Key: "Hex", Value: "810f0102"}}),
			want:   []string{"SUCCESS", "Frame encoded", "810f0102"},
		},
		{
			name:   "failure",
			result: NewFailureResult("Decode failed", errors.New("payload too short"), []string{"check the hex"}),
			want:   []string{"FAILED", "payload too short", "check the hex"},
		},
		{
			name:   "warning",
			result: NewWarningResult("Unknown bits", nil).AddDetail("Bits", "30"),
			want:   []string{"WARNING", "Bits:", "30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.result.SetWidth(80).Render()
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("Render() missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestRenderPlain(t *testing.T) {
	got := RenderPlain([]Field{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}})
	want := "a: 1\nb: 2\n"
	if got != want {
		t.Errorf("RenderPlain() = %q, want %q", got, want)
	}
}
