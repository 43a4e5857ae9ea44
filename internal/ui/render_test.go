package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestHeaderRender(t *testing.T) {
	h := NewHeader("image analysis", "hexforge analyze boot.img", map[string]string{
		"File": "boot.img",
	}).SetWidth(80)

	out := h.Render()
	if !strings.Contains(out, "IMAGE ANALYSIS") {
		t.Error("title not uppercased in header")
	}
	if !strings.Contains(out, "hexforge analyze boot.img") {
		t.Error("command line missing from header")
	}
	if !strings.Contains(out, "File:") || !strings.Contains(out, "boot.img") {
		t.Error("params missing from header")
	}
	if h.String() != out {
		t.Error("String() and Render() disagree")
	}
}

func TestRenderCommandHeader(t *testing.T) {
	out := RenderCommandHeader(HeaderConfig{
		Title:   "patch",
		Command: "hexforge patch boot.img",
	})
	if !strings.Contains(out, "PATCH") {
		t.Error("title missing from convenience header")
	}
}

func TestResultBoxes(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []string
	}{
		{
			name: "success",
			out:  RenderSuccess("Patch applied", map[string]string{"Replaced": "3"}),
			want: []string{"SUCCESS", "Patch applied", "Replaced:", "3"},
		},
		{
			name: "failure",
			out: RenderFailure("Patch write failed", errors.New("disk full"), []string{
				"Check free space",
			}),
			want: []string{"FAILED", "Patch write failed", "disk full", "Troubleshooting:", "Check free space"},
		},
		{
			name: "warning",
			out:  RenderWarning("No matches replaced", map[string]string{"Skipped": "2"}),
			want: []string{"WARNING", "No matches replaced", "Skipped:", "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, w := range tt.want {
				if !strings.Contains(tt.out, w) {
					t.Errorf("box missing %q:\n%s", w, tt.out)
				}
			}
		})
	}
}

func TestResultBuilder(t *testing.T) {
	r := NewWarningResult("Output exists", nil).
		AddDetail("Path", "out.txt").
		SetWidth(70)
	out := r.Render()
	if !strings.Contains(out, "Path:") || !strings.Contains(out, "out.txt") {
		t.Errorf("added detail missing:\n%s", out)
	}
	if r.String() != out {
		t.Error("String() and Render() disagree")
	}
}

func TestProgressLifecycle(t *testing.T) {
	p := NewProgress("Analyzing image...", 3).SetWidth(80)
	p.SetStepNames([]string{"Computing checksums", "Scanning signatures", "Detecting file type"})

	p.StartStep(1, "")
	out := p.Render()
	if !strings.Contains(out, "Analyzing image...") {
		t.Error("label missing from progress render")
	}
	if !strings.Contains(out, "Computing checksums") {
		t.Error("step name missing from progress render")
	}
	if !strings.Contains(out, "[1/3]") {
		t.Error("step counter missing from progress render")
	}

	p.CompleteStep(1, "64 bytes hashed")
	out = p.Render()
	if !strings.Contains(out, StepMarkerComplete) {
		t.Error("complete marker missing after CompleteStep")
	}
	if !strings.Contains(out, "(64 bytes hashed)") {
		t.Error("step message missing after CompleteStep")
	}

	p.StartStep(2, "")
	p.FailStep(2, "signature database unreadable")
	out = p.Render()
	if !strings.Contains(out, FailureMarker) {
		t.Error("failure marker missing after FailStep")
	}
	if !strings.Contains(out, "(signature database unreadable)") {
		t.Error("failure message missing after FailStep")
	}
	if p.Steps[1].Status != StepFailed {
		t.Errorf("step 2 status = %v, want StepFailed", p.Steps[1].Status)
	}
}

func TestProgressIgnoresOutOfRangeStep(t *testing.T) {
	p := NewProgress("", 2)
	p.CompleteStep(0, "")
	p.CompleteStep(3, "")
	for i, s := range p.Steps {
		if s.Status != StepPending {
			t.Errorf("step %d status changed by out-of-range update", i+1)
		}
	}
}

func TestRunOnceModel(t *testing.T) {
	m := NewRunOnceModel("step list")
	if m.View() != "step list" {
		t.Errorf("View() = %q, want the content verbatim", m.View())
	}
	if m.Init() == nil {
		t.Error("Init() must schedule an immediate quit")
	}
}

func TestPrinterWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintLines("first", "second")
	p.PrintHexPreview("00000000  DE AD BE EF")

	out := buf.String()
	if !strings.Contains(out, "first\nsecond\n") {
		t.Errorf("PrintLines output wrong:\n%s", out)
	}
	if !strings.Contains(out, "Preview") || !strings.Contains(out, "DE AD BE EF") {
		t.Errorf("hex preview box missing:\n%s", out)
	}

	buf.Reset()
	p.PrintHeader("info", "hexforge info x", nil)
	if !strings.Contains(buf.String(), "INFO") {
		t.Error("PrintHeader wrote no header")
	}

	buf.Reset()
	p.PrintSuccess("Done", nil)
	if !strings.Contains(buf.String(), "SUCCESS") {
		t.Error("PrintSuccess wrote no success box")
	}

	buf.Reset()
	p.PrintError("Broke", errors.New("boom"), nil)
	if !strings.Contains(buf.String(), "FAILED") {
		t.Error("PrintError wrote no error box")
	}
}
