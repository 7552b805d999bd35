package cli

import (
	"bytes"
	"strings"
	"testing"
)

var tableRows = [][]string{
	{"Component", "State"},
	{"host", "Running"},
	{"kubeconfig", "Configured"},
}

func TestPrinterTable(t *testing.T) {
	var out bytes.Buffer
	p := &Printer{Out: &out}
	p.Table(tableRows)

	got := out.String()
	for _, want := range []string{"Component", "State", "host", "Running", "kubeconfig", "Configured"} {
		if !strings.Contains(got, want) {
			t.Errorf("table output missing %q: %q", want, got)
		}
	}
	if strings.Index(got, "Component") > strings.Index(got, "host") {
		t.Errorf("header must precede rows: %q", got)
	}
	if strings.Index(got, "host") > strings.Index(got, "kubeconfig") {
		t.Errorf("rows must keep their order: %q", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("table output must end with a newline: %q", got)
	}
}

func TestPrinterTableBoxed(t *testing.T) {
	var plain, boxed bytes.Buffer
	(&Printer{Out: &plain}).Table(tableRows)
	(&Printer{Out: &boxed}).TableBoxed(tableRows)

	if !strings.Contains(boxed.String(), "Configured") {
		t.Errorf("boxed output missing row: %q", boxed.String())
	}
	if got, base := strings.Count(boxed.String(), "\n"), strings.Count(plain.String(), "\n"); got <= base {
		t.Errorf("boxed table has %d lines, want more than the plain table's %d:\n%s", got, base, boxed.String())
	}
}

func TestPrinterTableEmpty(t *testing.T) {
	var out bytes.Buffer
	p := &Printer{Out: &out}
	p.Table(nil)
	p.TableBoxed([][]string{})
	if out.Len() != 0 {
		t.Errorf("empty table wrote %q", out.String())
	}
}

func TestPrinterColors(t *testing.T) {
	for name, color := range map[string]func(string) string{
		"Green":  Green,
		"Yellow": Yellow,
		"Red":    Red,
		"Cyan":   Cyan,
	} {
		if got := color("(PATH lookup)"); !strings.Contains(got, "(PATH lookup)") {
			t.Errorf("%s() = %q, want the input text preserved", name, got)
		}
	}
}

func TestPrinterQuietMode(t *testing.T) {
	var out bytes.Buffer
	p := &Printer{Out: &out, Quiet: true}

	p.Section("Settings")
	p.Step("checking minikube")
	p.Info("Cluster started.")
	if out.Len() != 0 {
		t.Errorf("quiet printer wrote %q", out.String())
	}

	p.Warn("minikube already running")
	p.Error("Failed to stop cluster: boom")
	p.Table(tableRows)
	got := out.String()
	for _, want := range []string{"minikube already running", "Failed to stop cluster: boom", "Configured"} {
		if !strings.Contains(got, want) {
			t.Errorf("quiet mode must keep %q, got %q", want, got)
		}
	}
}

func TestPrinterLevels(t *testing.T) {
	tests := []struct {
		name   string
		print  func(p *Printer)
		prefix string
		text   string
	}{
		{"info", func(p *Printer) { p.Info("Cluster started.") }, "INFO", "Cluster started."},
		{"warn", func(p *Printer) { p.Warn("minikube already running") }, "WARNING", "minikube already running"},
		{"error", func(p *Printer) { p.Error("Failed to stop cluster: boom") }, "ERROR", "Failed to stop cluster: boom"},
		{"success", func(p *Printer) { p.Success("done") }, "SUCCESS", "done"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			tt.print(&Printer{Out: &out})
			got := out.String()
			if !strings.Contains(got, tt.prefix) || !strings.Contains(got, tt.text) {
				t.Errorf("output = %q, want prefix %q and text %q", got, tt.prefix, tt.text)
			}
			if !strings.HasSuffix(got, "\n") {
				t.Errorf("output must end with a newline: %q", got)
			}
		})
	}
}

func TestPrinterSectionAndStep(t *testing.T) {
	var out bytes.Buffer
	p := &Printer{Out: &out}
	p.Section("Settings")
	p.Step("checking minikube")

	got := out.String()
	if !strings.Contains(got, "Settings") {
		t.Errorf("section missing title: %q", got)
	}
	if !strings.Contains(got, "→") || !strings.Contains(got, "checking minikube") {
		t.Errorf("step missing marker or text: %q", got)
	}
}

func TestPrinterPrintf(t *testing.T) {
	var out bytes.Buffer
	p := &Printer{Out: &out}
	p.Printf("value=%d\n", 1)
	p.Println("running:", true)
	if out.String() != "value=1\nrunning: true\n" {
		t.Errorf("Printf/Println wrote %q", out.String())
	}
}
