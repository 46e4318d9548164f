package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/wallie/wallie/internal/countries"
)

var sample = []countries.Country{
	{Code: "US", Name: "United States of America", CallingCode: "+1"},
	{Code: "FR", Name: "France", CallingCode: "+33"},
}

func TestClampWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		err   error
		want  int
	}{
		{"too narrow", 20, nil, MinTerminalWidth},
		{"in range", 80, nil, 80},
		{"too wide", 300, nil, MaxContentWidth},
		{"not a terminal", 0, errors.New("inappropriate ioctl"), MinTerminalWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampWidth(tt.width, tt.err); got != tt.want {
				t.Errorf("clampWidth(%d) = %d, want %d", tt.width, got, tt.want)
			}
		})
	}
}

func TestRenderCountryTable(t *testing.T) {
	out := RenderCountryTable(sample, "FR", 80)

	for _, want := range []string{"CODE", "CALLING", "NAME", "France", "+33", "United States of America", DefaultMarker} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q", want)
		}
	}
	if strings.Count(out, DefaultMarker) != 1 {
		t.Errorf("default marker should appear once, got %d", strings.Count(out, DefaultMarker))
	}
}

func TestRenderCountryTableNoDefault(t *testing.T) {
	out := RenderCountryTable(sample, "ZZ", 80)

	if strings.Contains(out, DefaultMarker) {
		t.Error("no row should be marked when the default is absent")
	}
}

func TestPrintCountries(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).SetWidth(80)

	p.PrintCountries(sample, "US")
	if !strings.Contains(buf.String(), "2 countries") {
		t.Errorf("output missing count line:\n%s", buf.String())
	}

	buf.Reset()
	p.PrintCountries(nil, "US")
	if !strings.Contains(buf.String(), "No countries.") {
		t.Errorf("empty directory output = %q", buf.String())
	}
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader("Country Directory", "wallie countries", []Field{
		{Key: "Endpoint", Value: "https://example.test/all"},
	}, 80)

	for _, want := range []string{"COUNTRY DIRECTORY", "wallie countries", "Endpoint:", "https://example.test/all"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderErrorBox(t *testing.T) {
	out := RenderErrorBox("Fetch failed", "HTTP 503", []string{"Check the endpoint"}, 80)

	for _, want := range []string{FailureMarker, "Fetch failed", "Error: HTTP 503", "Troubleshooting:", "Check the endpoint"} {
		if !strings.Contains(out, want) {
			t.Errorf("error box missing %q", want)
		}
	}
}

func TestRenderErrorBoxWithoutMessage(t *testing.T) {
	out := RenderErrorBox("Fetch failed", "", nil, 80)

	if strings.Contains(out, "Error:") || strings.Contains(out, "Troubleshooting:") {
		t.Errorf("empty message and hints should be omitted, got %q", out)
	}
}

func TestRenderSuccessBoxKeepsFieldOrder(t *testing.T) {
	out := RenderSuccessBox("Config written", []Field{
		{Key: "Path", Value: "/tmp/a"},
		{Key: "Version", Value: "1"},
	}, 80)

	if strings.Index(out, "Path:") > strings.Index(out, "Version:") {
		t.Error("fields should render in the order given")
	}
}
