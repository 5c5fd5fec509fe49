package main

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"aspectmask/pkg/aspectmask"
)

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#030712")
	if err != nil {
		t.Fatal(err)
	}
	if c != (color.RGBA{0x03, 0x07, 0x12, 0xFF}) {
		t.Fatalf("unexpected color %#v", c)
	}

	c, err = parseHexColor("fff")
	if err != nil || c != (color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}) {
		t.Fatalf("short form: %#v %v", c, err)
	}

	c, err = parseHexColor("#FF000080")
	if err != nil {
		t.Fatal(err)
	}
	if c.A != 0x80 || c.R != 0x80 {
		t.Fatalf("alpha not premultiplied: %#v", c)
	}

	for _, bad := range []string{"", "#12345", "#gggggg"} {
		if _, err := parseHexColor(bad); err == nil {
			t.Fatalf("%q: expected error", bad)
		}
	}
}

func TestParseSize(t *testing.T) {
	w, h, err := parseSize("1920x1080")
	if err != nil || w != 1920 || h != 1080 {
		t.Fatalf("unexpected %dx%d %v", w, h, err)
	}
	for _, bad := range []string{"1920", "0x10", "10x-1", "axb"} {
		if _, _, err := parseSize(bad); err == nil {
			t.Fatalf("%q: expected error", bad)
		}
	}
}

func TestReportFlagPrintsFit(t *testing.T) {
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--width", "960", "--height", "540", "--report", "1920x540"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	got := out.String()
	for _, want := range []string{"design: 960x540", "scale: 1.0000", "bar left: 480.0x540.0 at 0.0,0.0", "content: 960.0x540.0 at 480.0,0.0"} {
		if !strings.Contains(got, want) {
			t.Fatalf("report missing %q:\n%s", want, got)
		}
	}
	if interactive {
		t.Fatal("report mode must not mark the run interactive")
	}
}

func TestInvalidResolutionFailsFast(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--width", "0", "--report", "800x600"})
	err := cmd.Execute()
	if !errors.Is(err, aspectmask.ErrInvalidResolution) {
		t.Fatalf("expected ErrInvalidResolution, got %v", err)
	}
}
