package app

import (
	"strings"
	"testing"

	"aspectmask/pkg/aspectmask"
)

func TestStepMovesAtSpriteSpeed(t *testing.T) {
	if got := Step(0, 1, 0.5, ResolutionWidth); got != SpriteSpeed*0.5 {
		t.Fatalf("right: got %v", got)
	}
	if got := Step(0, -1, 0.5, ResolutionWidth); got != -SpriteSpeed*0.5 {
		t.Fatalf("left: got %v", got)
	}
	if got := Step(42, 0, 1, ResolutionWidth); got != 42 {
		t.Fatalf("idle: got %v", got)
	}
}

func TestStepWrapsPastDesignEdges(t *testing.T) {
	edge := HalfSpriteWidth + ResolutionWidth/2.0
	if got := Step(edge+1, 1, 0.1, ResolutionWidth); got != -edge {
		t.Fatalf("expected wrap to %v, got %v", -edge, got)
	}
	if got := Step(-edge-1, -1, 0.1, ResolutionWidth); got != edge {
		t.Fatalf("expected wrap to %v, got %v", edge, got)
	}
}

func TestFitReport(t *testing.T) {
	res := aspectmask.Resolution{Width: ResolutionWidth, Height: ResolutionHeight}
	report := FitReport(res, aspectmask.Fit(res, aspectmask.WindowSize{Width: 780, Height: 480}))
	for _, want := range []string{"design: 600x480", "window: 780x480", "bar right: 90.0x480.0 at 690.0,0.0", "bar top: 780.0x0.0 at 0.0,0.0"} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
}

func TestNewAttachesHudContent(t *testing.T) {
	a, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	children := a.Plugin().Hud().Children()
	if len(children) != 2 {
		t.Fatalf("expected caption and status, got %d", len(children))
	}
	if !strings.HasPrefix(children[0].Text, "Press Left / Right To Move") {
		t.Fatalf("unexpected caption %q", children[0].Text)
	}
}

func TestNewRejectsBadResolution(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Resolution.Height = -1
	if _, err := New(cfg); err == nil {
		t.Fatal("expected configuration error")
	}
}
