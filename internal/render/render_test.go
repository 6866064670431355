package render

import (
	"testing"

	"github.com/gabrielcarioca/nanogram-solver/internal/domain"
)

func TestRenderMixedStates(t *testing.T) {
	g := domain.NewGrid(2)
	g.Set(0, 0, domain.Filled)
	g.Set(0, 1, domain.Empty)
	// (1,0) left Unknown
	g.Set(1, 1, domain.Filled)

	got := New().Render(g)
	want := "█ \n·█\n"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}

func TestRenderCustomSymbols(t *testing.T) {
	g := domain.NewGrid(1)
	g.Set(0, 0, domain.Filled)
	r := NewWithSymbols(Symbols{Filled: '#', Empty: '.', Unknown: '?'})
	if got := r.Render(g); got != "#\n" {
		t.Fatalf("Render = %q, want %q", got, "#\n")
	}
}
