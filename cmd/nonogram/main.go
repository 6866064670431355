// Command nonogram solves a puzzle definition read from a JSON file (or
// stdin) and prints the solved grid.
//
// The input is {"size": N, "rows": [[..],..], "cols": [[..],..]}.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gabrielcarioca/nanogram-solver/internal/domain"
	"github.com/gabrielcarioca/nanogram-solver/internal/render"
	"github.com/gabrielcarioca/nanogram-solver/internal/solver"
)

var (
	flagTimeout = flag.Duration("timeout", 30*time.Second, "give up after this long")
	flagStats   = flag.Bool("stats", false, "print solve statistics to stderr")
)

func main() {
	flag.Parse()

	p, err := loadPuzzle()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *flagTimeout)
	defer cancel()

	g, st, err := solver.NewEngine().Solve(ctx, p)
	if *flagStats {
		fmt.Fprintf(os.Stderr, "nodes=%d rounds=%d guesses=%d dur=%v\n",
			st.Nodes, st.Rounds, st.Guesses, st.Duration)
	}
	switch {
	case errors.Is(err, solver.ErrUnsolvable):
		fmt.Fprintln(os.Stderr, "no solution")
		os.Exit(1)
	case err != nil:
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	fmt.Print(render.New().Render(g))
}

func loadPuzzle() (*domain.Puzzle, error) {
	input := io.Reader(os.Stdin)
	if flag.Arg(0) != "" {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			return nil, err
		}
		defer f.Close()
		input = f
	}

	raw, err := io.ReadAll(io.LimitReader(input, 1<<20))
	if err != nil {
		return nil, err
	}
	var p domain.Puzzle
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return domain.NewPuzzle(p.Size, p.Rows, p.Cols)
}
