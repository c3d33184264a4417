package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// config holds the parsed command line
type config struct {
	Input        string
	Format       string
	Output       string
	OutputFormat string
	Weight       float64
	Epsilon      float64
	MaxDepth     float64
	MaxSteps     int
	Workers      int
	Bound        int
	Render       string
	RenderSize   int
	Verbose      bool
	Color        bool
}

func parseArgs(args []string) (*config, error) {
	cfg := &config{}
	app := kingpin.New("lattice-planner", "Shortest 8-connected lattice route around triangular obstacles.")
	app.Arg("input", "Problem file (stdin when omitted).").StringVar(&cfg.Input)
	app.Flag("format", "Input format.").Default("text").EnumVar(&cfg.Format, "text", "geojson")
	app.Flag("output", "Output file (stdout when omitted).").Short('o').StringVar(&cfg.Output)
	app.Flag("output-format", "Output format.").Default("text").EnumVar(&cfg.OutputFormat, "text", "geojson")
	app.Flag("weight", "Static heuristic weight (>= 1, 0 disables).").Default("0").Float64Var(&cfg.Weight)
	app.Flag("epsilon", "Dynamic weighting epsilon (0 disables).").Default("0").Float64Var(&cfg.Epsilon)
	app.Flag("max-depth", "Dynamic weighting depth (0 estimates from the terminals).").Default("0").Float64Var(&cfg.MaxDepth)
	app.Flag("max-steps", "Expansion budget (0 is unbounded).").Default("0").IntVar(&cfg.MaxSteps)
	app.Flag("workers", "Goroutines checking neighbor validity.").Default("1").IntVar(&cfg.Workers)
	app.Flag("bound", "Coordinate bound.").Default(fmt.Sprint(DefaultBound)).IntVar(&cfg.Bound)
	app.Flag("render", "Write a PNG of the solution to this file.").StringVar(&cfg.Render)
	app.Flag("render-size", "PNG size in pixels.").Default("800").IntVar(&cfg.RenderSize)
	app.Flag("verbose", "Log progress to stderr.").Short('v').BoolVar(&cfg.Verbose)
	app.Flag("color", "Colorize the stderr summary (--no-color disables).").Default("true").BoolVar(&cfg.Color)

	if _, err := app.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// weighting maps the flags onto a policy
func (cfg *config) weighting(problem *Problem) (Weighting, error) {
	switch {
	case cfg.Epsilon > 0 && cfg.Weight > 0:
		return Weighting{}, errors.Wrap(ErrInvalidWeighting, "--weight and --epsilon are exclusive")
	case cfg.Epsilon > 0:
		depth := cfg.MaxDepth
		if depth <= 0 {
			depth = EstimateDepth(problem)
		}
		return Dynamic(cfg.Epsilon, depth)
	case cfg.Weight > 0:
		return Static(cfg.Weight)
	}
	return NoWeighting(), nil
}

func loadInput(cfg *config, stdin io.Reader) (*Problem, error) {
	var data []byte
	var err error
	if cfg.Input == "" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(cfg.Input)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read input")
	}

	options := []ProblemOption{WithBound(cfg.Bound)}
	if cfg.Format == "geojson" {
		return LoadGeoJSONProblem(data, options...)
	}
	return LoadProblem(bytes.NewReader(data), options...)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseArgs(args)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	problem, err := loadInput(cfg, stdin)
	if err != nil {
		return err
	}
	weighting, err := cfg.weighting(problem)
	if err != nil {
		return err
	}

	startTime := time.Now()
	solution, err := Solve(ctx, problem,
		WithWeighting(weighting),
		WithMaxSteps(cfg.MaxSteps),
		WithWorkers(cfg.Workers),
	)
	if err != nil {
		return err
	}
	elapsed := time.Since(startTime)

	if err := writeOutput(cfg, stdout, solution); err != nil {
		return err
	}

	if cfg.Render != "" {
		if err := RenderPNG(problem, solution, cfg.Render, cfg.RenderSize); err != nil {
			return err
		}
	}

	if cfg.Verbose {
		printSummary(stderr, aurora.NewAurora(cfg.Color), solution, elapsed)
	}
	return nil
}

// writeOutput writes the solution to stdout or to the -o file. The file is
// closed before returning so a failed flush is reported.
func writeOutput(cfg *config, stdout io.Writer, solution Solution) error {
	write := WriteSolution
	if cfg.OutputFormat == "geojson" {
		write = WriteGeoJSONSolution
	}
	if cfg.Output == "" {
		return write(stdout, solution)
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return errors.Wrap(err, "failed to create output")
	}
	if err := write(f, solution); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "failed to close output")
}

func printSummary(w io.Writer, au aurora.Aurora, solution Solution, elapsed time.Duration) {
	if !solution.Found {
		fmt.Fprintf(w, "%s (%s, %d expanded, %.2fs)\n",
			au.Red(ImpossibleToken).Bold(), solution.Search.Reason, solution.Search.Expanded, elapsed.Seconds())
		return
	}
	fmt.Fprintf(w, "%s %d waypoints, lattice cost %.3f, length %.3f (%d expanded, %.2fs)\n",
		au.Green("path found:").Bold(), len(solution.Waypoints), solution.Cost, solution.Length(),
		solution.Search.Expanded, elapsed.Seconds())
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
