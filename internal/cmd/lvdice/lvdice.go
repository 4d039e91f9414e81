// Package lvdice implements the lvdice command: exact dice-sum tables,
// statistics, plots and rolls for a cluster written in dice notation.
package lvdice

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/lvdice/dice"
	"github.com/katalvlaran/lvdice/distribution"
	"github.com/katalvlaran/lvdice/internal/config"
	"github.com/katalvlaran/lvdice/poly"
	"github.com/katalvlaran/lvdice/render"
	"github.com/katalvlaran/lvdice/roll"
	"gonum.org/v1/plot/vg"
)

// Commands understood by Run.
const (
	CmdTable = "table"
	CmdWays  = "ways"
	CmdStats = "stats"
	CmdPlot  = "plot"
	CmdRoll  = "roll"
)

// ErrUsage indicates missing or malformed positional arguments.
var ErrUsage = errors.New("usage: lvdice [flags] table|stats|plot|roll <dice> | ways <dice> <target>")

// Config holds lvdice command configuration.
type Config struct {
	Env     config.Config
	Command string
	Cluster dice.Cluster
	Target  int
	Kind    render.Kind
	Output  string
	Trials  int
}

// ParseConfig parses flags and positional arguments on top of the
// environment settings. environ nil means the process environment.
func ParseConfig(fs *flag.FlagSet, args []string, environ map[string]string) (Config, error) {
	envCfg, err := config.Load(environ)
	if err != nil {
		return Config{}, err
	}
	var kind string
	var output string
	var trials int

	fs.StringVar(&envCfg.Format, "format", envCfg.Format, "plot output: text, png, svg, pdf")
	fs.StringVar(&envCfg.OutputDir, "dir", envCfg.OutputDir, "directory for generated plot files")
	fs.Float64Var(&envCfg.WidthIn, "width", envCfg.WidthIn, "plot width in inches")
	fs.Float64Var(&envCfg.HeightIn, "height", envCfg.HeightIn, "plot height in inches")
	fs.Int64Var(&envCfg.Seed, "seed", envCfg.Seed, "random seed for roll (0 = random)")
	fs.StringVar(&envCfg.Strategy, "strategy", envCfg.Strategy, "multiplication: auto, schoolbook, kronecker")
	fs.StringVar(&kind, "series", "probability", "series to plot: counts, probability, cumulative")
	fs.StringVar(&output, "out", "", "plot file path (default: generated name in -dir)")
	fs.IntVar(&trials, "n", 1, "number of rolls")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := envCfg.Validate(); err != nil {
		return Config{}, err
	}

	k, err := render.ParseKind(kind)
	if err != nil {
		return Config{}, err
	}

	rest := fs.Args()
	if len(rest) < 2 {
		return Config{}, ErrUsage
	}
	cfg := Config{
		Env:     envCfg,
		Command: rest[0],
		Kind:    k,
		Output:  output,
		Trials:  trials,
	}

	switch cfg.Command {
	case CmdWays:
		if len(rest) != 3 {
			return Config{}, ErrUsage
		}
		target, err := strconv.Atoi(rest[2])
		if err != nil {
			return Config{}, fmt.Errorf("%w: target %q is not an integer", ErrUsage, rest[2])
		}
		cfg.Target = target
	case CmdTable, CmdStats, CmdPlot, CmdRoll:
		if len(rest) != 2 {
			return Config{}, ErrUsage
		}
	default:
		return Config{}, fmt.Errorf("%w: unknown command %q", ErrUsage, cfg.Command)
	}

	cfg.Cluster, err = dice.Parse(rest[1])
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// RendererFactory builds the sink for the plot command. path is empty for
// the text format.
type RendererFactory func(cfg Config, path string, out io.Writer) (render.Renderer, error)

// Deps are the collaborators Run needs; zero fields get defaults.
type Deps struct {
	IDs         IDGenerator
	NewRenderer RendererFactory
}

// Run executes the lvdice command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	return RunWith(ctx, cfg, out, errOut, Deps{})
}

// RunWith is Run with explicit collaborators.
func RunWith(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer, deps Deps) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if deps.IDs == nil {
		deps.IDs = NewUUIDGenerator()
	}
	if deps.NewRenderer == nil {
		deps.NewRenderer = defaultRenderer
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	logger := log.New(errOut, "lvdice: ", 0)

	if cfg.Command == CmdRoll {
		return runRoll(cfg, out)
	}

	d, err := distribution.New(cfg.Cluster,
		distribution.WithPolyOptions(poly.WithStrategy(cfg.Env.PolyStrategy())))
	if err != nil {
		return err
	}

	switch cfg.Command {
	case CmdTable:
		return writeTable(out, d)
	case CmdWays:
		return writeWays(out, d, cfg.Target)
	case CmdStats:
		return writeStats(out, d)
	case CmdPlot:
		if err := ctx.Err(); err != nil {
			return err
		}
		path := plotPath(cfg, deps.IDs)
		r, err := deps.NewRenderer(cfg, path, out)
		if err != nil {
			return err
		}
		if err := render.Draw(r, d, cfg.Kind); err != nil {
			return err
		}
		if path != "" {
			logger.Printf("wrote %s plot of %s to %s", cfg.Kind, d.Name(), path)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, cfg.Command)
	}
}

func writeTable(out io.Writer, d *distribution.Distribution) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "sum\tways\tprobability\tcumulative\t")
	probs := d.ProbabilitySeries()
	cum := d.CumulativeSeries()
	for i, w := range d.FullSeries() {
		fmt.Fprintf(tw, "%d\t%s\t%.6f\t%.6f\t\n", d.MinSum()+i, w, probs[i], cum[i])
	}
	fmt.Fprintf(tw, "total\t%s\t\t\t\n", d.TotalOutcomes())
	return tw.Flush()
}

func writeWays(out io.Writer, d *distribution.Distribution, target int) error {
	_, err := fmt.Fprintf(out, "ways(%d) = %s of %s\nP(%d) = %s ≈ %.6f\n",
		target, d.Ways(target), d.TotalOutcomes(),
		target, d.ProbabilityRat(target).RatString(), d.Probability(target))
	return err
}

func writeStats(out io.Writer, d *distribution.Distribution) error {
	s := d.Stats()
	modes := make([]string, len(s.Modes))
	for i, m := range s.Modes {
		modes[i] = strconv.Itoa(m)
	}
	_, err := fmt.Fprintf(out,
		"dice:     %s\nrange:    %d..%d\noutcomes: %s\nmean:     %.4f\nvariance: %.4f\nstddev:   %.4f\nmedian:   %d\nmode:     %s\n",
		d.Name(), s.Min, s.Max, d.TotalOutcomes(), s.Mean, s.Variance, s.StdDev, s.Median, strings.Join(modes, ", "))
	return err
}

func runRoll(cfg Config, out io.Writer) error {
	var opts []roll.Option
	if cfg.Env.Seed != 0 {
		opts = append(opts, roll.WithSeed(cfg.Env.Seed))
	}
	results, err := roll.New(opts...).RollN(cfg.Cluster, cfg.Trials)
	if err != nil {
		return err
	}

	sum := 0
	for _, res := range results {
		faces := make([]string, len(res.Rolls))
		for i, sr := range res.Rolls {
			faces[i] = fmt.Sprint(sr.Faces)
		}
		fmt.Fprintf(out, "%s: %s = %d\n", cfg.Cluster, strings.Join(faces, " "), res.Total)
		sum += res.Total
	}
	if len(results) > 1 {
		fmt.Fprintf(out, "average %.4f over %d rolls (expected %.4f)\n",
			float64(sum)/float64(len(results)), len(results), cfg.Cluster.Mean())
	}
	return nil
}

// plotPath returns where an image plot goes, or "" for the text format.
func plotPath(cfg Config, ids IDGenerator) string {
	if cfg.Env.Format == "text" {
		return ""
	}
	if cfg.Output != "" {
		return cfg.Output
	}
	id := ids.NewID()
	if len(id) > 8 {
		id = id[:8]
	}
	name := strings.ReplaceAll(cfg.Cluster.String(), "+", "_")
	return filepath.Join(cfg.Env.OutputDir, fmt.Sprintf("%s-%s-%s.%s", name, cfg.Kind, id, cfg.Env.Format))
}

func defaultRenderer(cfg Config, path string, out io.Writer) (render.Renderer, error) {
	if path == "" {
		return render.NewTextRenderer(out, render.DefaultBarWidth), nil
	}
	size := render.WithSize(vg.Length(cfg.Env.WidthIn)*vg.Inch, vg.Length(cfg.Env.HeightIn)*vg.Inch)
	return render.NewPlotFile(path, size)
}
