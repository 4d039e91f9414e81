package lvdice

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvdice/dice"
	"github.com/katalvlaran/lvdice/internal/cmd/lvdice/mocks"
	"github.com/katalvlaran/lvdice/render"
	renderMocks "github.com/katalvlaran/lvdice/render/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func parse(t *testing.T, environ map[string]string, args ...string) (Config, error) {
	t.Helper()
	fs := flag.NewFlagSet("lvdice", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if environ == nil {
		environ = map[string]string{}
	}
	return ParseConfig(fs, args, environ)
}

func TestParseConfig_Commands(t *testing.T) {
	cfg, err := parse(t, nil, "table", "2d6")
	require.NoError(t, err)
	assert.Equal(t, CmdTable, cfg.Command)
	assert.Equal(t, dice.Cluster{{Count: 2, Faces: 6}}, cfg.Cluster)
	assert.Equal(t, render.Probabilities, cfg.Kind)
	assert.Equal(t, 1, cfg.Trials)

	cfg, err = parse(t, nil, "ways", "1d4+1d6", "5")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Target)

	cfg, err = parse(t, map[string]string{"LVDICE_FORMAT": "svg"},
		"-series", "cumulative", "-out", "x.svg", "-n", "3", "plot", "3d6")
	require.NoError(t, err)
	assert.Equal(t, "svg", cfg.Env.Format)
	assert.Equal(t, render.Cumulative, cfg.Kind)
	assert.Equal(t, "x.svg", cfg.Output)
	assert.Equal(t, 3, cfg.Trials)
}

func TestParseConfig_FlagsOverrideEnv(t *testing.T) {
	cfg, err := parse(t, map[string]string{"LVDICE_SEED": "5", "LVDICE_STRATEGY": "schoolbook"},
		"-seed", "9", "-strategy", "kronecker", "roll", "d20")
	require.NoError(t, err)
	assert.Equal(t, int64(9), cfg.Env.Seed)
	assert.Equal(t, "kronecker", cfg.Env.Strategy)
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no args", args: nil, wantErr: ErrUsage},
		{name: "missing dice", args: []string{"table"}, wantErr: ErrUsage},
		{name: "unknown command", args: []string{"graph", "2d6"}, wantErr: ErrUsage},
		{name: "ways without target", args: []string{"ways", "2d6"}, wantErr: ErrUsage},
		{name: "ways bad target", args: []string{"ways", "2d6", "seven"}, wantErr: ErrUsage},
		{name: "extra args", args: []string{"stats", "2d6", "7"}, wantErr: ErrUsage},
		{name: "bad dice", args: []string{"table", "2x6"}, wantErr: dice.ErrSyntax},
		{name: "zero dice", args: []string{"table", "0d6"}, wantErr: dice.ErrInvalidCount},
		{name: "bad series", args: []string{"-series", "pie", "plot", "2d6"}, wantErr: render.ErrUnknownKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, nil, tt.args...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func run(t *testing.T, deps Deps, args ...string) (string, string, error) {
	t.Helper()
	cfg, err := parse(t, nil, args...)
	require.NoError(t, err)
	var out, errOut bytes.Buffer
	err = RunWith(context.Background(), cfg, &out, &errOut, deps)
	return out.String(), errOut.String(), err
}

func TestRun_Table(t *testing.T) {
	out, _, err := run(t, Deps{}, "table", "1d6")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 8, "header + 6 sums + total")
	assert.Contains(t, lines[0], "probability")
	assert.Contains(t, lines[3], "0.166667")
	assert.Contains(t, lines[6], "1.000000")
	assert.Contains(t, lines[7], "6")
}

func TestRun_Ways(t *testing.T) {
	out, _, err := run(t, Deps{}, "ways", "1d4+1d6", "5")
	require.NoError(t, err)
	assert.Equal(t, "ways(5) = 4 of 24\nP(5) = 1/6 ≈ 0.166667\n", out)

	out, _, err = run(t, Deps{}, "ways", "2d6", "40")
	require.NoError(t, err)
	assert.Contains(t, out, "ways(40) = 0 of 36")
}

func TestRun_Stats(t *testing.T) {
	out, _, err := run(t, Deps{}, "stats", "2d6")
	require.NoError(t, err)
	assert.Contains(t, out, "range:    2..12")
	assert.Contains(t, out, "mean:     7.0000")
	assert.Contains(t, out, "median:   7")
	assert.Contains(t, out, "mode:     7")
}

func TestRun_Roll(t *testing.T) {
	out, _, err := run(t, Deps{}, "-seed", "3", "-n", "4", "roll", "2d6+1d8")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5, "4 rolls + average")
	assert.True(t, strings.HasPrefix(lines[0], "2d6+1d8: ["))
	assert.Contains(t, lines[4], "over 4 rolls (expected 11.5000)")

	again, _, err := run(t, Deps{}, "-seed", "3", "-n", "4", "roll", "2d6+1d8")
	require.NoError(t, err)
	assert.Equal(t, out, again, "seeded rolls are reproducible")
}

func TestRun_PlotText(t *testing.T) {
	out, errOut, err := run(t, Deps{}, "-series", "counts", "plot", "2d6")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "2d6\n"))
	assert.Contains(t, out, " 7 | "+strings.Repeat("#", render.DefaultBarWidth)+" 6")
	assert.Empty(t, errOut, "text plots are not logged as files")
}

func TestRun_PlotImageUsesGeneratedName(t *testing.T) {
	ctrl := gomock.NewController(t)
	ids := mocks.NewMockIDGenerator(ctrl)
	sink := renderMocks.NewMockRenderer(ctrl)
	dir := t.TempDir()

	ids.EXPECT().NewID().Return("0123456789abcdef")
	sink.EXPECT().Render(gomock.Any()).DoAndReturn(func(s render.Series) error {
		assert.Equal(t, "Cumulative probability", s.YLabel)
		assert.Equal(t, "1d4+1d6", s.Title)
		return nil
	})

	var gotPath string
	deps := Deps{
		IDs: ids,
		NewRenderer: func(cfg Config, path string, out io.Writer) (render.Renderer, error) {
			gotPath = path
			return sink, nil
		},
	}
	_, errOut, err := run(t, deps, "-format", "png", "-dir", dir, "-series", "cdf", "plot", "1d4+1d6")
	require.NoError(t, err)

	want := filepath.Join(dir, "1d4_1d6-cumulative-01234567.png")
	assert.Equal(t, want, gotPath)
	assert.Contains(t, errOut, "lvdice: wrote cumulative plot of 1d4+1d6 to "+want)
}

func TestRun_PlotExplicitOutputWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dist.svg")
	_, _, err := run(t, Deps{}, "-format", "svg", "-out", path, "plot", "3d6")
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestRun_RendererError(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := renderMocks.NewMockRenderer(ctrl)
	boom := errors.New("boom")
	sink.EXPECT().Render(gomock.Any()).Return(boom)

	deps := Deps{NewRenderer: func(Config, string, io.Writer) (render.Renderer, error) { return sink, nil }}
	_, _, err := run(t, deps, "plot", "2d6")
	assert.ErrorIs(t, err, boom)
}

func TestRun_CanceledContext(t *testing.T) {
	cfg, err := parse(t, nil, "table", "2d6")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = Run(ctx, cfg, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
