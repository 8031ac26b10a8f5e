package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"mad-squares/internal/app"
	"mad-squares/internal/config"
	"mad-squares/internal/render"
	"mad-squares/internal/tui"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

func newTUICmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "run the grid in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := app.NewState(c.cfg, c.log)
			if err != nil {
				return err
			}
			return tui.Run(state, c.cfg.ShowCells)
		},
	}
}

type renderOpts struct {
	out     string
	format  string
	cursorX float64
	cursorY float64
	steps   int
}

func newRenderCmd(c *cli) *cobra.Command {
	o := &renderOpts{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "render one frame to PNG or SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(c, o, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&o.out, "out", "o", "squares.png", "output file, - for stdout")
	cmd.Flags().StringVar(&o.format, "format", "", "png or svg (default: from the output extension)")
	cmd.Flags().Float64Var(&o.cursorX, "cursor-x", -1, "cursor x in pixels (negative: no cursor)")
	cmd.Flags().Float64Var(&o.cursorY, "cursor-y", -1, "cursor y in pixels (negative: no cursor)")
	cmd.Flags().IntVar(&o.steps, "steps", 0, "life generations to advance before rendering")
	return cmd
}

func (o *renderOpts) resolveFormat() (string, error) {
	f := strings.ToLower(o.format)
	if f == "" {
		f = strings.TrimPrefix(strings.ToLower(filepath.Ext(o.out)), ".")
		if f == "" {
			f = "png"
		}
	}
	if f != "png" && f != "svg" {
		return "", fmt.Errorf("unsupported format %q", f)
	}
	return f, nil
}

func runRender(c *cli, o *renderOpts, stdout io.Writer) error {
	format, err := o.resolveFormat()
	if err != nil {
		return err
	}
	state, err := app.NewState(c.cfg, c.log)
	if err != nil {
		return err
	}
	for i := 0; i < o.steps; i++ {
		state.Step()
	}
	state.SetCursor(o.cursorX, o.cursorY)

	style, err := c.cfg.Style()
	if err != nil {
		return err
	}
	r := render.NewRenderer(c.cfg.CellSize, style)
	w, h := r.Bounds(state.Grid)

	var n int
	switch format {
	case "svg":
		svg := render.NewSVGCanvas(w, h)
		n = r.Draw(svg, state.Grid, state.Cursor)
		err = writeOutput(o.out, stdout, func(w io.Writer) error {
			_, err := svg.WriteTo(w)
			return err
		})
	default:
		rc := render.NewRasterCanvas(w, h)
		defer rc.Close()
		n = r.Draw(rc, state.Grid, state.Cursor)
		if o.out == "-" {
			err = rc.EncodePNG(stdout)
		} else {
			err = rc.SavePNG(o.out)
		}
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	c.log.Info("frame rendered", "format", format, "out", o.out, "width", w, "height", h, "primitives", n, "generation", state.Generation())
	return nil
}

// writeOutput runs write against path, or stdout when path is "-". The file
// is closed before returning so a failed flush is reported.
func writeOutput(path string, stdout io.Writer, write func(io.Writer) error) error {
	if path == "-" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

func newConfigCmd(c *cli) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "-" {
				return c.cfg.WriteYAML(cmd.OutOrStdout())
			}
			if err := config.Save(out, c.cfg); err != nil {
				return err
			}
			c.log.Info("config written", "out", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file, - for stdout")
	return cmd
}

func newEvolveCmd(c *cli) *cobra.Command {
	var steps, height int
	cmd := &cobra.Command{
		Use:   "evolve",
		Short: "step the seed pattern and plot its population",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvolve(c, steps, height, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 40, "generations to simulate")
	cmd.Flags().IntVar(&height, "height", 10, "plot height in rows")
	return cmd
}

func runEvolve(c *cli, steps, height int, out io.Writer) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}
	state, err := app.NewState(c.cfg, c.log)
	if err != nil {
		return err
	}
	population := make([]float64, 0, steps+1)
	population = append(population, float64(state.Grid.Live()))
	for i := 0; i < steps; i++ {
		state.Step()
		population = append(population, float64(state.Grid.Live()))
	}

	graph := asciigraph.Plot(population,
		asciigraph.Height(height),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("live cells, %s, %d generations", c.cfg.Pattern, steps)),
	)
	fmt.Fprintln(out, graph)
	fmt.Fprintln(out)
	for _, line := range tui.Glyphs(state.Grid, true) {
		fmt.Fprintln(out, string(line))
	}
	return nil
}
