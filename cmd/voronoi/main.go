// Command voronoi reads a set of sites as JSON and writes the edges of their Voronoi diagram
// as JSON. It never generates input itself — site generation is explicitly outside this
// module's scope; this command exists to drive the library end to end against real input, the
// way the teacher library's own cmd tools drive a single algorithm against a flag-configured
// input shape.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/mikenye/voronoi"
	"github.com/mikenye/voronoi/point"
)

type siteJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type edgeJSON struct {
	LeftFace    siteJSON  `json:"leftFace"`
	RightFace   siteJSON  `json:"rightFace"`
	FirstVertex *siteJSON `json:"firstVertex"`
	LastVertex  *siteJSON `json:"lastVertex"`
}

func main() {
	cmd := &cli.Command{
		Name:  "voronoi",
		Usage: "compute the Voronoi diagram of a set of 2D sites",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "input",
				Usage: "path to a JSON file containing an array of {\"x\":..,\"y\":..} sites; defaults to stdin",
			},
			&cli.FloatFlag{
				Name:  "epsilon",
				Usage: "floating-point tolerance for the sweep",
				Value: 0,
			},
			&cli.FloatFlag{
				Name:  "far",
				Usage: "half-width of the envelope unbounded edges are extended to",
				Value: 100,
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	r, err := inputReader(cmd.String("input"))
	if err != nil {
		return err
	}
	defer r.Close()

	var raw []siteJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return fmt.Errorf("decoding sites: %w", err)
	}

	coords := make([]point.Point, 0, len(raw))
	for _, s := range raw {
		coords = append(coords, point.New(s.X, s.Y))
	}

	d, err := voronoi.New(coords,
		voronoi.WithEpsilon(cmd.Float("epsilon")),
		voronoi.WithFarX(cmd.Float("far")),
	)
	if err != nil {
		return fmt.Errorf("building diagram: %w", err)
	}

	edges := d.Compute()
	out := make([]edgeJSON, 0, len(edges))
	for _, e := range edges {
		out = append(out, toEdgeJSON(e))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func toEdgeJSON(e *voronoi.Edge) edgeJSON {
	ej := edgeJSON{
		LeftFace:  siteJSON{X: e.LeftFace.P.X(), Y: e.LeftFace.P.Y()},
		RightFace: siteJSON{X: e.RightFace.P.X(), Y: e.RightFace.P.Y()},
	}
	if e.FirstVertex != nil {
		ej.FirstVertex = &siteJSON{X: e.FirstVertex.X(), Y: e.FirstVertex.Y()}
	}
	if e.LastVertex != nil {
		ej.LastVertex = &siteJSON{X: e.LastVertex.X(), Y: e.LastVertex.Y()}
	}
	return ej
}

func inputReader(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return f, nil
}
