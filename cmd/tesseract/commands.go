package main

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"fortio.org/log"
	"github.com/solarlune/tesseract"
	"github.com/solarlune/tesseract/view"
	"github.com/spf13/cobra"
)

type options struct {
	cfg       tesseract.Config
	primary   string
	secondary string
	cube      string
	hyper     bool
	logLevel  string
}

func newRootCmd() *cobra.Command {

	opts := &options{cfg: tesseract.DefaultConfig()}

	root := &cobra.Command{
		Use:   "tesseract",
		Short: "Rotating hypercube viewer",
		Long: `tesseract - Rotating hypercube viewer

Draws a wireframe tesseract (the 4D hypercube) spinning in a window, and
prints or exports the hypercube's edge graph and projected corners.

Controls:
  Mouse  - Drift the camera
  Space  - Pause rotation
  R      - Reset
  F1     - Toggle HUD
  F4     - Toggle fullscreen
  F12    - Screenshot
  Esc    - Quit`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.apply()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(opts)
		},
	}

	flags := root.PersistentFlags()
	flags.IntVar(&opts.cfg.Dimensions, "dims", opts.cfg.Dimensions, "Hypercube dimensions (1-4)")
	flags.Float64Var(&opts.cfg.RotationSpeed, "speed", opts.cfg.RotationSpeed, "Rotation speed about Z, in radians per second")
	flags.BoolVar(&opts.hyper, "hyper", false, "Also rotate through W and project with 4D perspective")
	flags.Float64Var(&opts.cfg.ViewerW, "viewer-w", opts.cfg.ViewerW, "W position of the 4D eye (with --hyper)")
	flags.StringVar(&opts.primary, "primary", hexString(opts.cfg.PrimaryColor), "Primary edge color (RRGGBB)")
	flags.StringVar(&opts.secondary, "secondary", hexString(opts.cfg.SecondaryColor), "Secondary edge color (RRGGBB)")
	flags.StringVar(&opts.cube, "cube", hexString(opts.cfg.CubeColor), "Inner cube color (RRGGBB)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, verbose, info, warning, error)")

	viewFlags := root.Flags()
	viewFlags.IntVar(&opts.cfg.Width, "width", opts.cfg.Width, "Window width")
	viewFlags.IntVar(&opts.cfg.Height, "height", opts.cfg.Height, "Window height")
	viewFlags.IntVar(&opts.cfg.TPS, "tps", opts.cfg.TPS, "Updates per second")
	viewFlags.Float64Var(&opts.cfg.CameraDistance, "distance", opts.cfg.CameraDistance, "Camera distance from the origin")
	viewFlags.Float64Var(&opts.cfg.FieldOfView, "fov", opts.cfg.FieldOfView, "Vertical field of view, in degrees")
	viewFlags.DurationVar(&opts.cfg.IntroDuration, "intro", opts.cfg.IntroDuration, "Length of the camera dolly on start (0 disables it)")
	viewFlags.Float64Var(&opts.cfg.LineWidth, "line-width", opts.cfg.LineWidth, "Edge stroke width, in pixels")
	viewFlags.Float32Var(&opts.cfg.CubeOpacity, "cube-opacity", opts.cfg.CubeOpacity, "Inner cube opacity (0 hides it)")

	root.AddCommand(newEdgesCmd(opts), newProjectCmd(opts), newExportCmd(opts), newInfoCmd(opts))

	return root

}

// apply folds the string flags into the Config and validates it.
func (opts *options) apply() error {

	if err := log.SetLogLevelStr(opts.logLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	for _, c := range []struct {
		flag string
		src  string
		dst  *tesseract.Color
	}{
		{"primary", opts.primary, &opts.cfg.PrimaryColor},
		{"secondary", opts.secondary, &opts.cfg.SecondaryColor},
		{"cube", opts.cube, &opts.cfg.CubeColor},
	} {
		parsed, err := tesseract.ParseHexColor(c.src)
		if err != nil {
			return fmt.Errorf("--%s: %w", c.flag, err)
		}
		*c.dst = parsed
	}

	if opts.hyper {
		opts.cfg.Rotation4 = defaultHyperRotation
	}

	return opts.cfg.Validate()

}

// defaultHyperRotation is a slow tumble through all three W planes, in radians per second.
var defaultHyperRotation = tesseract.Rotation4{XW: 0.5, YW: 0.3, ZW: 0.2}

func hexString(c tesseract.Color) string {
	return fmt.Sprintf("%06X", c.Hex())
}

func runView(opts *options) error {

	app, err := tesseract.NewApp(opts.cfg)
	if err != nil {
		return err
	}

	return view.Run(app, "Tesseract")

}

func newEdgesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "edges",
		Short: "Print the hypercube's edge list",
		Long:  "Print every pair of vertex indices that differ in exactly one bit, with the axis each edge runs along and its color group.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printEdges(cmd.OutOrStdout(), tesseract.NewHypercube(opts.cfg.Dimensions))
		},
	}
}

func printEdges(w io.Writer, cube *tesseract.Hypercube) error {
	axes := "XYZW"
	for i, edge := range cube.Edges() {
		if _, err := fmt.Fprintf(w, "%2d: %2d - %2d  axis %c  %s\n", i, edge.A, edge.B, axes[edge.Axis()], edge.Group()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d vertices, %d edges\n", cube.VertexCount(), cube.EdgeCount())
	return err
}

// snapshot holds the flags that pick a single moment of the animation for project and export.
type snapshot struct {
	angle   float64
	degrees bool
	seconds float64
}

func (snap *snapshot) addFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&snap.angle, "angle", 0, "Rotation about Z, in radians (or degrees with --degrees)")
	cmd.Flags().BoolVar(&snap.degrees, "degrees", false, "Read --angle in degrees")
	cmd.Flags().Float64Var(&snap.seconds, "time", 0, "Seconds of 4D rotation to apply (with --hyper)")
}

// resolve returns the Z angle in radians and the 4D plane angles the snapshot stands for.
func (snap snapshot) resolve(cfg tesseract.Config) (float64, tesseract.Rotation4, error) {

	angle, err := angleRadians(snap.angle, snap.degrees)
	if err != nil {
		return 0, tesseract.Rotation4{}, err
	}

	if math.IsNaN(snap.seconds) || math.IsInf(snap.seconds, 0) {
		return 0, tesseract.Rotation4{}, fmt.Errorf("--time must be finite, got %g", snap.seconds)
	}

	return angle, cfg.Rotation4.Scaled(snap.seconds), nil

}

func angleRadians(angle float64, degrees bool) (float64, error) {

	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0, fmt.Errorf("--angle must be finite, got %g", angle)
	}

	if degrees {
		angle = tesseract.ToRadians(angle)
	}

	return angle, nil

}

func newProjectCmd(opts *options) *cobra.Command {

	var snap snapshot

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Print the hypercube's corners projected into 3D",
		Long: `Print each corner's 4D position and where it lands in 3D after rotating by --angle about Z.
With --hyper, the corners are also rotated by --time seconds of the 4D tumble and projected with perspective.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			angle, rot, err := snap.resolve(opts.cfg)
			if err != nil {
				return err
			}
			return printProjection(cmd.OutOrStdout(), tesseract.NewHypercube(opts.cfg.Dimensions), angle, rot, opts.cfg.ViewerW)
		},
	}

	snap.addFlags(cmd)

	return cmd

}

func printProjection(w io.Writer, cube *tesseract.Hypercube, angle float64, rot tesseract.Rotation4, viewerW float64) error {

	if _, err := fmt.Fprintf(w, "angle %.6f rad (%.2f deg)\n", angle, tesseract.ToDegrees(angle)); err != nil {
		return err
	}

	projected := cube.ProjectTumble(angle, rot, viewerW)

	for i, p := range projected {
		v := cube.Vertex(i)
		if _, err := fmt.Fprintf(w, "%2d: (%+.0f, %+.0f, %+.0f, %+.0f) -> (%+.6f, %+.6f, %+.6f)\n",
			i, v.X, v.Y, v.Z, v.W, p.X, p.Y, p.Z); err != nil {
			return err
		}
	}

	return nil

}

func newExportCmd(opts *options) *cobra.Command {

	var snap snapshot

	cmd := &cobra.Command{
		Use:   "export <file.gltf|file.glb>",
		Short: "Export the projected hypercube as a glTF wireframe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			angle, rot, err := snap.resolve(opts.cfg)
			if err != nil {
				return err
			}

			exportOpts := tesseract.DefaultExportOptions()
			exportOpts.Name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			exportOpts.Angle = angle
			exportOpts.Rotation = rot
			exportOpts.ViewerW = opts.cfg.ViewerW
			exportOpts.PrimaryColor = opts.cfg.PrimaryColor.WithAlpha(opts.cfg.EdgeOpacity)
			exportOpts.SecondaryColor = opts.cfg.SecondaryColor.WithAlpha(opts.cfg.EdgeOpacity)

			return tesseract.SaveGLTF(args[0], tesseract.NewHypercube(opts.cfg.Dimensions), exportOpts)

		},
	}

	snap.addFlags(cmd)

	return cmd

}

func newInfoCmd(_ *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.gltf|file.glb>",
		Short: "Display wireframe information of an exported file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			summary, err := tesseract.OpenWireframe(args[0])
			if err != nil {
				return err
			}

			return printInfo(cmd.OutOrStdout(), filepath.Base(args[0]), summary)

		},
	}
}

func printInfo(w io.Writer, name string, summary tesseract.WireframeSummary) error {

	lines := []string{
		fmt.Sprintf("File:       %s", name),
		fmt.Sprintf("Vertices:   %d", summary.Vertices),
		fmt.Sprintf("Edges:      %d", summary.Edges),
	}
	for i, n := range summary.EdgesPerGroup {
		lines = append(lines, fmt.Sprintf("Group %d:    %d edges", i, n))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil

}
