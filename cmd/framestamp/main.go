package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/stereolab/framestamp/pkg/list"
	"github.com/stereolab/framestamp/pkg/logger"
	"github.com/stereolab/framestamp/pkg/synth"
	"github.com/stereolab/framestamp/pkg/write"
)

const version = "0.1.0"

var log = logger.Log

var errInvalidInvocation = errors.New("exactly one of --fps, --csv or --from-names must be specified")

type options struct {
	verbose bool

	fps       float64
	csvPath   string
	fromNames bool

	timeColumn     int
	filenameColumn int

	output string
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "framestamp [image-dir]",
		Short:        "Generate a per-frame timestamp listing for an image directory",
		Long:         "Framestamp derives a timestamps.txt file for a directory of sequentially captured images, for offline stereo processing. Timestamps come from a fixed frame rate, an external CSV table, or the image filenames themselves.",
		Version:      version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.SetVerbose(opts.verbose)
			return run(cmd, args[0], opts)
		},
	}

	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.Flags().Float64Var(&opts.fps, "fps", 0, "frame rate (e.g. 30.0), generates evenly spaced timestamps")
	rootCmd.Flags().StringVar(&opts.csvPath, "csv", "", "CSV file containing timestamps")
	rootCmd.Flags().BoolVar(&opts.fromNames, "from-names", false, "parse timestamps encoded in the image filenames")
	rootCmd.Flags().IntVar(&opts.timeColumn, "time-column", 0, "column index for timestamps in the CSV")
	rootCmd.Flags().IntVar(&opts.filenameColumn, "filename-column", -1, "column index for filenames in the CSV (-1: use sorted image files)")
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "timestamps.txt", "output timestamps file")

	return rootCmd
}

func run(cmd *cobra.Command, dir string, opts *options) error {
	fpsMode := cmd.Flags().Changed("fps")

	modes := 0
	if fpsMode {
		modes++
	}
	if opts.csvPath != "" {
		modes++
	}
	if opts.fromNames {
		modes++
	}
	if modes != 1 {
		return errInvalidInvocation
	}
	if fpsMode && opts.fps <= 0 {
		return fmt.Errorf("frame rate must be positive, got %v", opts.fps)
	}

	images, err := list.Images(dir, list.DefaultOptions())
	if err != nil {
		return err
	}
	log.Debugf("listed %d image files in %s", len(images), dir)
	if len(images) == 0 {
		return fmt.Errorf("%w in %s", synth.ErrNoImages, dir)
	}

	var records []synth.Record
	var provenance, source string

	switch {
	case fpsMode:
		fps := strconv.FormatFloat(opts.fps, 'g', -1, 64)
		records, err = synth.FromRate(opts.fps, images)
		provenance = fmt.Sprintf("Generated timestamps for %d frames at %s fps", len(images), fps)
		source = fmt.Sprintf("at %s fps", fps)
	case opts.csvPath != "":
		var f *os.File
		f, err = os.Open(opts.csvPath)
		if err != nil {
			return fmt.Errorf("open csv: %w", err)
		}
		records, err = synth.FromTable(f, images, opts.timeColumn, opts.filenameColumn)
		_ = f.Close()
		provenance = "Generated from " + opts.csvPath
		source = "from " + opts.csvPath
	default:
		records, err = synth.FromNames(images)
		provenance = "Generated from filename-encoded timestamps"
		source = "from filename-encoded timestamps"
	}
	if err != nil {
		return err
	}

	if err := write.WriteFile(opts.output, provenance, records); err != nil {
		return err
	}

	cmd.Printf("Generated %s with %d timestamps %s\n", opts.output, len(records), source)
	return nil
}
