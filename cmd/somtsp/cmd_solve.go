package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-kit/log/level"
	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/somtsp/config"
	"github.com/katalvlaran/somtsp/dataset"
	"github.com/katalvlaran/somtsp/geometry"
	"github.com/katalvlaran/somtsp/nearest"
	"github.com/katalvlaran/somtsp/som"
	"github.com/katalvlaran/somtsp/tour"
)

// decodeStream separates the decoder's tie-breaking stream from the trainer's.
const decodeStream = 1

// solveResult is the --json output of solve.
type solveResult struct {
	Instance string    `json:"instance"`
	Cities   int       `json:"cities"`
	Epochs   int       `json:"epochs"`
	Seed     int64     `json:"seed"`
	Path     []int     `json:"path"`
	Length   float64   `json:"length"`
	Decoded  float64   `json:"decoded_length"`
	Legs     []float64 `json:"legs"`
}

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [instance-id]",
		Short: "Train a ring on an instance and print the decoded tour",
		Long: `Solve loads <data-dir>/example<instance-id>.txt (or the file given with
--file), trains the self-organizing ring on it and prints the visiting order
and its closed-loop length.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}

	cmd.Flags().String("data-dir", "data", "Directory holding example<id>.txt instances")
	cmd.Flags().String("file", "", "Instance file, instead of an identifier")
	cmd.Flags().String("config", "", "YAML configuration file")
	cmd.Flags().Int64("seed", 0, "Random seed (0 uses the default seed)")
	cmd.Flags().Int("epochs", som.DefaultEpochs, "Number of training epochs")
	cmd.Flags().String("init", "zero", "Initial ring layout: zero, centroid or circle")
	cmd.Flags().Duration("pause", 0, "Sleep after each periodic checkpoint")
	cmd.Flags().String("log-level", "info", "Log level: debug, info, warn, error")
	cmd.Flags().String("log-format", "logfmt", "Log format: logfmt or json")
	cmd.Flags().Bool("two-opt", false, "Polish the decoded tour with 2-opt")
	cmd.Flags().Bool("debug", false, "Dump the effective configuration and log every checkpoint")
	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	path, instance, err := instancePath(cmd, args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Logging.Format, cfg.Logging.Level)
	if err != nil {
		return err
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		pretty.Fprintf(cmd.ErrOrStderr(), "%# v\n", cfg)
	}

	begin := time.Now()
	var cities []geometry.Point
	defer func() { logRun(logger, instance, len(cities), begin, err) }()

	cities, err = dataset.Load(path)
	if err != nil {
		return err
	}
	level.Debug(logger).Log("msg", "instance loaded", "path", path, "cities", len(cities))

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	opts.Observer = checkpointLogger(logger)

	trainer, err := som.New(opts)
	if err != nil {
		return err
	}
	r, err := trainer.Train(cities)
	if err != nil {
		return err
	}

	level.Debug(logger).Log("msg", "decoding path")
	decodeRand := nearest.RandFromSeed(nearest.DeriveSeed(opts.Seed, decodeStream))
	p, err := tour.Decode(cities, r.Snapshot(), decodeRand)
	if errors.Is(err, tour.ErrUnresolved) {
		claimed, _ := tour.Coverage(cities, r.Snapshot(), nil)
		level.Warn(logger).Log(
			"msg", "ring did not resolve to a tour, train longer",
			"epochs", opts.Epochs,
			"claimed", claimed,
			"cities", len(cities),
		)
	}
	if err != nil {
		err = fmt.Errorf("error occurred while decoding the achieved path: %w", err)
		return err
	}

	decoded := tour.Length(p, cities)
	if twoOpt, _ := cmd.Flags().GetBool("two-opt"); twoOpt {
		p, err = tour.TwoOpt(p, cities, 0)
		if err != nil {
			return err
		}
		level.Debug(logger).Log("msg", "2-opt applied", "before", decoded, "after", tour.Length(p, cities))
	}

	res := solveResult{
		Instance: instance,
		Cities:   len(cities),
		Epochs:   opts.Epochs,
		Seed:     opts.Seed,
		Path:     p,
		Length:   tour.Length(p, cities),
		Decoded:  decoded,
		Legs:     tour.Legs(p, cities),
	}
	jsonOut, _ := cmd.Flags().GetBool("json")
	return writeResult(cmd.OutOrStdout(), res, jsonOut)
}

// instancePath resolves the file to solve and a label for logs.
func instancePath(cmd *cobra.Command, args []string) (path, instance string, err error) {
	file, _ := cmd.Flags().GetString("file")
	if file != "" {
		if len(args) > 0 {
			return "", "", errors.New("give either an instance identifier or --file, not both")
		}
		return file, file, nil
	}
	if len(args) == 0 {
		return "", "", errors.New("please provide the instance identifier, e.g. \"somtsp solve 1\" solves example1.txt")
	}

	id, err := dataset.ParseInstanceID(args[0])
	if err != nil {
		return "", "", err
	}
	dir, _ := cmd.Flags().GetString("data-dir")
	path, err = dataset.InstancePath(dir, id)
	if err != nil {
		return "", "", err
	}
	return path, args[0], nil
}

// loadConfig reads --config and overlays the flags the user actually set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Training.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("epochs") {
		cfg.Training.Epochs, _ = flags.GetInt("epochs")
	}
	if flags.Changed("init") {
		cfg.Training.Init, _ = flags.GetString("init")
	}
	if flags.Changed("pause") {
		cfg.Training.Pause, _ = flags.GetDuration("pause")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format, _ = flags.GetString("log-format")
	}
	if debug, _ := flags.GetBool("debug"); debug {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func writeResult(w io.Writer, res solveResult, jsonOut bool) error {
	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	_, err := fmt.Fprintf(w, "Path: %s\nPath distance: %s\n",
		formatPath(res.Path), strconv.FormatFloat(res.Length, 'g', -1, 64))
	return err
}

// formatPath renders p as "[0, 3, 1, 2]".
func formatPath(p []int) string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = strconv.Itoa(c)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
