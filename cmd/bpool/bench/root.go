package bench

import (
	"github.com/openziti/bpool/cmd/bpool/cli"
	"github.com/openziti/bpool/util"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"os"
)

func init() {
	benchCmd.Flags().IntVarP(&workers, "workers", "w", 8, "Number of concurrent workers")
	benchCmd.Flags().IntVarP(&iterations, "iterations", "i", 100000, "Iterations per worker")
	benchCmd.Flags().IntVarP(&hold, "hold", "H", 1, "Buffers held at once by each worker per iteration")
	benchCmd.Flags().IntVarP(&size, "size", "z", 64*1024, "Size of each pooled buffer (in bytes)")
	benchCmd.Flags().Float64VarP(&consume, "consume", "x", 0.0, "Fraction of acquisitions kept instead of returned")
	benchCmd.Flags().StringVarP(&samplesPath, "samples", "s", "", "Write spares/allocations samples to this directory")
	benchCmd.Flags().StringVar(&runId, "id", "bench", "Run identifier recorded with the samples")
	benchCmd.Flags().IntVar(&sampleMs, "sample-ms", 10, "Sampling interval (in milliseconds)")
	cli.RootCmd.AddCommand(benchCmd)
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Drive a shared pool with concurrent guarded acquire/release",
	Args:  cobra.NoArgs,
	Run:   bench,
}
var workers int
var iterations int
var hold int
var size int
var consume float64
var samplesPath string
var sampleMs int
var runId string

func bench(_ *cobra.Command, _ []string) {
	opts, err := cli.LoadOptions()
	if err != nil {
		logrus.Fatalf("error loading options (%v)", err)
	}

	cfg := &Config{
		Workers:    workers,
		Iterations: iterations,
		Hold:       hold,
		BufferSz:   size,
		Consume:    consume,
		SampleMs:   sampleMs,
	}
	report, err := Run(opts, cfg)
	if err != nil {
		logrus.Fatalf("error running bench (%v)", err)
	}
	report.Log()

	if samplesPath != "" {
		if err := os.MkdirAll(samplesPath, 0755); err != nil {
			logrus.Fatalf("error creating samples path [%s] (%v)", samplesPath, err)
		}
		if err := util.WriteRunId(runId, samplesPath, report.Values(opts, cfg)); err != nil {
			logrus.Fatalf("error writing run id (%v)", err)
		}
		if err := util.WriteSamples("spares", samplesPath, report.Spares); err != nil {
			logrus.Fatalf("error writing spares samples (%v)", err)
		}
		if err := util.WriteSamples("allocations", samplesPath, report.Allocations); err != nil {
			logrus.Fatalf("error writing allocations samples (%v)", err)
		}
	}
}
