// Command qlower replays recorded interpreter events into a circuit, prints
// the circuit and lints it.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/qlower/lower"
	"github.com/sarchlab/qlower/replay"
	"github.com/sarchlab/qlower/verify"
)

type options struct {
	qubits          int
	device          string
	reportFile      string
	logFile         string
	logLevel        string
	skipUnsupported bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "qlower",
		Short:        "Lower interpreter event traces into circuits",
		SilenceUsage: true,
	}

	root.AddCommand(newReplayCmd())

	return root
}

func newReplayCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "replay <trace.yaml>",
		Short: "Replay a trace, print the circuit and lint it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(opts); err != nil {
				return err
			}
			return runReplay(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.qubits, "qubits", 0, "number of qubits on the target device (0 for unbounded)")
	cmd.Flags().StringVar(&opts.device, "device", "default", "name of the target device")
	cmd.Flags().StringVar(&opts.reportFile, "report", "", "also save the lint report to this file")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write JSON logs to this file instead of stderr")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "log level: trace, debug, info, warn or error")
	cmd.Flags().BoolVar(&opts.skipUnsupported, "skip-unsupported", false, "skip events that cannot be lowered")

	return cmd
}

func setupLogging(opts *options) error {
	level, err := parseLevel(opts.logLevel)
	if err != nil {
		return err
	}

	out := os.Stderr
	if opts.logFile != "" {
		f, err := os.Create(opts.logFile)
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		atexit.Register(func() { f.Close() })
		out = f
	}

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))

	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "trace":
		return lower.LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

func runReplay(cmd *cobra.Command, path string, opts *options) error {
	trace, err := replay.LoadTraceFile(path)
	if err != nil {
		return err
	}

	r := replay.Builder{}.
		WithSkipUnsupported(opts.skipUnsupported).
		Build(trace)

	if err := r.Run(); err != nil {
		return err
	}

	c := r.Context().Circuit()
	out := cmd.OutOrStdout()

	fmt.Fprint(out, c.Render())
	if r.Skipped() > 0 {
		fmt.Fprintf(out, "Skipped %d unsupported events\n", r.Skipped())
	}

	report := verify.GenerateReport(c, verify.Device{Name: opts.device, Qubits: opts.qubits})
	report.WriteReport(out)

	if opts.reportFile != "" {
		if err := report.SaveReportToFile(opts.reportFile); err != nil {
			return err
		}
	}

	return nil
}
