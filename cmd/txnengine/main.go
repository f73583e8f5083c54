// Command txnengine is the CLI surface of spec.md §6: a single positional
// argument naming the input file, exit 0 on success and 1 on I/O or
// unrecoverable initialization failure, output written to stdout.
//
// Grounded on fandangolas-core-banking-lab/cmd/api/main.go (thin main
// delegating to a staged bootstrap) and internal/pkg/components/
// components.go's constructor idiom, adapted from an HTTP server
// bootstrap to a one-shot batch run. Flag parsing uses
// github.com/urfave/cli/v2, the CLI library used by three of the four
// full example repos retrieved alongside the teacher.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"txnengine/internal/config"
	"txnengine/internal/dispatch"
	"txnengine/internal/ingest"
	"txnengine/internal/metrics"
	"txnengine/internal/output"
	"txnengine/internal/pkg/logging"
)

func main() {
	app := &cli.App{
		Name:      "txnengine",
		Usage:     "apply a streaming sequence of payment events and emit final per-account balances",
		ArgsUsage: "<input-file>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "channel-depth",
				Usage: "bounded inbound channel capacity per client actor (backpressure knob)",
			},
			&cli.StringFlag{
				Name:  "metrics-addr",
				Usage: "if set, serve Prometheus /metrics and /healthz on this address while processing",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return cli.Exit("expected exactly one positional argument: the input file path", 1)
	}
	inputPath := c.Args().Get(0)

	cfg := config.Load()
	if c.IsSet("channel-depth") {
		cfg.Engine.ChannelDepth = c.Int("channel-depth")
	}
	if c.IsSet("metrics-addr") {
		cfg.Metrics.Addr = c.String("metrics-addr")
	}

	logging.Init(cfg.Logging)

	file, err := os.Open(inputPath)
	if err != nil {
		logging.Error("failed to open input file", err, map[string]interface{}{"path": inputPath})
		return cli.Exit(fmt.Sprintf("cannot open %s: %v", inputPath, err), 1)
	}
	defer file.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var registry *metrics.Registry
	if cfg.Metrics.Addr != "" {
		registry = metrics.NewRegistry()
		go func() {
			if err := registry.Serve(ctx, cfg.Metrics.Addr); err != nil {
				logging.Error("metrics server stopped", err, nil)
			}
		}()
	}

	fabric := dispatch.New(cfg.Engine.ChannelDepth, registry)

	for ev := range ingest.Stream(file) {
		fabric.Dispatch(ev)
	}

	snapshots := fabric.Drain()

	if err := output.WriteSnapshots(os.Stdout, snapshots); err != nil {
		logging.Error("failed to write output", err, nil)
		return cli.Exit(fmt.Sprintf("failed to write output: %v", err), 1)
	}

	return nil
}
