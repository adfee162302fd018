package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observe"
	"github.com/kbukum/seqkit/plan"
	"github.com/kbukum/seqkit/seq"
)

const (
	configFileF = "config"
	envFileF    = "env-file"
	logLevelF   = "log-level"
	telemetryF  = "telemetry"
	outputF     = "output"

	shutdownTimeout = 5 * time.Second
)

type outputFormat string

var _ pflag.Value = (*outputFormat)(nil)

const (
	outputTable outputFormat = "table"
	outputJSON  outputFormat = "json"
)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(s string) error {
	switch v := outputFormat(strings.ToLower(s)); v {
	case outputTable, outputJSON:
		*f = v
		return nil
	default:
		return fmt.Errorf("unknown output format %q (known: table, json)", s)
	}
}

func (f *outputFormat) Type() string { return "format" }

// planOutcome is one row of the run report.
type planOutcome struct {
	plan.Result
	Status   string `json:"status"`
	Error    string `json:"error,omitempty"`
	Duration int64  `json:"duration_ms"`
}

func newRunCmd() *cobra.Command {
	format := outputTable
	cmd := &cobra.Command{
		Use:   "run [plan...]",
		Short: "Evaluate the configured plans",
		Long:  "Evaluate the plans from the config file, or only the named ones, and print their results.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlans(cmd, args, format)
		},
	}
	cmd.Flags().StringP(configFileF, "c", "", "Config file (searched in ./cmd/seqdemo, ./config and . when unset)")
	cmd.Flags().String(envFileF, "", ".env file to load before reading SEQDEMO_* overrides")
	cmd.Flags().String(logLevelF, "", "Override logging.level")
	cmd.Flags().Bool(telemetryF, false, "Export traces and metrics over OTLP/HTTP")
	cmd.Flags().VarP(&format, outputF, "o", "Output format: table or json")
	return cmd
}

func runPlans(cmd *cobra.Command, args []string, format outputFormat) error {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	logger.Init(cfg.Logging)
	log := logger.Get(logger.ComponentPlan)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := startTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer shutdown()

	metrics, err := observe.NewMetrics(observe.Meter())
	if err != nil {
		return err
	}

	plans, err := selectPlans(cfg.Plans, args)
	if err != nil {
		return err
	}

	outcomes := make([]planOutcome, 0, len(plans))
	failed := 0
	for _, p := range plans {
		out := evaluate(ctx, p, log, metrics)
		if out.Status == observe.StatusError {
			failed++
		}
		outcomes = append(outcomes, out)
	}

	if err := render(cmd.OutOrStdout(), format, outcomes); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d plans failed", failed, len(outcomes))
	}
	return nil
}

func loadRunConfig(cmd *cobra.Command) (*DemoConfig, error) {
	flags := cmd.Flags()
	configFile, err := flags.GetString(configFileF)
	if err != nil {
		return nil, err
	}
	envFile, err := flags.GetString(envFileF)
	if err != nil {
		return nil, err
	}
	cfg, err := loadConfig(configFile, envFile)
	if err != nil {
		return nil, err
	}

	if level, _ := flags.GetString(logLevelF); level != "" {
		cfg.Logging.Level = level
		if err := cfg.Logging.Validate(); err != nil {
			return nil, err
		}
	}
	if enabled, _ := flags.GetBool(telemetryF); enabled {
		cfg.Telemetry.Enabled = true
	}
	return cfg, nil
}

// startTelemetry installs the OTLP tracer and meter providers when enabled
// and returns a function that flushes and stops them.
func startTelemetry(ctx context.Context, cfg observe.Config) (func(), error) {
	if !cfg.Enabled {
		return func() {}, nil
	}
	tp, err := observe.InitTracer(ctx, cfg)
	if err != nil {
		return nil, err
	}
	mp, err := observe.InitMeter(ctx, cfg)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, err
	}
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log := logger.Get(logger.ComponentObserve)
		if err := tp.Shutdown(ctx); err != nil {
			log.Warn("tracer shutdown failed", logger.ErrorFields("shutdown", err))
		}
		if err := mp.Shutdown(ctx); err != nil {
			log.Warn("meter shutdown failed", logger.ErrorFields("shutdown", err))
		}
	}, nil
}

// selectPlans keeps the plans named in args, in config order. No args
// selects every plan.
func selectPlans(plans []plan.Plan, names []string) ([]plan.Plan, error) {
	all := seq.FromSlice(plans)
	for _, name := range names {
		found, err := seq.Any(all, func(p plan.Plan) bool { return p.Name == name })
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, errors.Validation(fmt.Sprintf("unknown plan %q", name)).WithDetail("plan", name)
		}
	}
	if len(names) == 0 {
		return plans, nil
	}
	return seq.ToSlice(seq.Filter(all, func(p plan.Plan) bool { return slices.Contains(names, p.Name) }))
}

func evaluate(ctx context.Context, p plan.Plan, log *logger.Logger, metrics *observe.Metrics) planOutcome {
	ctx, eval := observe.StartEvaluation(ctx, p.Name, metrics)
	log = log.WithContext(ctx).WithFields(logger.Fields(logger.FieldPlan, p.Name))

	res := plan.Result{Plan: p.Name, Terminal: p.Terminal}
	s, err := plan.Build(p)
	if err == nil {
		s = observe.Logged(s, log, p.Name)
		s = observe.Instrumented(s, metrics, p.Name)
		res, err = plan.Apply(p.Name, p.Terminal, s)
	}
	if len(res.Values) > 0 {
		eval.SetElements(len(res.Values))
	}
	endErr := err
	if err == nil && res.Empty {
		endErr = errors.EmptySequence(p.Terminal)
	}
	status := eval.End(endErr)
	d := eval.Duration()

	out := planOutcome{Result: res, Status: status, Duration: d.Milliseconds()}
	fields := logger.DurationFields("evaluate", d)
	fields[logger.FieldStatus] = status
	if err != nil {
		out.Error = err.Error()
		fields[logger.FieldError] = out.Error
		log.Error("plan failed", fields)
		return out
	}
	log.Info("plan evaluated", fields)
	return out
}

func render(w io.Writer, format outputFormat, outcomes []planOutcome) error {
	if format == outputJSON {
		data, err := json.MarshalIndent(outcomes, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Plan", "Terminal", "Result", "Status"})
	for _, o := range outcomes {
		result := o.Result.String()
		if o.Error != "" {
			result = o.Error
		}
		table.Append([]string{o.Plan, o.Terminal, result, o.Status})
	}
	table.Render()
	return nil
}
