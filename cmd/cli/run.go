package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"favorites-conformance/internal/conformance"
	"favorites-conformance/internal/conformance/config"
	"favorites-conformance/internal/conformance/domain/model"
	"favorites-conformance/internal/conformance/usecase"
	"favorites-conformance/internal/shared/logger"

	"github.com/spf13/cobra"
)

type runOptions struct {
	target     string
	parallel   int
	jsonOut    bool
	filter     string
	extraFile  string
	skipExpiry bool
	timeout    time.Duration
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the conformance catalog against a target",
		Long: `Run executes the built-in scenario catalog (plus any extra scenario file)
against the target favorites API and prints the report to stdout.

Exit codes: 0 when every scenario passed, 1 when any failed, 2 when the run
could not start.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConformance(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.target, "target", "", "target base URL (overrides FAVCHECK_TARGET_URL)")
	cmd.Flags().IntVar(&opts.parallel, "parallel", 0, "max concurrent scenarios (overrides FAVCHECK_PARALLELISM)")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print the report as JSON")
	cmd.Flags().StringVar(&opts.filter, "filter", "", "only run scenarios whose name contains this substring")
	cmd.Flags().StringVar(&opts.extraFile, "extra", "", "YAML file with additional scenarios")
	cmd.Flags().BoolVar(&opts.skipExpiry, "skip-expiry", false, "skip the wall-clock credential-expiry scenario")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "overall run timeout (0 means none)")

	return cmd
}

func runConformance(cmd *cobra.Command, opts *runOptions) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if opts.target != "" {
		cfg.TargetURL = opts.target
	}
	if opts.parallel > 0 {
		cfg.Parallelism = opts.parallel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	scenarios := usecase.BuiltinCatalog()
	if opts.extraFile != "" {
		extra, err := usecase.LoadScenarios(opts.extraFile)
		if err != nil {
			return err
		}
		scenarios, err = usecase.MergeScenarios(scenarios, extra)
		if err != nil {
			return err
		}
	}
	scenarios = usecase.FilterScenarios(scenarios, opts.filter)
	if opts.skipExpiry {
		scenarios = usecase.SkipExpiry(scenarios)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	log := logger.NewLogger()
	module := conformance.NewModule(cfg, log)

	report, err := module.Run(ctx, scenarios)
	if err != nil {
		return err
	}

	if err := renderReport(report, opts.jsonOut); err != nil {
		return err
	}

	if !report.Passed() {
		return errRunFailed
	}
	return nil
}

func renderReport(report *model.Report, asJSON bool) error {
	if asJSON {
		return report.RenderJSON(os.Stdout)
	}
	return report.RenderText(os.Stdout)
}
