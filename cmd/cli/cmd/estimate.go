package cmd

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wrapquote/adapters/hcl"
	"wrapquote/core/output"
	"wrapquote/core/pricing"
	"wrapquote/core/quote"
	"wrapquote/core/reference"
	"wrapquote/internal/errors"
	"wrapquote/internal/logging"
)

var hundred = decimal.NewFromInt(100)

type estimateOptions struct {
	*rootOptions

	format  string
	explain bool
	noColor bool

	vehicle   string
	wrap      string
	scope     string
	category  string
	rollWidth int
	waste     string

	mirrors      bool
	roofRails    bool
	rivets       bool
	deepRecesses bool
	excludeRoof  bool
	manualHours  string

	vinylBrand string
	vinylCost  string
	printBrand string
	printCost  string
	lamCost    string

	laborRate string
	designFee string
	overhead  string
	mode      string
	percent   string
	deposit   string
}

func newEstimateCmd(root *rootOptions) *cobra.Command {
	o := &estimateOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "estimate [job.hcl...]",
		Short: "Quote wrap jobs",
		Long: `Quote one job from flags, or every job in the given HCL files.

Flags override the shop defaults from the config file. When files are given,
the flags become the defaults each job block starts from.
Percents (--waste, --percent, --deposit) are whole numbers.

Examples:
  wrapquote estimate
  wrapquote estimate --vehicle box_truck_large --wrap partial_wrap --rivets
  wrapquote estimate --category color_change --vinyl-brand Avery_Dennison_SC950 --explain
  wrapquote estimate --format json jobs/*.hcl`,
		RunE: o.run,
	}

	f := cmd.Flags()
	f.StringVarP(&o.format, "format", "f", "", "output format (cli, json); default from config")
	f.BoolVar(&o.explain, "explain", false, "show how every line item was calculated")
	f.BoolVar(&o.noColor, "no-color", false, "disable colored output")

	f.StringVar(&o.vehicle, "vehicle", "", "vehicle category")
	f.StringVar(&o.wrap, "wrap", "", "wrap type")
	f.StringVar(&o.scope, "scope", "", "job scope (print_and_install, install_only, print_only)")
	f.StringVar(&o.category, "category", "", "material category (commercial_print, color_change)")
	f.IntVar(&o.rollWidth, "roll-width", 0, "roll width in inches (54, 60)")
	f.StringVar(&o.waste, "waste", "", "waste percent")

	f.BoolVar(&o.mirrors, "mirrors", false, "wrap mirrors")
	f.BoolVar(&o.roofRails, "roof-rails", false, "work around roof rails")
	f.BoolVar(&o.rivets, "rivets", false, "work around rivets")
	f.BoolVar(&o.deepRecesses, "deep-recesses", false, "work into deep recesses")
	f.BoolVar(&o.excludeRoof, "exclude-roof", false, "leave the roof out of a full wrap")
	f.StringVar(&o.manualHours, "manual-hours", "", "labor hours to use instead of the table")

	f.StringVar(&o.vinylBrand, "vinyl-brand", "", "color change vinyl brand")
	f.StringVar(&o.vinylCost, "vinyl-cost", "", "vinyl cost per linear foot")
	f.StringVar(&o.printBrand, "print-brand", "", "print vinyl brand")
	f.StringVar(&o.printCost, "print-cost", "", "print cost per square foot")
	f.StringVar(&o.lamCost, "lam-cost", "", "laminate cost per square foot")

	f.StringVar(&o.laborRate, "labor-rate", "", "labor rate per hour")
	f.StringVar(&o.designFee, "design-fee", "", "design fee")
	f.StringVar(&o.overhead, "overhead", "", "overhead")
	f.StringVar(&o.mode, "mode", "", "pricing mode (margin, markup)")
	f.StringVar(&o.percent, "percent", "", "margin or markup percent")
	f.StringVar(&o.deposit, "deposit", "", "deposit percent")

	return cmd
}

func (o *estimateOptions) run(cmd *cobra.Command, args []string) error {
	defaults, err := o.cfg.Shop.Job()
	if err != nil {
		return err
	}
	if err := o.apply(cmd, &defaults); err != nil {
		return err
	}

	jobs := []quote.Job{defaults}
	if len(args) > 0 {
		if jobs, err = hcl.NewLoader(defaults).LoadFiles(args...); err != nil {
			return err
		}
		logging.Debug("loaded job files", zap.Strings("files", args), zap.Int("jobs", len(jobs)))
	}

	quotes := make([]*quote.Quote, 0, len(jobs))
	for _, job := range jobs {
		q, err := quote.Calculate(job)
		if err != nil {
			return err
		}
		log := logging.ForQuote(q.ID, string(q.Job.Vehicle), string(q.Job.Wrap))
		log.Debug("quote calculated",
			zap.String("name", q.Name),
			logging.Money("retail", q.Pricing.Retail),
		)
		for _, w := range q.Warnings {
			log.Debug(w.Message, zap.String("code", string(w.Code)))
		}
		quotes = append(quotes, q)
	}

	format := o.format
	if format == "" {
		format = o.cfg.Output.DefaultFormat
	}
	formatter, err := output.NewRegistry(o.noColor || o.cfg.Output.NoColor).Get(output.Format(format))
	if err != nil {
		return err
	}
	return formatter.Render(cmd.OutOrStdout(), &output.Report{
		Quotes:  quotes,
		Explain: o.explain || o.cfg.Output.Explain,
	})
}

// apply overwrites job with every flag the user set
func (o *estimateOptions) apply(cmd *cobra.Command, job *quote.Job) error {
	changed := cmd.Flags().Changed

	if changed("vehicle") {
		job.Vehicle = reference.VehicleCategory(o.vehicle)
	}
	if changed("wrap") {
		job.Wrap = reference.WrapType(o.wrap)
	}
	if changed("scope") {
		job.Scope = pricing.JobScope(o.scope)
	}
	if changed("category") {
		job.Category = pricing.MaterialCategory(o.category)
	}
	if changed("roll-width") {
		job.RollWidth = reference.RollWidth(o.rollWidth)
	}
	if changed("exclude-roof") {
		job.ExcludeRoof = o.excludeRoof
	}

	toggles := []struct {
		flag  string
		value bool
		dst   *bool
	}{
		{"mirrors", o.mirrors, &job.Complexity.Mirrors},
		{"roof-rails", o.roofRails, &job.Complexity.RoofRails},
		{"rivets", o.rivets, &job.Complexity.Rivets},
		{"deep-recesses", o.deepRecesses, &job.Complexity.DeepRecesses},
	}
	for _, t := range toggles {
		if changed(t.flag) {
			*t.dst = t.value
		}
	}

	if changed("vinyl-brand") {
		job.VinylBrand = reference.VinylBrand(o.vinylBrand)
		job.VinylCostPerLinearFoot = nil
	}
	if changed("print-brand") {
		job.PrintBrand = reference.PrintBrand(o.printBrand)
		job.PrintCostPerArea, job.LamCostPerArea = nil, nil
	}
	if changed("mode") {
		job.Mode = pricing.Mode(o.mode)
	}

	amounts := []struct {
		flag    string
		value   string
		percent bool
		set     func(decimal.Decimal)
	}{
		{"waste", o.waste, true, func(d decimal.Decimal) { job.WastePercent = d }},
		{"manual-hours", o.manualHours, false, func(d decimal.Decimal) { job.ManualHours = &d }},
		{"vinyl-cost", o.vinylCost, false, func(d decimal.Decimal) { job.VinylCostPerLinearFoot = &d }},
		{"print-cost", o.printCost, false, func(d decimal.Decimal) { job.PrintCostPerArea = &d }},
		{"lam-cost", o.lamCost, false, func(d decimal.Decimal) { job.LamCostPerArea = &d }},
		{"labor-rate", o.laborRate, false, func(d decimal.Decimal) { job.LaborRate = d }},
		{"design-fee", o.designFee, false, func(d decimal.Decimal) { job.DesignFee = d }},
		{"overhead", o.overhead, false, func(d decimal.Decimal) { job.Overhead = d }},
		{"percent", o.percent, true, func(d decimal.Decimal) { job.Percent = d }},
		{"deposit", o.deposit, false, func(d decimal.Decimal) { job.DepositPercent = d }},
	}
	for _, a := range amounts {
		if !changed(a.flag) {
			continue
		}
		d, err := decimal.NewFromString(a.value)
		if err != nil {
			return errors.Newf(errors.TypeInput, "--%s: %q is not a number", a.flag, a.value)
		}
		if a.percent {
			d = d.Div(hundred)
		}
		a.set(d)
	}

	return job.Validate()
}
