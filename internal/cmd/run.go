package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wakuchin-go/wakuchin/internal/config"
	"github.com/wakuchin-go/wakuchin/internal/wakuchin"
	"github.com/wakuchin-go/wakuchin/internal/wakuchin/handlers"
)

var errColor = color.New(color.FgRed, color.Bold)

var runCmd = &cobra.Command{
	Use:   "run [config-file]",
	Short: "Run a wakuchin search",
	Long: `Run searches randomly generated wakuchin strings for matches
against a regular expression, reporting live progress and a final hit
summary.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Uint64("tries", 0, "Number of candidates to generate")
	runCmd.Flags().Uint64("times", 0, "Repeat count per candidate (candidate length is 4*times)")
	runCmd.Flags().String("regex", "", "Regular expression to match candidates against")
	runCmd.Flags().String("format", "text", "Output format: text or json")
	runCmd.Flags().Duration("interval", 500*time.Millisecond, "Progress reporting interval")
	runCmd.Flags().Uint("workers", 0, "Number of parallel workers (0: use all CPUs; ignored with --sequential)")
	runCmd.Flags().String("handler", "console", "Progress handler: console, msgpack, msgpack_base64")
	runCmd.Flags().Bool("no-progress", false, "Suppress live progress output")
	runCmd.Flags().Bool("sequential", false, "Force single-goroutine sequential mode")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"tries", "tries"},
		{"times", "times"},
		{"regex", "regex"},
		{"output", "format"},
		{"interval", "interval"},
		{"workers", "workers"},
		{"handler", "handler"},
		{"no_progress", "no-progress"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, runCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runRun(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	if len(args) == 1 {
		doc, err := config.Load(args[0])
		if err != nil {
			return reportErr(err)
		}

		applyConfigDefaults(cmd, doc)
	}

	tries := viper.GetUint64("tries")
	times := viper.GetUint64("times")
	regexStr := viper.GetString("regex")
	formatStr := viper.GetString("output")
	interval := viper.GetDuration("interval")
	workers := uint(viper.GetUint("workers"))
	handlerName := viper.GetString("handler")
	noProgress := viper.GetBool("no_progress")
	sequential, _ := cmd.Flags().GetBool("sequential")

	if regexStr == "" {
		return reportErr(fmt.Errorf("--regex is required"))
	}

	re, err := regexp.Compile(regexStr)
	if err != nil {
		return reportErr(fmt.Errorf("invalid regex %q: %w", regexStr, err))
	}

	format, err := wakuchin.ParseOutputFormat(formatStr)
	if err != nil {
		return reportErr(err)
	}

	handler, err := resolveHandler(handlerName, tries, noProgress)
	if err != nil {
		return reportErr(err)
	}

	logger.Info("starting run",
		"tries", tries,
		"times", times,
		"regex", regexStr,
		"workers", workers,
		"handler", handlerName,
		"sequential", sequential,
	)

	cfg := wakuchin.Config{
		Tries:    tries,
		Times:    times,
		Regex:    re,
		Handler:  handler,
		Interval: interval,
		Workers:  workers,
	}

	ctx := context.Background()

	var result wakuchin.Result
	if sequential {
		result, err = wakuchin.RunSequential(ctx, cfg)
	} else {
		result, err = wakuchin.RunParallel(ctx, cfg)
	}

	if errors.Is(err, wakuchin.ErrCancelled) {
		os.Exit(1)
	}

	if err != nil {
		return reportErr(err)
	}

	out, err := wakuchin.Format(result, format)
	if err != nil {
		return reportErr(err)
	}

	fmt.Println(out)

	return nil
}

// applyConfigDefaults sets viper values for any config-document field the
// operator did not already pin via a CLI flag, so flags always win over a
// named config file (spec.md §6 "an optional positional config path").
func applyConfigDefaults(cmd *cobra.Command, doc config.Document) {
	if !cmd.Flags().Changed("tries") && doc.Tries != 0 {
		viper.Set("tries", doc.Tries)
	}
	if !cmd.Flags().Changed("times") && doc.Times != 0 {
		viper.Set("times", doc.Times)
	}
	if !cmd.Flags().Changed("regex") && doc.Regex != "" {
		viper.Set("regex", doc.Regex)
	}
	if !cmd.Flags().Changed("format") && doc.Output != "" {
		viper.Set("output", doc.Output)
	}
	if !cmd.Flags().Changed("interval") && doc.Interval != 0 {
		viper.Set("interval", doc.Interval)
	}
	if !cmd.Flags().Changed("workers") && doc.Workers != 0 {
		viper.Set("workers", doc.Workers)
	}
	if !cmd.Flags().Changed("handler") && doc.Handler != "" {
		viper.Set("handler", doc.Handler)
	}
	if !cmd.Flags().Changed("no-progress") && doc.NoProgress {
		viper.Set("no_progress", doc.NoProgress)
	}
}

func resolveHandler(name string, tries uint64, noProgress bool) (wakuchin.ProgressHandler, error) {
	switch name {
	case "console":
		return handlers.NewConsole(tries, noProgress), nil
	case "msgpack":
		return handlers.NewMsgpack(tries), nil
	case "msgpack_base64":
		return handlers.NewMsgpackBase64(tries), nil
	default:
		return nil, fmt.Errorf("%w: %q", wakuchin.ErrUnknownHandler, name)
	}
}

// reportErr prints the CLI's single coloured error line (spec.md §7) and
// returns a plain error so cobra's own SilenceErrors/SilenceUsage
// handling doesn't print a second copy.
func reportErr(err error) error {
	errColor.Fprint(os.Stderr, "error: ")
	fmt.Fprintln(os.Stderr, err)

	return errSilent
}

var errSilent = errors.New("")

func init() {
	runCmd.SilenceErrors = true
	runCmd.SilenceUsage = true
}
