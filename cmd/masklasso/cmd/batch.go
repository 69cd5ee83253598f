package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Hari-Shankar-Karthik/masklasso/internal/refiner"
)

// batchCmd represents the batch command.
var batchCmd = &cobra.Command{
	Use:   "batch IMAGE,MASK,OUT [IMAGE,MASK,OUT ...]",
	Short: "Refine several independent image/mask pairs concurrently",
	Long: `Refine multiple (image, mask) pairs in parallel. Each argument is a
comma-separated triple of image path, mask path, and output path for the
refined mask. Pairs are independent of each other, so they are processed by
a bounded pool of workers; per-pair failures are reported without aborting
the rest of the batch.

Examples:
  masklasso batch a.jpg,a_mask.png,a_out.png b.jpg,b_mask.png,b_out.png
  masklasso batch pairs... --workers 4 --format json`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if err := cfg.Validate(); err != nil {
			return err
		}

		jobs := make([]refiner.Job, 0, len(args))
		for _, arg := range args {
			parts := strings.Split(arg, ",")
			if len(parts) != 3 {
				return fmt.Errorf("invalid job %q (expected IMAGE,MASK,OUT)", arg)
			}
			jobs = append(jobs, refiner.Job{
				ImagePath:  parts[0],
				MaskPath:   parts[1],
				OutputPath: parts[2],
			})
		}

		results := refiner.RefineAll(cmd.Context(), jobs, cfg)

		type jobSummary struct {
			Image  string          `json:"image" yaml:"image"`
			Mask   string          `json:"mask" yaml:"mask"`
			Output string          `json:"output,omitempty" yaml:"output,omitempty"`
			Error  string          `json:"error,omitempty" yaml:"error,omitempty"`
			Report *refiner.Report `json:"report,omitempty" yaml:"report,omitempty"`
		}
		summaries := make([]jobSummary, 0, len(results))
		failed := 0
		for _, res := range results {
			s := jobSummary{Image: res.Job.ImagePath, Mask: res.Job.MaskPath, Output: res.Job.OutputPath}
			if res.Err != nil {
				s.Error = res.Err.Error()
				failed++
			} else {
				s.Report = res.Report
			}
			summaries = append(summaries, s)
		}

		outFile, _ := cmd.Flags().GetString("output")
		if outFile == "" {
			outFile = cfg.Output.File
		}
		w, done, err := resultWriter(outFile)
		if err != nil {
			return err
		}
		defer done()
		if err := writeResult(w, summaries, cfg.Output.Format); err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d jobs failed", failed, len(results))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().Int("workers", 0, "number of concurrent refinements (0 = number of CPUs)")
	batchCmd.Flags().String("output", "", "write the batch report to a file instead of stdout")

	_ = viper.BindPFlag("batch.workers", batchCmd.Flags().Lookup("workers"))
}
