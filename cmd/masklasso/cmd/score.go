package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Hari-Shankar-Karthik/masklasso/internal/mask"
	"github.com/Hari-Shankar-Karthik/masklasso/internal/metrics"
	"github.com/Hari-Shankar-Karthik/masklasso/internal/utils"
)

// scoreCmd represents the score command.
var scoreCmd = &cobra.Command{
	Use:   "score [IMAGE MASK]",
	Short: "Score a mask against an image or against another mask",
	Long: `Score mask quality. With an image and a mask, reports edge alignment
and region homogeneity. With --masks A,B, reports IoU and Dice overlap
between two masks instead.

Examples:
  masklasso score photo.jpg mask.png
  masklasso score photo.jpg mask.png --format json
  masklasso score --masks original.png,refined.png`,
	Args:         cobra.MaximumNArgs(2),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if err := cfg.Validate(); err != nil {
			return err
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

		if masksFlag, _ := cmd.Flags().GetString("masks"); masksFlag != "" {
			parts := strings.Split(masksFlag, ",")
			if len(parts) != 2 {
				return fmt.Errorf("--masks expects two comma-separated paths, got %q", masksFlag)
			}
			a, err := mask.Load(parts[0])
			if err != nil {
				return fmt.Errorf("load mask %s: %w", parts[0], err)
			}
			b, err := mask.Load(parts[1])
			if err != nil {
				return fmt.Errorf("load mask %s: %w", parts[1], err)
			}
			return writeResult(w, metrics.ComputeOverlap(a, b), cfg.Output.Format)
		}

		if len(args) != 2 {
			return errors.New("provide IMAGE and MASK arguments, or --masks A,B")
		}
		img, _, err := utils.LoadImage(args[0])
		if err != nil {
			return fmt.Errorf("load image: %w", err)
		}
		m, err := mask.Load(args[1])
		if err != nil {
			return fmt.Errorf("load mask: %w", err)
		}
		scores, err := metrics.Compute(m, img, cfg.Metrics.EdgeThreshold)
		if err != nil {
			return err
		}
		return writeResult(w, scores, cfg.Output.Format)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().String("masks", "", "two comma-separated mask paths for overlap scoring")
	scoreCmd.Flags().Int("edge-threshold", 50, "edge-map intensity above which a pixel is a strong edge")
	scoreCmd.Flags().String("output", "", "write the scores to a file instead of stdout")

	_ = viper.BindPFlag("metrics.edge_threshold", scoreCmd.Flags().Lookup("edge-threshold"))
}
