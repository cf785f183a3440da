package main

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thisisWooyeol/HRSBench/colors"
	"github.com/thisisWooyeol/HRSBench/dataset"
	"github.com/thisisWooyeol/HRSBench/scoring"
)

func newSpatialCmd() *cobra.Command {
	return newRelationCmd("spatial", "Score spatial-relation assertions (left/right/above/below/between)")
}

func newSizeCmd() *cobra.Command {
	return newRelationCmd("size", "Score size-comparison assertions (bigger/smaller)")
}

// newRelationCmd builds a subcommand for one of the relational tasks.
// The two tasks share the scorer; only the relation labels in the
// ground truth differ.
func newRelationCmd(use, short string) *cobra.Command {
	var gtPath, predPath, outPath string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			gts, err := dataset.LoadGroundTruth(gtPath)
			if err != nil {
				return err
			}
			raw, err := dataset.LoadPredictions(predPath)
			if err != nil {
				return err
			}

			scorer := scoring.NewRelationScorer(cfg.Relations, log)
			result := scorer.Evaluate(gts, scoring.NormalizeAll(raw))

			if outPath == "" {
				outPath = scoring.ResultPath(predPath)
			}
			if err := scoring.WriteResult(outPath, result); err != nil {
				return err
			}
			log.Info("results written",
				zap.String("path", outPath),
				zap.Float64("average_accuracy", result.AverageAccuracy))
			return nil
		},
	}
	cmd.Flags().StringVar(&gtPath, "gt", "", "ground-truth JSONL file")
	cmd.Flags().StringVar(&predPath, "pred", "", "prediction JSON file")
	cmd.Flags().StringVar(&outPath, "out", "", "result file (defaults next to the prediction file)")
	cmd.MarkFlagRequired("gt")
	cmd.MarkFlagRequired("pred")
	return cmd
}

func newCountingCmd() *cobra.Command {
	var gtPath, predPath, outPath string
	cmd := &cobra.Command{
		Use:   "counting",
		Short: "Score object-count assertions as precision/recall/F1",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			gts, err := dataset.LoadGroundTruth(gtPath)
			if err != nil {
				return err
			}
			raw, err := dataset.LoadPredictions(predPath)
			if err != nil {
				return err
			}

			scorer := scoring.NewCountingScorer(log)
			result := scorer.Evaluate(gts, scoring.NormalizeAll(raw))

			if outPath == "" {
				outPath = scoring.ResultPath(predPath)
			}
			if err := scoring.WriteResult(outPath, result); err != nil {
				return err
			}
			log.Info("results written",
				zap.String("path", outPath),
				zap.Float64("average_f1", result.Average.F1))
			return nil
		},
	}
	cmd.Flags().StringVar(&gtPath, "gt", "", "ground-truth JSONL file")
	cmd.Flags().StringVar(&predPath, "pred", "", "prediction JSON file")
	cmd.Flags().StringVar(&outPath, "out", "", "result file (defaults next to the prediction file)")
	cmd.MarkFlagRequired("gt")
	cmd.MarkFlagRequired("pred")
	return cmd
}

// newPrepareCmd groups the ground-truth assembly subcommands: they
// cross-reference raw layout output against a prompt table and write
// the JSONL files the scoring subcommands consume.
func newPrepareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Assemble ground-truth JSONL from layouts and prompt tables",
	}
	cmd.AddCommand(newPrepareCountingCmd(), newPrepareSizeCmd(), newPrepareColorCmd())
	return cmd
}

func newPrepareCountingCmd() *cobra.Command {
	var layoutPath, promptPath, outPath string
	cmd := &cobra.Command{
		Use:   "counting",
		Short: "Assemble counting ground truth",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			layouts, err := dataset.LoadLayouts(layoutPath)
			if err != nil {
				return err
			}
			prompts, err := dataset.LoadCountingPrompts(promptPath)
			if err != nil {
				return err
			}

			records := dataset.BuildCountingRecords(layouts, prompts, log)
			if err := dataset.WriteGroundTruth(outPath, records); err != nil {
				return err
			}
			log.Info("ground truth written",
				zap.String("path", outPath), zap.Int("records", len(records)))
			return nil
		},
	}
	cmd.Flags().StringVar(&layoutPath, "layouts", "", "raw layout JSON file")
	cmd.Flags().StringVar(&promptPath, "prompts", "", "counting prompt CSV file")
	cmd.Flags().StringVar(&outPath, "out", "", "ground-truth JSONL file to write")
	cmd.MarkFlagRequired("layouts")
	cmd.MarkFlagRequired("prompts")
	cmd.MarkFlagRequired("out")
	return cmd
}

func newPrepareSizeCmd() *cobra.Command {
	var layoutPath, promptPath, outPath string
	cmd := &cobra.Command{
		Use:   "size",
		Short: "Assemble size-comparison ground truth",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			layouts, err := dataset.LoadLayouts(layoutPath)
			if err != nil {
				return err
			}
			prompts, err := dataset.LoadSizePrompts(promptPath)
			if err != nil {
				return err
			}

			records := dataset.BuildSizeRecords(layouts, prompts, log)
			if err := dataset.WriteGroundTruth(outPath, records); err != nil {
				return err
			}
			log.Info("ground truth written",
				zap.String("path", outPath), zap.Int("records", len(records)))
			return nil
		},
	}
	cmd.Flags().StringVar(&layoutPath, "layouts", "", "raw layout JSON file")
	cmd.Flags().StringVar(&promptPath, "prompts", "", "size prompt CSV file")
	cmd.Flags().StringVar(&outPath, "out", "", "ground-truth JSONL file to write")
	cmd.MarkFlagRequired("layouts")
	cmd.MarkFlagRequired("prompts")
	cmd.MarkFlagRequired("out")
	return cmd
}

func newPrepareColorCmd() *cobra.Command {
	var layoutPath, promptPath, outPath string
	cmd := &cobra.Command{
		Use:   "color",
		Short: "Assemble color ground truth",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			layouts, err := dataset.LoadLayouts(layoutPath)
			if err != nil {
				return err
			}
			prompts, err := dataset.LoadColorPrompts(promptPath)
			if err != nil {
				return err
			}

			records := dataset.BuildColorRecords(layouts, prompts, log)
			if err := dataset.WriteGroundTruth(outPath, records); err != nil {
				return err
			}
			log.Info("ground truth written",
				zap.String("path", outPath), zap.Int("records", len(records)))
			return nil
		},
	}
	cmd.Flags().StringVar(&layoutPath, "layouts", "", "raw layout JSON file")
	cmd.Flags().StringVar(&promptPath, "prompts", "", "color prompt CSV file")
	cmd.Flags().StringVar(&outPath, "out", "", "ground-truth JSONL file to write")
	cmd.MarkFlagRequired("layouts")
	cmd.MarkFlagRequired("prompts")
	cmd.MarkFlagRequired("out")
	return cmd
}

func newColorCmd() *cobra.Command {
	var gtPath, imageDir, maskDir, outPath string
	cmd := &cobra.Command{
		Use:   "color",
		Short: "Score color assertions against segmentation masks",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			gts, err := dataset.LoadGroundTruth(gtPath)
			if err != nil {
				return err
			}
			maskNames, err := colors.ListMaskNames(maskDir)
			if err != nil {
				return err
			}
			maskIndex := colors.BuildMaskIndex(maskNames, gts)

			scorer := colors.NewScorer(cfg.Hues, log)
			result := scorer.Evaluate(gts, maskIndex, imageDir, maskDir)

			if outPath == "" {
				outPath = filepath.Join(filepath.Dir(maskDir), "color_results.json")
			}
			if err := scoring.WriteResult(outPath, result); err != nil {
				return err
			}
			log.Info("results written",
				zap.String("path", outPath),
				zap.Float64("average_accuracy", result.AverageAccuracy))
			return nil
		},
	}
	cmd.Flags().StringVar(&gtPath, "gt", "", "ground-truth JSONL file")
	cmd.Flags().StringVar(&imageDir, "images", "", "directory of generated images")
	cmd.Flags().StringVar(&maskDir, "masks", "", "directory of predicted segmentation masks")
	cmd.Flags().StringVar(&outPath, "out", "", "result file (defaults next to the mask directory)")
	cmd.MarkFlagRequired("gt")
	cmd.MarkFlagRequired("images")
	cmd.MarkFlagRequired("masks")
	return cmd
}
