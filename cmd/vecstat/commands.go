package main

import (
	"context"
	"fmt"
	"regexp"

	"github.com/hupe1980/vecstat"
	"github.com/hupe1980/vecstat/ids"
	"github.com/hupe1980/vecstat/internal/report"
	"github.com/hupe1980/vecstat/relation"
	"github.com/hupe1980/vecstat/vector"
	"github.com/spf13/cobra"
)

func newSummaryCmd(a *app) *cobra.Command {
	var (
		byClass bool
		workers int
	)
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print centroid, variances, bounds and covariance of the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := report.Options{
				ByClass: a.cfg.Report.ByClass,
				Workers: a.cfg.Report.Workers,
			}
			if cmd.Flags().Changed("by-class") {
				opts.ByClass = byClass
			}
			if cmd.Flags().Changed("workers") {
				opts.Workers = workers
			}

			ctx := cmd.Context()
			db, err := a.loadDatabase(ctx)
			if err != nil {
				return err
			}
			rep, err := buildReport(ctx, a, db, opts)
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), a.cfg.Format, rep)
		},
	}
	cmd.Flags().BoolVar(&byClass, "by-class", false, "add one summary per class label")
	cmd.Flags().IntVar(&workers, "workers", 0, "class summaries computed in parallel")
	return cmd
}

// buildReport picks the analyzer matching the element type of the vector
// relation.
func buildReport(ctx context.Context, a *app, db relation.Database, opts report.Options) (*report.Report, error) {
	if _, err := relation.RelationOf[vector.Float32](db, relation.KindVector); err == nil {
		return report.Build(ctx, vecstat.NewAnalyzer[vector.Float32](vecstat.WithLogger(a.logger)), db, opts)
	}
	return report.Build(ctx, vecstat.NewAnalyzer[vector.Float64](vecstat.WithLogger(a.logger)), db, opts)
}

func newMatchCmd(a *app) *cobra.Command {
	var pattern string
	cmd := &cobra.Command{
		Use:   "match",
		Short: "List the ids whose object label matches a regular expression in full",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			re, err := regexp.Compile(pattern)
			if err != nil {
				return fmt.Errorf("invalid pattern: %w", err)
			}
			ctx := cmd.Context()
			db, err := a.loadDatabase(ctx)
			if err != nil {
				return err
			}
			an := vecstat.NewAnalyzer[vector.Float64](vecstat.WithLogger(a.logger))
			found, err := an.ObjectsByLabelMatch(ctx, db, re)
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), a.cfg.Format, idList(found))
		},
	}
	cmd.Flags().StringVar(&pattern, "pattern", "", "regular expression matched against whole labels")
	_ = cmd.MarkFlagRequired("pattern")
	return cmd
}

func idList(set ids.IDs) []ids.ID {
	out := make([]ids.ID, 0, set.Len())
	for id := range set.All() {
		out = append(out, id)
	}
	return out
}

func newLabelsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "labels",
		Short: "List the distinct class labels of the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			db, err := a.loadDatabase(ctx)
			if err != nil {
				return err
			}
			an := vecstat.NewAnalyzer[vector.Float64](vecstat.WithLogger(a.logger))
			classes, err := an.ClassLabels(ctx, db)
			if err != nil {
				return err
			}
			names := make([]string, len(classes))
			for i, c := range classes {
				names[i] = c.String()
			}
			return write(cmd.OutOrStdout(), a.cfg.Format, names)
		},
	}
}

type typeInfo struct {
	Kind       string `json:"kind" yaml:"kind"`
	Relation   string `json:"relation" yaml:"relation"`
	Size       int    `json:"size" yaml:"size"`
	ObjectType string `json:"object_type" yaml:"object_type"`
}

func newTypeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "type",
		Short: "Print the most specific object type of every relation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			db, err := a.loadDatabase(ctx)
			if err != nil {
				return err
			}
			an := vecstat.NewAnalyzer[vector.Float64](vecstat.WithLogger(a.logger))

			var out []typeInfo
			for _, kind := range db.Kinds() {
				r, err := db.Relation(kind)
				if err != nil {
					return err
				}
				t, err := an.BaseObjectType(ctx, r)
				if err != nil {
					return err
				}
				info := typeInfo{
					Kind:     kind.String(),
					Relation: r.TypeInfo().String(),
					Size:     r.Size(),
				}
				if t != nil {
					info.ObjectType = t.String()
				}
				out = append(out, info)
			}
			return write(cmd.OutOrStdout(), a.cfg.Format, out)
		},
	}
}
