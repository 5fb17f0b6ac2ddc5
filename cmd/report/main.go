package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"genosplit/api/models"
	g "genosplit/api/models/constants/genotype"
	p "genosplit/api/models/constants/partition"
	csvRepo "genosplit/api/repositories/csv"
	"genosplit/api/services"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

func main() {
	// Gather environment variables
	var cfg models.Config
	if err := envconfig.Process("", &cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	format := flag.String("format", "text", "output format: text, json or yaml")
	dataPath := flag.String("data", cfg.Data.Path, "directory holding the partition csv files")
	flag.Parse()
	cfg.Data.Path = *dataPath

	ctx := context.Background()
	dataset, err := csvRepo.LoadDataset(ctx, &cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	result, err := services.Validate(ctx, dataset,
		cfg.Validation.PartitionConcurrencyLevel,
		cfg.Validation.InvalidLengthSampleSize)
	// statistics may be missing on error, the other reports are always set
	if writeErr := write(os.Stdout, strings.ToLower(*format), result); writeErr != nil {
		fmt.Fprintln(os.Stderr, writeErr)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func write(w io.Writer, format string, result *services.ValidationResult) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		out, err := yaml.Marshal(result)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case "text":
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeText(w io.Writer, result *services.ValidationResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, result.Overlaps.Summary)
	fmt.Fprintf(tw, "\nAll variant lengths equal 1 : %t (%d of %d rows invalid)\n",
		result.Lengths.Valid, result.Lengths.InvalidCount, result.Lengths.RecordCount)
	for _, il := range result.Lengths.InvalidLengthRows {
		fmt.Fprintf(tw, " %s\trow %d\t%s\t%d-%d\n", il.Partition, il.Row, il.LocString, il.Start, il.End)
	}

	for _, name := range p.All {
		stats, ok := result.Statistics[name]
		if !ok {
			if message, failed := result.PartitionErrors[name]; failed {
				fmt.Fprintf(tw, "\n== %s : %s\n", name, message)
			}
			continue
		}
		fmt.Fprintf(tw, "\n== %s (%d records)\n", name, stats.RecordCount)

		fmt.Fprintln(tw, "genotype\tfather\tmother\tchild")
		for _, gt := range g.All {
			fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t%.4f\n", gt,
				stats.Marginals.Father.Proportion(gt),
				stats.Marginals.Mother.Proportion(gt),
				stats.Marginals.Child.Proportion(gt))
		}

		fmt.Fprintln(tw, "\nfather \\ mother\t0\t1\t2")
		grid := stats.Joint.Grid()
		for father, row := range grid {
			fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t%.4f\n", father, row[0], row[1], row[2])
		}

		fmt.Fprintln(tw, "\nparents\tchild 0\tchild 1\tchild 2")
		for _, combination := range models.AllCombinations() {
			counts := stats.Conditional[combination]
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", combination, counts[0], counts[1], counts[2])
		}
	}

	return tw.Flush()
}
