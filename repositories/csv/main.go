package csv

import (
	"context"
	stdcsv "encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"genosplit/api/models"
	"genosplit/api/models/constants"
	p "genosplit/api/models/constants/partition"
	ve "genosplit/api/models/validation-errors"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/mitchellh/mapstructure"
	"golang.org/x/sync/errgroup"
)

// required columns are kept as raw text so integer
// parsing failures can be reported with their value
var rawColumnTypes = func() map[string]series.Type {
	types := map[string]series.Type{}
	for _, column := range constants.RequiredColumns {
		types[column] = series.String
	}
	return types
}()

// ReadPartition parses one partition CSV (with header) into records
func ReadPartition(name constants.Partition, r io.Reader) (models.Partition, error) {
	rows, err := stdcsv.NewReader(r).ReadAll()
	if err != nil {
		return models.Partition{}, fmt.Errorf("partition %s: reading csv: %w", name, err)
	}
	if len(rows) == 0 {
		return models.Partition{}, &ve.MissingColumnError{Partition: name, Column: constants.RequiredColumns[0]}
	}
	for i := range rows[0] {
		rows[0][i] = strings.TrimSpace(rows[0][i])
	}

	// header only: nothing for the dataframe to hold
	if len(rows) == 1 {
		if err := checkColumns(name, rows[0]); err != nil {
			return models.Partition{}, err
		}
		return models.Partition{Name: name, Records: []models.VariantRecord{}}, nil
	}

	df := dataframe.LoadRecords(rows,
		dataframe.HasHeader(true),
		dataframe.NaNValues(nil),
		dataframe.WithTypes(rawColumnTypes))

	return ToPartition(name, df)
}

// ToPartition validates a partition table and decodes its rows
func ToPartition(name constants.Partition, df dataframe.DataFrame) (models.Partition, error) {
	if df.Err != nil {
		return models.Partition{}, fmt.Errorf("partition %s: %w", name, df.Err)
	}
	if err := checkColumns(name, df.Names()); err != nil {
		return models.Partition{}, err
	}
	locStrings := df.Col(constants.LocStringColumn).Records()
	for row, value := range locStrings {
		if len(strings.TrimSpace(value)) == 0 {
			return models.Partition{}, &ve.TypeMismatchError{Partition: name, Column: constants.LocStringColumn, Row: row, Value: value}
		}
	}
	for _, column := range constants.IntegerColumns {
		for row, value := range df.Col(column).Records() {
			if _, err := parseInt(value); err != nil {
				return models.Partition{}, &ve.TypeMismatchError{Partition: name, Column: column, Row: row, Value: value}
			}
		}
	}

	records := make([]models.VariantRecord, 0, df.Nrow())
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: stringToIntHook,
		Result:     &records,
	})
	if err != nil {
		return models.Partition{}, err
	}
	if err := decoder.Decode(df.Maps()); err != nil {
		return models.Partition{}, fmt.Errorf("partition %s: decoding rows: %v: %w", name, err, ve.ErrTypeMismatch)
	}
	for i := range records {
		records[i].Row = i
		// gota reports a literal "NaN" as missing even in string columns
		records[i].LocString = locStrings[i]
	}

	return models.Partition{Name: name, Records: records}, nil
}

func LoadPartitionFile(name constants.Partition, filePath string) (models.Partition, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return models.Partition{}, fmt.Errorf("partition %s: %w", name, err)
	}
	defer f.Close()

	return ReadPartition(name, f)
}

// LoadDataset reads the three configured partition files concurrently
func LoadDataset(ctx context.Context, cfg *models.Config) (models.Dataset, error) {
	var dataset models.Dataset

	eg, ctx := errgroup.WithContext(ctx)
	load := func(name constants.Partition, fileName string, dest *models.Partition) {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			partition, err := LoadPartitionFile(name, filepath.Join(cfg.Data.Path, fileName))
			if err != nil {
				return err
			}
			*dest = partition
			return nil
		})
	}
	load(p.Train, cfg.Data.TrainFile, &dataset.Train)
	load(p.Validation, cfg.Data.ValidationFile, &dataset.Validation)
	load(p.Test, cfg.Data.TestFile, &dataset.Test)

	if err := eg.Wait(); err != nil {
		return models.Dataset{}, err
	}
	return dataset, nil
}

func checkColumns(name constants.Partition, header []string) error {
	present := make(map[string]bool, len(header))
	for _, column := range header {
		present[column] = true
	}
	for _, column := range constants.RequiredColumns {
		if !present[column] {
			return &ve.MissingColumnError{Partition: name, Column: column}
		}
	}
	return nil
}

func parseInt(value string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(value))
}

func stringToIntHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Int {
		return data, nil
	}
	return parseInt(reflect.ValueOf(data).String())
}
