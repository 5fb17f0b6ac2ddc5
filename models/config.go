package models

import "time"

type Config struct {
	Debug bool `envconfig:"GENOSPLIT_DEBUG"`

	Api struct {
		Port   string `envconfig:"GENOSPLIT_API_INTERNAL_PORT" default:"5000"`
		SemVer string `envconfig:"GENOSPLIT_API_SEMVER" default:"0.1.0"`
	}
	Data struct {
		Path           string `envconfig:"GENOSPLIT_DATA_PATH" default:"data"`
		TrainFile      string `envconfig:"GENOSPLIT_TRAIN_FILE" default:"train_data.csv"`
		ValidationFile string `envconfig:"GENOSPLIT_VAL_FILE" default:"val_data.csv"`
		TestFile       string `envconfig:"GENOSPLIT_TEST_FILE" default:"test_data.csv"`
	}
	Validation struct {
		PartitionConcurrencyLevel int `envconfig:"GENOSPLIT_PARTITION_CONCURRENCY_LEVEL" default:"3"`
		// 0 disables scheduled revalidation
		RevalidationInterval time.Duration `envconfig:"GENOSPLIT_REVALIDATION_INTERVAL" default:"0"`
		// number of offending rows kept on a run for display
		InvalidLengthSampleSize int `envconfig:"GENOSPLIT_INVALID_LENGTH_SAMPLE_SIZE" default:"10"`
	}
}
