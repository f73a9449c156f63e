package scheduler

import (
	"fmt"

	"github.com/rhyrak/section-planner/pkg/model"
)

type Configuration struct {
	CatalogFile      string
	ExportFile       string
	CombinationsFile string
	WorkbookFile     string
	Delimiter        rune
	BucketWidth      int
	DeadHourWeight   int
	BoundaryPenalty  int
	PreferredBonus   int
}

func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		CatalogFile:      "./data/classes.csv",
		ExportFile:       "./schedules/schedules.csv",
		CombinationsFile: "./schedules/combinations.txt",
		WorkbookFile:     "./schedules/schedules.xlsx",
		Delimiter:        ',',
		BucketWidth:      model.DefaultBucketWidth, // one hour, HHMM units
		DeadHourWeight:   20,
		BoundaryPenalty:  5,
		PreferredBonus:   10,
	}
}

// Validate rejects settings the engine cannot work with.
func (c *Configuration) Validate() error {
	if c.BucketWidth <= 0 || c.BucketWidth%100 != 0 {
		return fmt.Errorf("bucket width %d is not a positive multiple of 100", c.BucketWidth)
	}
	if c.DeadHourWeight < 0 || c.BoundaryPenalty < 0 || c.PreferredBonus < 0 {
		return fmt.Errorf("scoring weights must not be negative")
	}
	return nil
}
