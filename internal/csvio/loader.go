package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/rhyrak/section-planner/pkg/model"
)

// SectionCSVRow mirrors a row of the timetable table extracted from the
// published PDF.
type SectionCSVRow struct {
	NRC        string `csv:"NRC"`
	Key        string `csv:"Clave"`
	Course     string `csv:"Materia"`
	Group      string `csv:"Secc"`
	Days       string `csv:"Días"`
	Hours      string `csv:"Hora"`
	Instructor string `csv:"Profesor"`
	Room       string `csv:"Salón"`
}

// Loader reads section rows from a CSV file.
type Loader struct {
	Path  string
	Delim rune
}

func NewLoader(path string, delim rune) *Loader {
	if delim == 0 {
		delim = ','
	}
	return &Loader{Path: path, Delim: delim}
}

// Sections reads and parses the file.
func (l *Loader) Sections() ([]model.RawSection, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", l.Path, err)
	}
	defer f.Close()

	rows, err := l.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", l.Path, err)
	}
	return rows, nil
}

// Decode parses CSV content into raw sections.
func (l *Loader) Decode(in io.Reader) ([]model.RawSection, error) {
	r := csv.NewReader(in)
	r.Comma = l.Delim
	r.FieldsPerRecord = -1

	_rows := []*SectionCSVRow{}
	if err := gocsv.UnmarshalCSV(r, &_rows); err != nil {
		return nil, err
	}

	sections := make([]model.RawSection, 0, len(_rows))
	for _, row := range _rows {
		start, end, _ := strings.Cut(row.Hours, "-")
		sections = append(sections, model.RawSection{
			ID:             strings.TrimSpace(row.NRC),
			CourseName:     cleanCell(row.Course),
			Instructor:     cleanCell(row.Instructor),
			Days:           row.Days,
			TimeRangeStart: strings.TrimSpace(start),
			TimeRangeEnd:   strings.TrimSpace(end),
			Room:           strings.TrimSpace(row.Room),
		})
	}
	return sections, nil
}

// Table extraction leaves carriage returns inside wrapped cells.
func cleanCell(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.Join(strings.Fields(s), " ")
}
