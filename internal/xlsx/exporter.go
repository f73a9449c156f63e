package xlsx

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/rhyrak/section-planner/internal/scheduler"
	"github.com/rhyrak/section-planner/pkg/model"
)

const SheetName = "Horarios"

// Palette is cycled through in order of first appearance of each section.
var Palette = []string{
	"#A6CEE3", "#FDBF6F", "#B2DF8A", "#FB9A99", "#D0D1E6",
	"#D8B365", "#F4CAE4", "#BABABA", "#FFFF99", "#9ECAE1",
	"#B3DE69", "#FFAD80", "#80CDC1", "#FFB3B3", "#B3DAFF",
	"#FFE699", "#C2F0C2", "#CC6666", "#666699", "#E0E0F2",
}

var (
	gridHeader   = []string{"HORAS", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes"}
	legendHeader = []string{"NRC", "MATERIA", "PROFESOR"}
)

// blockGap is the number of blank rows between two schedules.
const blockGap = 3

// Exporter writes every ranked schedule as a weekly grid with a legend of
// its sections.
type Exporter struct {
	Path string
}

func NewExporter(path string) *Exporter {
	return &Exporter{Path: path}
}

func (e *Exporter) Export(catalog *model.Catalog, result *scheduler.Result) error {
	f, err := Build(catalog, result.Ranking)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := os.MkdirAll(filepath.Dir(e.Path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(e.Path), err)
	}
	if err := f.SaveAs(e.Path); err != nil {
		return fmt.Errorf("save %s: %w", e.Path, err)
	}
	return nil
}

type book struct {
	f      *excelize.File
	header int
	colors map[string]int
	widths map[int]int
}

// Build lays out the workbook in memory. The file is closed before any
// error is returned.
func Build(catalog *model.Catalog, ranking scheduler.Ranking) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := layout(f, catalog, ranking); err != nil {
		f.Close() //nolint:errcheck
		return nil, err
	}
	return f, nil
}

func layout(f *excelize.File, catalog *model.Catalog, ranking scheduler.Ranking) error {
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}
	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	b := &book{f: f, header: header, colors: map[string]int{}, widths: map[int]int{}}

	row := 1
	rank := 0
	for _, group := range ranking {
		for _, s := range group.Schedules {
			rank++
			used, err := b.schedule(catalog, row, rank, s)
			if err != nil {
				return err
			}
			row += used + blockGap
		}
	}

	for col, w := range b.widths {
		name, _ := excelize.ColumnNumberToName(col)
		if err := f.SetColWidth(SheetName, name, name, float64(w+2)); err != nil {
			return err
		}
	}
	return nil
}

// schedule writes one block starting at top and returns how many rows it used.
func (b *book) schedule(catalog *model.Catalog, top int, rank int, s model.ScoredSchedule) (int, error) {
	sections, ok := catalog.Resolve(s.Schedule)
	if !ok {
		return 0, fmt.Errorf("schedule %s references an unknown section", s.Schedule)
	}
	table := s.Timetable
	if table == nil {
		table = timetable(sections)
	}

	if err := b.set(1, top, fmt.Sprintf("#%d  score %d", rank, s.Score), b.header); err != nil {
		return 0, err
	}
	headerRow := top + 1
	for i, h := range gridHeader {
		if err := b.set(i+1, headerRow, h, b.header); err != nil {
			return 0, err
		}
	}
	for i, slot := range table.Slots {
		r := headerRow + 1 + i
		if err := b.set(1, r, slot.String(), 0); err != nil {
			return 0, err
		}
		for _, day := range table.Days {
			ids := day.Slots[i].Sections
			if len(ids) == 0 {
				continue
			}
			style, err := b.color(ids[0])
			if err != nil {
				return 0, err
			}
			if err := b.set(int(day.DayOfWeek)+2, r, strings.Join(ids, "/"), style); err != nil {
				return 0, err
			}
		}
	}

	legendCol := len(gridHeader) + 2
	for i, h := range legendHeader {
		if err := b.set(legendCol+i, headerRow, h, b.header); err != nil {
			return 0, err
		}
	}
	for i, sec := range sections {
		r := headerRow + 1 + i
		style, err := b.color(sec.ID)
		if err != nil {
			return 0, err
		}
		if err := b.set(legendCol, r, sec.ID, style); err != nil {
			return 0, err
		}
		if err := b.set(legendCol+1, r, sec.CourseName, 0); err != nil {
			return 0, err
		}
		if err := b.set(legendCol+2, r, model.DisplayName(sec.Instructor), 0); err != nil {
			return 0, err
		}
	}

	return 1 + 1 + max(len(table.Slots), len(sections)), nil
}

func (b *book) set(col, row int, value string, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := b.f.SetCellValue(SheetName, cell, value); err != nil {
		return err
	}
	if style != 0 {
		if err := b.f.SetCellStyle(SheetName, cell, cell, style); err != nil {
			return err
		}
	}
	if n := utf8.RuneCountInString(value); n > b.widths[col] {
		b.widths[col] = n
	}
	return nil
}

// color returns the fill style of a section, allocating the next palette
// entry the first time the section is seen.
func (b *book) color(id string) (int, error) {
	if style, ok := b.colors[id]; ok {
		return style, nil
	}
	style, err := b.f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{Palette[len(b.colors)%len(Palette)]}, Pattern: 1},
	})
	if err != nil {
		return 0, err
	}
	b.colors[id] = style
	return style, nil
}

// timetable places the sections on a grid of the buckets they occupy.
func timetable(sections []*model.Section) *model.Timetable {
	var slots []model.Interval
	for _, s := range sections {
		slots = append(slots, s.Intervals...)
	}
	slices.SortFunc(slots, model.Interval.Compare)
	slots = slices.Compact(slots)

	table := model.NewTimetable(slots)
	for _, s := range sections {
		table.Place(s)
	}
	return table
}
