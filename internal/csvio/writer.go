package csvio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/rhyrak/section-planner/internal/scheduler"
	"github.com/rhyrak/section-planner/pkg/model"
)

// Exporter writes the ranked schedules as CSV and the accepted combinations
// as a plain text log, one tuple per line in generation order. Either path
// may be empty to skip that file.
type Exporter struct {
	RankingPath      string
	CombinationsPath string
}

func (e *Exporter) Export(catalog *model.Catalog, result *scheduler.Result) error {
	if e.RankingPath != "" {
		if err := ExportRanking(catalog, result.Ranking, e.RankingPath); err != nil {
			return err
		}
	}
	if e.CombinationsPath != "" {
		if err := writeFile(e.CombinationsPath, func(w io.Writer) error {
			return WriteCombinations(w, result.Accepted)
		}); err != nil {
			return err
		}
	}
	return nil
}

// ExportRanking formats the ranking into ScheduleCSVRow structs and writes
// it to the CSV file specified by the given path.
func ExportRanking(catalog *model.Catalog, ranking scheduler.Ranking, path string) error {
	nice := formatRanking(catalog, ranking)
	return writeFile(path, func(w io.Writer) error {
		return gocsv.Marshal(&nice, w)
	})
}

// ExportRankingString is ExportRanking into a string.
func ExportRankingString(catalog *model.Catalog, ranking scheduler.Ranking) (string, error) {
	nice := formatRanking(catalog, ranking)
	return gocsv.MarshalString(&nice)
}

// WriteCombinations logs each schedule as "(id1, id2, ...)".
func WriteCombinations(w io.Writer, schedules []model.Schedule) error {
	bw := bufio.NewWriter(w)
	for _, s := range schedules {
		if _, err := fmt.Fprintln(bw, s.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// PrintRanking prints every schedule grouped by score.
func PrintRanking(w io.Writer, catalog *model.Catalog, ranking scheduler.Ranking) {
	rank := 0
	for _, group := range ranking {
		label := fmt.Sprintf(" score %d ", group.Score)
		fmt.Fprintf(w, "\n%s%s%s\n", strings.Repeat("-", (32-len(label))/2), label, strings.Repeat("-", (33-len(label))/2))
		for _, s := range group.Schedules {
			rank++
			fmt.Fprintf(w, "#%-4d %s\n", rank, s.Schedule)
			sections, _ := catalog.Resolve(s.Schedule)
			for _, sec := range sections {
				fmt.Fprintf(w, "      %-8s %-30s %-12s %s\n", sec.ID, sec.CourseName, sec.Days, joinIntervals(sec.Intervals))
			}
		}
	}
	fmt.Fprintf(w, "Printed schedules: %d\n", rank)
}

func formatRanking(catalog *model.Catalog, ranking scheduler.Ranking) []*model.ScheduleCSVRow {
	formatted := []*model.ScheduleCSVRow{}
	rank := 0
	for _, group := range ranking {
		for _, s := range group.Schedules {
			rank++
			for _, id := range s.Schedule {
				sec, ok := catalog.Section(id)
				if !ok {
					continue
				}
				formatted = append(formatted, &model.ScheduleCSVRow{
					Rank:       rank,
					Score:      s.Score,
					SectionID:  sec.ID,
					CourseName: sec.CourseName,
					Instructor: model.DisplayName(sec.Instructor),
					Room:       sec.Room,
					Days:       sec.Days.String(),
					Hours:      joinIntervals(sec.Intervals),
				})
			}
		}
	}
	return formatted
}

func joinIntervals(ivs []model.Interval) string {
	parts := make([]string, len(ivs))
	for i, iv := range ivs {
		parts[i] = iv.String()
	}
	return strings.Join(parts, " ")
}

// writeFile replaces path with whatever fill writes, creating parent
// directories as needed.
func writeFile(path string, fill func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fill(out); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return out.Close()
}
