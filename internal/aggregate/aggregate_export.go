package aggregate

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{
	"Date", "Weekday", "Status", "Check-in", "Check-out", "Regular hours", "Overtime hours", "Total hours", "Note",
}

// buildMonthlyWorkbook renders one sheet with a row per calendar day and a
// summary block under it.
func buildMonthlyWorkbook(stats MonthlyStats, year int, month time.Month, now time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := stats.Month
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "B", 11)
	f.SetColWidth(sheet, "C", "C", 8)
	f.SetColWidth(sheet, "D", "E", 10)
	f.SetColWidth(sheet, "F", "H", 15)
	f.SetColWidth(sheet, "I", "I", 32)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Attendance %s", stats.Month))
	f.MergeCell(sheet, "A1", cell(colName(len(exportHeaders)-1), 1))
	f.SetCellStyle(sheet, "A1", "A1", headerStyle)

	for i, h := range exportHeaders {
		f.SetCellValue(sheet, cell(colName(i), 2), h)
	}
	f.SetCellStyle(sheet, "A2", cell(colName(len(exportHeaders)-1), 2), headerStyle)

	byDate := make(map[string]DayStatusDetail, len(stats.Days))
	for _, d := range stats.Days {
		byDate[d.Date] = d
	}

	today := now.Format(DateLayout)
	row := 3
	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	for day := first; day.Month() == month; day = day.AddDate(0, 0, 1) {
		date := day.Format(DateLayout)
		f.SetCellValue(sheet, cell("A", row), date)
		f.SetCellValue(sheet, cell("B", row), day.Weekday().String())

		d, ok := byDate[date]
		switch {
		case ok:
			f.SetCellValue(sheet, cell("C", row), string(d.Status))
			f.SetCellValue(sheet, cell("D", row), clockOf(d.CheckInTime, now.Location()))
			f.SetCellValue(sheet, cell("E", row), clockOf(d.CheckOutTime, now.Location()))
			f.SetCellValue(sheet, cell("F", row), d.RegularHours)
			f.SetCellValue(sheet, cell("G", row), d.OvertimeHours)
			if d.TotalHours != nil {
				f.SetCellValue(sheet, cell("H", row), *d.TotalHours)
			}
			f.SetCellValue(sheet, cell("I", row), d.Note)
		case date > today:
			f.SetCellValue(sheet, cell("C", row), string(CodeFuture))
		default:
			f.SetCellValue(sheet, cell("C", row), string(CodeNoData))
		}
		row++
	}

	row++
	summary := []struct {
		label string
		value any
	}{
		{"Full days", stats.Tally.DaysFullWork},
		{"Irregular days", stats.Tally.DaysRV},
		{"Incomplete days", stats.Tally.DaysIncomplete},
		{"Leave days", stats.Tally.DaysLeave},
		{"Sick days", stats.Tally.DaysSick},
		{"Holidays", stats.Tally.DaysHoliday},
		{"Absences", stats.Tally.DaysAbsent},
		{"Regular hours", stats.Tally.RegularHours},
		{"Overtime hours", stats.Tally.OvertimeHours},
	}
	for _, s := range summary {
		f.SetCellValue(sheet, cell("A", row), s.label)
		f.SetCellValue(sheet, cell("C", row), s.value)
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func clockOf(t *time.Time, loc *time.Location) string {
	if t == nil {
		return ""
	}
	return t.In(loc).Format("15:04")
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
