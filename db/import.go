package db

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"coursetrack/models"
)

// cell layouts accepted for the due date column, besides Excel serial numbers
var importDateLayouts = []string{
	models.DueDateLayout,
	"2006/01/02",
	"01-02-06",
	"1/2/06",
	"1/2/2006",
}

// --- Excel Import ---

// ImportTasksFromExcel reads the first sheet of a workbook and appends one
// pending task per row to the given course. Row 1 is a header; column A is
// the title and column B the due date. Rows without a title are skipped.
func (s *Store) ImportTasksFromExcel(ctx context.Context, file io.Reader, courseID int) (int, error) {
	if courseID <= 0 {
		return 0, ErrCourseRequired
	}

	f, err := excelize.OpenReader(file)
	if err != nil {
		log.Printf("Error opening Excel reader: %v", err)
		return 0, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Error closing excel file: %v", err)
		}
	}()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return 0, errors.New("excel file does not contain any sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		log.Printf("Error getting rows from sheet '%s': %v", sheetName, err)
		return 0, fmt.Errorf("failed to get rows from sheet %s: %w", sheetName, err)
	}

	type row struct{ title, due string }
	var pending []row
	for i, cols := range rows {
		if i == 0 {
			continue // header
		}
		var title, due string
		if len(cols) > 0 {
			title = strings.TrimSpace(cols[0])
		}
		if len(cols) > 1 {
			due = normalizeImportDate(cols[1])
		}
		if title == "" {
			log.Printf("Skipping row %d due to missing title", i+1)
			continue
		}
		pending = append(pending, row{title: title, due: due})
	}
	if len(pending) == 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.GetTasks(ctx)
	if err != nil {
		return 0, err
	}
	next := nextTaskID(tasks)
	for _, r := range pending {
		tasks = append(tasks, models.Task{
			ID:       next,
			Title:    r.title,
			CourseID: courseID,
			DueDate:  r.due,
			Status:   models.StatusPending,
		})
		next++
	}
	if err := s.SaveTasks(ctx, tasks); err != nil {
		return 0, err
	}

	log.Printf("Successfully imported %d tasks into course %d", len(pending), courseID)
	return len(pending), nil
}

func normalizeImportDate(cell string) string {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return ""
	}
	for _, layout := range importDateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return t.Format(models.DueDateLayout)
		}
	}
	if serial, err := strconv.ParseFloat(cell, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t.Format(models.DueDateLayout)
		}
	}
	return cell
}
