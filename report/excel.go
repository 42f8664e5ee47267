package report

import (
	"fmt"
	"strings"

	"github.com/nattapol/interview-insights/analysis"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet      = "Summary"
	satisfactionSheet = "Satisfaction"
	samplesSheet      = "Blind Samples"
)

// WriteWorkbook exports one completed analysis as an Excel workbook for
// market-research consumers. Error results are rejected; there is nothing to
// report.
func WriteWorkbook(path, fileID string, result *analysis.Result) error {
	if result.Status != analysis.StatusCompleted {
		return fmt.Errorf("cannot export analysis with status %q", result.Status)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummarySheet(f, fileID, result); err != nil {
		return err
	}
	if err := writeSatisfactionSheet(f, result); err != nil {
		return err
	}
	if err := writeSamplesSheet(f, result); err != nil {
		return err
	}

	// Replace the default sheet with Summary as the landing page.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}
	idx, err := f.GetSheetIndex(summarySheet)
	if err != nil {
		return fmt.Errorf("failed to look up summary sheet: %w", err)
	}
	f.SetActiveSheet(idx)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, fileID string, result *analysis.Result) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	rows := [][]any{
		{"File ID", fileID},
		{"Status", string(result.Status)},
		{"Summary", result.Summary},
	}
	if tc := result.TechnicianClassification; tc != nil {
		rows = append(rows,
			[]any{"Technician type", tc.Type},
			[]any{"Confidence", tc.Confidence},
			[]any{"Keywords", strings.Join(tc.Keywords, ", ")},
		)
	}
	if ma := result.MarketingAnalysis; ma != nil {
		rows = append(rows,
			[]any{"Target segment", ma.TargetSegment},
			[]any{"Key message", ma.KeyMessage},
			[]any{"Pricing feedback", ma.PricingFeedback},
		)
	}
	if ss := result.SecondarySession; ss != nil {
		rows = append(rows,
			[]any{"Secondary session overall", ss.OverallScore},
			[]any{"Secondary session note", ss.Note},
		)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}
	return nil
}

func writeSatisfactionSheet(f *excelize.File, result *analysis.Result) error {
	if _, err := f.NewSheet(satisfactionSheet); err != nil {
		return fmt.Errorf("failed to create satisfaction sheet: %w", err)
	}

	header := []any{"Feature", "Functional", "Dysfunctional", "Category", "Note"}
	if err := f.SetSheetRow(satisfactionSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write satisfaction header: %w", err)
	}

	for i, entry := range result.SatisfactionAnalysis {
		row := []any{
			entry.Feature,
			string(entry.Functional),
			string(entry.Dysfunctional),
			string(entry.Category),
			entry.Note,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(satisfactionSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write satisfaction row: %w", err)
		}
	}
	return nil
}

func writeSamplesSheet(f *excelize.File, result *analysis.Result) error {
	if _, err := f.NewSheet(samplesSheet); err != nil {
		return fmt.Errorf("failed to create samples sheet: %w", err)
	}

	header := []any{
		"Sample", "Adhesion", "Odor", "Color", "Glossiness", "Texture",
		"Spreadability", "Tackiness", "Elasticity", "Drying feel", "Overall", "Note",
	}
	if err := f.SetSheetRow(samplesSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write samples header: %w", err)
	}

	for i, s := range result.BlindSampleScores {
		row := []any{
			s.SampleCode, s.Adhesion, s.Odor, s.Color, s.Glossiness, s.Texture,
			s.Spreadability, s.Tackiness, s.Elasticity, s.DryingFeel, s.Overall, s.Note,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(samplesSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write sample row: %w", err)
		}
	}
	return nil
}
