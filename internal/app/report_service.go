package app

import (
	"strings"

	"healthadvisor/internal/domain"
)

// fallbackEntry is rendered in place of an empty lifestyle or medications
// list. The page always shows a list body, never an empty section.
const fallbackEntry = "None"

// Labels used for report headings and lists.
const (
	reportTitle    = "Health Analysis"
	labelLifestyle = "Lifestyle Changes"
	labelMeds      = "Medications"
)

// ReportService turns a validated Advice into an ordered display document.
// Rendering is pure: the same Advice always yields the same Report.
type ReportService struct{}

// NewReportService creates a ReportService.
func NewReportService() *ReportService {
	return &ReportService{}
}

// Render produces the report blocks in fixed order: for each vital section
// a heading, the message, the lifestyle list and the medications list;
// fever type blocks after Body Temperature when present; and finally the
// Symptom Analysis medications list. Symptom Analysis renders no message
// or lifestyle list.
func (s *ReportService) Render(advice *domain.Advice) domain.Report {
	blocks := make([]domain.Block, 0, 16)

	blocks = appendVitalSection(blocks, domain.SectionBloodPressure, advice.BloodPressure)
	blocks = appendVitalSection(blocks, domain.SectionBloodSugar, advice.BloodSugar)
	blocks = appendVitalSection(blocks, domain.SectionBodyTemperature, advice.BodyTemperature)

	for _, t := range advice.BodyTemperature.Types {
		blocks = append(blocks, domain.Block{
			Kind:  domain.BlockFever,
			Label: t.Type,
			Text:  t.Description,
			Items: []string{strings.Join(t.CommonSymptoms, ", ")},
		})
	}

	blocks = append(blocks,
		domain.Block{Kind: domain.BlockHeading, Label: domain.SectionSymptomAnalysis},
		listBlock(labelMeds, advice.SymptomAnalysis.Medications),
	)

	return domain.Report{Title: reportTitle, Blocks: blocks}
}

func appendVitalSection(blocks []domain.Block, name string, sec domain.AdviceSection) []domain.Block {
	return append(blocks,
		domain.Block{Kind: domain.BlockHeading, Label: name},
		domain.Block{Kind: domain.BlockText, Label: name, Text: sec.Message},
		listBlock(labelLifestyle, sec.Lifestyle),
		listBlock(labelMeds, sec.Medications),
	)
}

func listBlock(label string, items []string) domain.Block {
	if len(items) == 0 {
		items = []string{fallbackEntry}
	} else {
		items = append([]string(nil), items...)
	}
	return domain.Block{Kind: domain.BlockList, Label: label, Items: items}
}
