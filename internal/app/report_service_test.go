package app_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"healthadvisor/internal/app"
	"healthadvisor/internal/domain"
)

func sampleAdvice() *domain.Advice {
	return &domain.Advice{
		BloodPressure: domain.AdviceSection{
			Message:     "Slightly elevated",
			Lifestyle:   []string{"Reduce salt", "Exercise daily"},
			Medications: []string{"Lisinopril"},
		},
		BloodSugar: domain.AdviceSection{
			Message:     "Normal",
			Lifestyle:   []string{},
			Medications: []string{},
		},
		BodyTemperature: domain.AdviceSection{
			Message:     "Mild fever",
			Lifestyle:   []string{"Rest", "Hydrate"},
			Medications: []string{"Paracetamol"},
			Types: []domain.FeverType{
				{Type: "Low-grade", Description: "38.1 to 39C", CommonSymptoms: []string{"fatigue", "chills"}},
			},
		},
		SymptomAnalysis: domain.AdviceSection{
			Message:     "Cough",
			Medications: []string{"Lozenges"},
		},
	}
}

func TestRender_Order(t *testing.T) {
	svc := app.NewReportService()
	report := svc.Render(sampleAdvice())

	require.Equal(t, "Health Analysis", report.Title)

	// Three vital sections of four blocks each, one fever block, then the
	// symptom analysis heading and its medications list.
	require.Len(t, report.Blocks, 15)

	headings := []string{}
	for _, b := range report.Blocks {
		if b.Kind == domain.BlockHeading {
			headings = append(headings, b.Label)
		}
	}
	require.Equal(t, []string{
		"Blood Pressure", "Blood Sugar", "Body Temperature", "Symptom Analysis",
	}, headings)

	// Blood Pressure section layout.
	require.Equal(t, domain.BlockHeading, report.Blocks[0].Kind)
	require.Equal(t, domain.BlockText, report.Blocks[1].Kind)
	require.Equal(t, "Slightly elevated", report.Blocks[1].Text)
	require.Equal(t, domain.BlockList, report.Blocks[2].Kind)
	require.Equal(t, "Lifestyle Changes", report.Blocks[2].Label)
	require.Equal(t, []string{"Reduce salt", "Exercise daily"}, report.Blocks[2].Items)
	require.Equal(t, "Medications", report.Blocks[3].Label)
	require.Equal(t, []string{"Lisinopril"}, report.Blocks[3].Items)
}

func TestRender_Deterministic(t *testing.T) {
	svc := app.NewReportService()
	advice := sampleAdvice()
	require.Equal(t, svc.Render(advice), svc.Render(advice))
}

func TestRender_EmptyListFallback(t *testing.T) {
	svc := app.NewReportService()
	report := svc.Render(sampleAdvice())

	// Blood Sugar has empty lifestyle and medications lists; both render a
	// single literal "None" entry.
	require.Equal(t, "Blood Sugar", report.Blocks[4].Label)
	require.Equal(t, []string{"None"}, report.Blocks[6].Items)
	require.Equal(t, []string{"None"}, report.Blocks[7].Items)
}

func TestRender_FeverBlock(t *testing.T) {
	svc := app.NewReportService()
	report := svc.Render(sampleAdvice())

	// The fever block follows the Body Temperature medications list and
	// carries the comma-joined symptoms.
	fever := report.Blocks[12]
	require.Equal(t, domain.BlockFever, fever.Kind)
	require.Equal(t, "Low-grade", fever.Label)
	require.Equal(t, "38.1 to 39C", fever.Text)
	require.Equal(t, []string{"fatigue, chills"}, fever.Items)
}

func TestRender_NoFeverTypes(t *testing.T) {
	svc := app.NewReportService()
	advice := sampleAdvice()
	advice.BodyTemperature.Types = nil

	report := svc.Render(advice)
	for _, b := range report.Blocks {
		require.NotEqual(t, domain.BlockFever, b.Kind)
	}
	require.Len(t, report.Blocks, 14)
}

func TestRender_SymptomAnalysisMedicationsOnly(t *testing.T) {
	svc := app.NewReportService()
	report := svc.Render(sampleAdvice())

	// Symptom Analysis renders no message or lifestyle list.
	last := report.Blocks[len(report.Blocks)-2:]
	require.Equal(t, domain.BlockHeading, last[0].Kind)
	require.Equal(t, "Symptom Analysis", last[0].Label)
	require.Equal(t, domain.BlockList, last[1].Kind)
	require.Equal(t, "Medications", last[1].Label)
	require.Equal(t, []string{"Lozenges"}, last[1].Items)
}

func TestRender_AllEmptyLists(t *testing.T) {
	svc := app.NewReportService()
	advice := &domain.Advice{
		BloodPressure:   domain.AdviceSection{Message: "ok", Lifestyle: []string{}, Medications: []string{}},
		BloodSugar:      domain.AdviceSection{Message: "ok", Lifestyle: []string{}, Medications: []string{}},
		BodyTemperature: domain.AdviceSection{Message: "ok", Lifestyle: []string{}, Medications: []string{}},
		SymptomAnalysis: domain.AdviceSection{Message: "ok", Medications: []string{}},
	}

	report := svc.Render(advice)
	lists := 0
	for _, b := range report.Blocks {
		if b.Kind == domain.BlockList {
			lists++
			require.Equal(t, []string{"None"}, b.Items)
		}
		require.NotEqual(t, domain.BlockFever, b.Kind)
	}
	require.Equal(t, 7, lists)
}
