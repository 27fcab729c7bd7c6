package domain

import (
	"context"
	"errors"
)

var (
	// ErrUnreachable indicates that the analysis call could not be completed
	// at all.
	ErrUnreachable = errors.New("analysis service unreachable")
	// ErrServerError indicates that the analysis service reported a
	// non-success status.
	ErrServerError = errors.New("analysis service error")
	// ErrMalformedResponse indicates that the analysis response body does
	// not match the expected advice shape.
	ErrMalformedResponse = errors.New("malformed analysis response")
)

// Literal section keys used by the analysis service response.
const (
	SectionBloodPressure   = "Blood Pressure"
	SectionBloodSugar      = "Blood Sugar"
	SectionBodyTemperature = "Body Temperature"
	SectionSymptomAnalysis = "Symptom Analysis"
)

// Advice is the validated four-section analysis returned by the remote
// service. A value of this type only exists once all four sections have
// been checked for presence and shape.
type Advice struct {
	BloodPressure   AdviceSection
	BloodSugar      AdviceSection
	BodyTemperature AdviceSection
	SymptomAnalysis AdviceSection
}

// AdviceSection holds one section's message and recommendation lists.
// Types is populated only for the Body Temperature section, and only when
// the service included it.
type AdviceSection struct {
	Message     string
	Lifestyle   []string
	Medications []string
	Types       []FeverType
}

// FeverType describes one fever classification within the Body Temperature
// section.
type FeverType struct {
	Type           string   `json:"type"`
	Description    string   `json:"description"`
	CommonSymptoms []string `json:"common_symptoms"`
}

// AdviceClient is the port to the remote health-analysis service.
type AdviceClient interface {
	Analyze(ctx context.Context, data HealthData) (*Advice, error)
	CheckReachable(ctx context.Context) bool
}
