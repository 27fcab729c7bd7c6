package advice

import (
	"bytes"
	"encoding/json"
	"fmt"

	"healthadvisor/internal/domain"
)

// wireSection defers the recommendation fields so their shape can be
// checked explicitly instead of trusting the service.
type wireSection struct {
	Message     string          `json:"message"`
	Lifestyle   json.RawMessage `json:"lifestyle"`
	Medications json.RawMessage `json:"medications"`
	Types       json.RawMessage `json:"types"`
}

// parseAdvice validates the response body against the advice contract:
// all four sections present, lifestyle and medications arrays of strings
// (possibly empty), and an optional well-formed types array on the Body
// Temperature section. Any deviation is ErrMalformedResponse.
func parseAdvice(body []byte) (*domain.Advice, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	out := &domain.Advice{}
	targets := []struct {
		name string
		dst  *domain.AdviceSection
	}{
		{domain.SectionBloodPressure, &out.BloodPressure},
		{domain.SectionBloodSugar, &out.BloodSugar},
		{domain.SectionBodyTemperature, &out.BodyTemperature},
		{domain.SectionSymptomAnalysis, &out.SymptomAnalysis},
	}

	for _, t := range targets {
		blob, ok := raw[t.name]
		if !ok {
			return nil, fmt.Errorf("%w: missing section %q", domain.ErrMalformedResponse, t.name)
		}
		sec, err := parseSection(t.name, blob)
		if err != nil {
			return nil, err
		}
		*t.dst = sec
	}
	return out, nil
}

func parseSection(name string, blob json.RawMessage) (domain.AdviceSection, error) {
	var ws wireSection
	if err := json.Unmarshal(blob, &ws); err != nil {
		return domain.AdviceSection{}, fmt.Errorf("%w: section %q: %v", domain.ErrMalformedResponse, name, err)
	}

	lifestyle, err := parseStringList(name, "lifestyle", ws.Lifestyle)
	if err != nil {
		return domain.AdviceSection{}, err
	}
	medications, err := parseStringList(name, "medications", ws.Medications)
	if err != nil {
		return domain.AdviceSection{}, err
	}

	sec := domain.AdviceSection{
		Message:     ws.Message,
		Lifestyle:   lifestyle,
		Medications: medications,
	}

	// Only the Body Temperature section carries fever types; a null or
	// absent field means the block is simply omitted from the report.
	if name == domain.SectionBodyTemperature && present(ws.Types) {
		var types []domain.FeverType
		if err := json.Unmarshal(ws.Types, &types); err != nil {
			return domain.AdviceSection{}, fmt.Errorf("%w: section %q: types is not an array", domain.ErrMalformedResponse, name)
		}
		sec.Types = types
	}
	return sec, nil
}

func parseStringList(section, field string, blob json.RawMessage) ([]string, error) {
	if !present(blob) {
		return nil, fmt.Errorf("%w: section %q: %s is not an array", domain.ErrMalformedResponse, section, field)
	}
	var items []string
	if err := json.Unmarshal(blob, &items); err != nil {
		return nil, fmt.Errorf("%w: section %q: %s is not an array", domain.ErrMalformedResponse, section, field)
	}
	if items == nil {
		items = []string{}
	}
	return items, nil
}

func present(blob json.RawMessage) bool {
	return len(blob) > 0 && !bytes.Equal(blob, []byte("null"))
}
