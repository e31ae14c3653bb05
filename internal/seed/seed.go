// Package seed holds the business plan installed on first start.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"emoped-plan-backend/internal/models"
)

//go:embed business_plan.yaml
var businessPlanYAML []byte

// BusinessPlan decodes the embedded plan. Each call returns a fresh value.
func BusinessPlan() (models.PlanContent, error) {
	return Decode(businessPlanYAML)
}

// Decode parses a plan document. Unknown keys are rejected.
func Decode(data []byte) (models.PlanContent, error) {
	var content models.PlanContent

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&content); err != nil {
		return models.PlanContent{}, fmt.Errorf("failed to decode seed plan: %w", err)
	}
	return content, nil
}
