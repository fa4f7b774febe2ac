package services

import "stresscheck/models"

const (
	severeThreshold   = 70
	moderateThreshold = 45
)

// Classify maps a fused score to its severity, checking the highest band first.
func Classify(score int) models.Severity {
	switch {
	case score >= severeThreshold:
		return models.SeveritySevere
	case score >= moderateThreshold:
		return models.SeverityModerate
	default:
		return models.SeverityMild
	}
}
