package engine

import (
	"sort"
	"strings"
)

const maxCandidates = 5

type DiseaseCandidate struct {
	Disease        string         `json:"disease"`
	Probability    float64        `json:"probability"`
	Recommendation Recommendation `json:"recommendation"`
}

type DiseasePrediction struct {
	Candidates []DiseaseCandidate `json:"possible_diseases"`
	Primary    Recommendation     `json:"primary_recommendation"`
}

var fallbackPrediction = DiseaseCandidate{
	Disease:        "General Consultation Recommended",
	Probability:    50.0,
	Recommendation: Consult,
}

// PredictDisease merges the candidate lists of every recognized symptom,
// keeping the highest probability per disease, and returns the top five.
// Unrecognized symptoms are ignored.
func PredictDisease(symptoms []string) DiseasePrediction {
	var candidates []DiseaseCandidate
	index := make(map[string]int)

	for _, s := range symptoms {
		rules, ok := symptomTable[strings.ToLower(strings.TrimSpace(s))]
		if !ok {
			continue
		}
		for _, r := range rules {
			i, seen := index[r.disease]
			if !seen {
				index[r.disease] = len(candidates)
				candidates = append(candidates, DiseaseCandidate{
					Disease:        r.disease,
					Probability:    r.probability,
					Recommendation: r.recommendation,
				})
				continue
			}
			if candidates[i].Probability < r.probability {
				candidates[i].Probability = r.probability
				candidates[i].Recommendation = r.recommendation
			}
		}
	}

	if len(candidates) == 0 {
		return DiseasePrediction{
			Candidates: []DiseaseCandidate{fallbackPrediction},
			Primary:    Consult,
		}
	}

	// Ties keep first-insertion order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Probability > candidates[j].Probability
	})
	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}

	return DiseasePrediction{Candidates: candidates, Primary: primaryRecommendation(candidates)}
}

// primaryRecommendation picks the most urgent recommendation: Emergency > Consult > Monitor.
func primaryRecommendation(candidates []DiseaseCandidate) Recommendation {
	primary := Monitor
	for _, c := range candidates {
		if urgency[c.Recommendation] > urgency[primary] {
			primary = c.Recommendation
		}
	}
	return primary
}
