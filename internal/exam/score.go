package exam

import "math"

// Tier display names, indexed by tier 1..4.
var tierNames = map[int]string{
	1: "Lvl 1 - Associate PM (APM)",
	2: "Lvl 2 - Product Manager (PM)",
	3: "Lvl 3 - Senior PM",
	4: "Lvl 4 - Product Director",
}

// EntryLabel is the label below the lowest qualifying threshold.
const EntryLabel = "Entry Learner"

// tierThresholds maps minimum overall percent to a tier label, ordered
// from highest to lowest. First match wins, so reordering the checks
// cannot change the result.
var tierThresholds = []struct {
	MinPercent int
	Label      string
}{
	{90, tierNames[4]},
	{75, tierNames[3]},
	{50, tierNames[2]},
	{30, tierNames[1]},
}

// TierName returns the display name for a difficulty tier.
func TierName(tier int) string {
	if name, ok := tierNames[tier]; ok {
		return name
	}
	return EntryLabel
}

// ScoreResult is the outcome of a finalized run.
type ScoreResult struct {
	OverallPercent int
	PerTierPercent [TierCount]int // index 0 is tier 1
	CorrectCount   int
	TierLabel      string
}

// score tallies a completed answer sheet against the bank.
// Unanswered questions (index -1) count as incorrect.
func score(bank []Question, answers []int) ScoreResult {
	var res ScoreResult
	var correctInTier [TierCount]int
	var totalInTier [TierCount]int

	for i, q := range bank {
		totalInTier[q.Tier-1]++
		if answers[i] == q.CorrectIdx {
			res.CorrectCount++
			correctInTier[q.Tier-1]++
		}
	}

	res.OverallPercent = roundPercent(res.CorrectCount, len(bank))
	for t := 0; t < TierCount; t++ {
		res.PerTierPercent[t] = roundPercent(correctInTier[t], totalInTier[t])
	}
	res.TierLabel = labelFor(res.OverallPercent)
	return res
}

// labelFor picks the highest qualifying tier label for a score.
func labelFor(overallPercent int) string {
	for _, th := range tierThresholds {
		if overallPercent >= th.MinPercent {
			return th.Label
		}
	}
	return EntryLabel
}

func roundPercent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(whole)))
}
