package textcmp

// Status describes how a source text relates to a resolved target text.
type Status string

const (
	StatusExact     Status = "exact"
	StatusSimilar   Status = "similar"
	StatusDifferent Status = "different"
	StatusNotFound  Status = "not-found"
)

// Classify compares source and target dialogue text by their normalized
// forms and returns the classification together with the similarity score.
// Exact means byte equality after normalization; Similar means the score
// meets the threshold; everything else is Different. Callers that failed to
// locate a target must use StatusNotFound directly and never call Classify.
func Classify(source, target string, threshold float64) (Status, float64) {
	normSource := Normalize(source)
	normTarget := Normalize(target)
	score := Similarity(normSource, normTarget)
	switch {
	case normSource == normTarget:
		return StatusExact, score
	case score >= threshold:
		return StatusSimilar, score
	default:
		return StatusDifferent, score
	}
}
