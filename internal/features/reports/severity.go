package reports

// NetVotes returns upvotes minus downvotes
func NetVotes(upvotes, downvotes int) int {
	return upvotes - downvotes
}

// CalculateSeverity buckets net votes into a severity tier. Thresholds
// are inclusive lower bounds; the highest qualifying tier wins.
//
// This is the single implementation shared by report creation, the vote
// mutation path, and the display fallback for records with a missing
// stored severity.
func CalculateSeverity(upvotes, downvotes int) Severity {
	netVotes := NetVotes(upvotes, downvotes)

	switch {
	case netVotes >= 10:
		return SeverityCritical
	case netVotes >= 5:
		return SeverityHigh
	case netVotes >= 2:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
