package locate

import (
	"strings"

	"github.com/arthur-debert/here/pkg/types"
)

// ParseCandidates splits locate output into candidates. Carriage returns
// are stripped and blank lines dropped; everything else is kept verbatim.
func ParseCandidates(output string) []types.Candidate {
	output = strings.ReplaceAll(output, "\r", "")

	var candidates []types.Candidate
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		candidates = append(candidates, types.Candidate(line))
	}
	return candidates
}
