package generator

import "regexp"

// hardBlockerPatterns match JD requirements the candidate profile cannot
// currently satisfy: mandatory clearance/citizenship and fixed-location or
// fixed-timezone mandates. Detection happens here, not in the model; the
// resulting score cap is enforced post-hoc by the validator.
var hardBlockerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(active|current|mandatory|required?)[^.\n]{0,40}(security\s+clearance|ts/sci|top\s+secret)`),
	regexp.MustCompile(`(?i)(security\s+clearance|ts/sci|top\s+secret)[^.\n]{0,40}(is\s+)?(required|mandatory)`),
	regexp.MustCompile(`(?i)must\s+(be|hold)[^.\n]{0,30}(citizen|citizenship)`),
	regexp.MustCompile(`(?i)citizenship\s+(is\s+)?required`),
	regexp.MustCompile(`(?i)must\s+(be\s+located|reside|work)[^.\n]{0,30}(in|within|from)\s+[^.\n]{0,40}(time\s*zone|timezone)`),
	regexp.MustCompile(`(?i)(time\s*zone|timezone)[^.\n]{0,30}(is\s+)?(required|mandatory)`),
}

// DetectHardBlocker reports whether the scrubbed JD states a requirement
// that forces the capped score and mitigation-first bullet.
func DetectHardBlocker(jdText string) bool {
	for _, pattern := range hardBlockerPatterns {
		if pattern.MatchString(jdText) {
			return true
		}
	}
	return false
}
