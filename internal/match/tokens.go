package match

import "strings"

// Canonicalization turns free text into comparable tokens: split, trim,
// casefold, drop empties, de-dupe keeping first-occurrence order. All
// functions here are pure; identical input always yields identical output.

func canonTokens(parts []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.ToLower(strings.TrimSpace(p))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// SkillTokens canonicalizes a comma-separated skill string ("Go, SQL ,go")
// into ordered unique tokens ("go", "sql").
func SkillTokens(s string) []string {
	return canonTokens(strings.Split(s, ","))
}

// TitleWords canonicalizes a title phrase into its unique word set,
// splitting on whitespace.
func TitleWords(s string) []string {
	return canonTokens(strings.Fields(s))
}

// CanonPhrases canonicalizes a list of free-text phrases, each phrase
// staying one token.
func CanonPhrases(phrases []string) []string {
	return canonTokens(phrases)
}
