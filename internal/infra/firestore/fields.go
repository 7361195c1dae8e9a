package firestore

// Document field access is deliberately lenient: the client app owns these
// collections and an absent or malformed field must read as empty, not fail
// the trigger.

func stringField(data map[string]any, key string) string {
	if s, ok := data[key].(string); ok {
		return s
	}

	return ""
}

// stringSliceField decodes a list field, skipping non-string elements and
// collapsing duplicates while preserving first-seen order.
func stringSliceField(data map[string]any, key string) []string {
	raw, ok := data[key].([]any)
	if !ok {
		return nil
	}

	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok || s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	return out
}
