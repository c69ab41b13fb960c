package windows

import "strings"

// MatchWindow picks the window for query: an exact title first, then a
// case-insensitive title substring, then the window class.
func MatchWindow(windows []WindowInfo, query string) (WindowInfo, bool) {
	if query == "" {
		return WindowInfo{}, false
	}

	for _, w := range windows {
		if w.Title == query {
			return w, true
		}
	}

	lower := strings.ToLower(query)
	for _, w := range windows {
		if w.Title != "" && strings.Contains(strings.ToLower(w.Title), lower) {
			return w, true
		}
	}

	for _, w := range windows {
		if strings.EqualFold(w.Class, query) {
			return w, true
		}
	}

	return WindowInfo{}, false
}

// Without returns windows minus those owned by pid.
func Without(windows []WindowInfo, pid uint32) []WindowInfo {
	out := make([]WindowInfo, 0, len(windows))
	for _, w := range windows {
		if w.Pid != pid {
			out = append(out, w)
		}
	}
	return out
}
