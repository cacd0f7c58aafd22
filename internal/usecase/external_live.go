package usecase

// Live statistics documents arrive from the stats provider as loosely
// shaped JSON. The types below keep the raw maps and expose typed
// accessors so missing or re-shaped fields degrade to zero values
// instead of failing a whole team view.

// ExternalStats is a team's per-season statistics document grouped
// into categories such as offensive and defensive.
type ExternalStats struct {
	raw map[string]any
}

// NewExternalStats wraps a decoded statistics document.
func NewExternalStats(raw map[string]any) ExternalStats {
	return ExternalStats{raw: raw}
}

func (s ExternalStats) IsZero() bool {
	return len(s.raw) == 0
}

// Raw returns the underlying document for serialization.
func (s ExternalStats) Raw() map[string]any {
	return s.raw
}

// Categories lists the stat categories in document order.
func (s ExternalStats) Categories() []StatCategory {
	splits, ok := s.raw["splits"].(map[string]any)
	if !ok {
		return nil
	}
	items := asList(splits["categories"])
	out := make([]StatCategory, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, StatCategory(m))
		}
	}
	return out
}

// Category finds a category by name, e.g. "offensive".
func (s ExternalStats) Category(name string) (StatCategory, bool) {
	for _, c := range s.Categories() {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

type StatCategory map[string]any

func (c StatCategory) Name() string        { return getString(c, "name") }
func (c StatCategory) DisplayName() string { return getString(c, "displayName") }

func (c StatCategory) Stats() []StatLine {
	items := asList(c["stats"])
	out := make([]StatLine, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, StatLine(m))
		}
	}
	return out
}

func (c StatCategory) Stat(name string) (StatLine, bool) {
	for _, s := range c.Stats() {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

// StatLine is one named statistic inside a category or record item.
type StatLine map[string]any

func (s StatLine) Name() string         { return getString(s, "name") }
func (s StatLine) DisplayValue() string { return getString(s, "displayValue") }

func (s StatLine) Value() (float64, bool) {
	return getFloat(s, "value")
}

func (s StatLine) Rank() (int, bool) {
	if v, ok := getFloat(s, "rank"); ok {
		return int(v), true
	}
	return 0, false
}

// ExternalRecord is a team's win/loss record document, split into
// items such as "overall", "home", and "road".
type ExternalRecord struct {
	raw map[string]any
}

// NewExternalRecord wraps a decoded record document.
func NewExternalRecord(raw map[string]any) ExternalRecord {
	return ExternalRecord{raw: raw}
}

func (r ExternalRecord) IsZero() bool {
	return len(r.raw) == 0
}

func (r ExternalRecord) Raw() map[string]any {
	return r.raw
}

func (r ExternalRecord) Items() []RecordItem {
	items := asList(r.raw["items"])
	out := make([]RecordItem, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, RecordItem(m))
		}
	}
	return out
}

// Item finds a record split by name, e.g. "overall".
func (r ExternalRecord) Item(name string) (RecordItem, bool) {
	for _, item := range r.Items() {
		if item.Name() == name {
			return item, true
		}
	}
	return nil, false
}

type RecordItem map[string]any

func (i RecordItem) Name() string         { return getString(i, "name") }
func (i RecordItem) Summary() string      { return getString(i, "summary") }
func (i RecordItem) DisplayValue() string { return getString(i, "displayValue") }

func (i RecordItem) Stats() []StatLine {
	items := asList(i["stats"])
	out := make([]StatLine, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, StatLine(m))
		}
	}
	return out
}

func (i RecordItem) Stat(name string) (StatLine, bool) {
	for _, s := range i.Stats() {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

func getString(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func getFloat(m map[string]any, key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	switch v := m[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func asList(v any) []any {
	list, _ := v.([]any)
	return list
}
