package cms_dto

// Filter is one predicate of a row query. Cond is one of the store's filter
// condition names (gte, lte); Value is compared textually by the store.
type Filter struct {
	Name  string `json:"name"`
	Cond  string `json:"cond"`
	Value string `json:"value"`
}

type Query struct {
	Filters []Filter `json:"filters,omitempty"`
}

type QueryResult struct {
	Total int   `json:"total"`
	Items []Row `json:"items"`
}

// RecurrenceRuleDTO is the wire shape of a staffSchedule row's recurrenceRule
// object field.
type RecurrenceRuleDTO struct {
	Frequency string   `json:"frequency"`
	Interval  int      `json:"interval"`
	Days      []string `json:"days"`
}

// ImportRequest is the body of a row import; the store appends the row and
// assigns its id.
type ImportRequest struct {
	Fields map[string]Field `json:"fields"`
}
