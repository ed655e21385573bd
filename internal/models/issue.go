package models

// IssueFields holds the values typed into the create issue dialog
type IssueFields struct {
	Project     string `json:"project"`
	Summary     string `json:"summary"`
	IssueType   string `json:"issue_type"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// Defaults used when the caller leaves a field empty
const (
	DefaultIssueType = "Bug"
	DefaultPriority  = "Low"
)

// WithDefaults fills IssueType and Priority when they are empty
func (f IssueFields) WithDefaults() IssueFields {
	if f.IssueType == "" {
		f.IssueType = DefaultIssueType
	}
	if f.Priority == "" {
		f.Priority = DefaultPriority
	}
	return f
}

// IssueUpdate is a partial edit; nil fields leave the form field untouched
type IssueUpdate struct {
	Summary     *string `json:"summary,omitempty"`
	IssueType   *string `json:"issue_type,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Description *string `json:"description,omitempty"`
}

// IsEmpty reports whether the update changes nothing
func (u IssueUpdate) IsEmpty() bool {
	return u.Summary == nil && u.IssueType == nil && u.Priority == nil && u.Description == nil
}

// IssueRow is the data shown for one issue in the search result list
type IssueRow struct {
	Key     string `json:"key"`
	Summary string `json:"summary"`
	URL     string `json:"url"`
}
