package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WorkStatus is the aggregate state of a timesheet derived from its total hours.
type WorkStatus string

const (
	WorkStatusMissing    WorkStatus = "MISSING"
	WorkStatusIncomplete WorkStatus = "INCOMPLETE"
	WorkStatusCompleted  WorkStatus = "COMPLETED"
	WorkStatusSubmitted  WorkStatus = "SUBMITTED"
)

func (s WorkStatus) String() string { return string(s) }

func (s WorkStatus) IsValid() bool {
	switch s {
	case WorkStatusMissing, WorkStatusIncomplete, WorkStatusCompleted, WorkStatusSubmitted:
		return true
	}
	return false
}

// Label returns the human-readable status name. Unknown values are returned as is.
func (s WorkStatus) Label() string {
	switch s {
	case WorkStatusCompleted:
		return "Completed"
	case WorkStatusIncomplete:
		return "Incomplete"
	case WorkStatusMissing:
		return "Missing"
	case WorkStatusSubmitted:
		return "Submitted"
	}
	return string(s)
}

// WorkType categorizes a logged task.
type WorkType string

const (
	WorkTypeFeatureDevelopment WorkType = "FEATURE_DEVELOPMENT"
	WorkTypeBugFix             WorkType = "BUG_FIX"
	WorkTypeOptimization       WorkType = "OPTIMIZATION"
	WorkTypeMeeting            WorkType = "MEETING"
	WorkTypeCodeReview         WorkType = "CODE_REVIEW"
	WorkTypeDocumentation      WorkType = "DOCUMENTATION"
	WorkTypeTesting            WorkType = "TESTING"
)

func (t WorkType) String() string { return string(t) }

func (t WorkType) IsValid() bool {
	switch t {
	case WorkTypeFeatureDevelopment, WorkTypeBugFix, WorkTypeOptimization, WorkTypeMeeting,
		WorkTypeCodeReview, WorkTypeDocumentation, WorkTypeTesting:
		return true
	}
	return false
}

// Label turns BUG_FIX into "Bug Fix".
func (t WorkType) Label() string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(t), "_", " "))
}
