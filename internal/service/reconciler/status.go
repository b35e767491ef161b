package reconciler

import "github.com/heartmarshall/timesheet-relay/internal/domain"

// DeriveStatus maps a total to a work status on the create and update
// paths. It never yields MISSING, even for zero.
func DeriveStatus(total float64) domain.WorkStatus {
	if total >= domain.CompletedHoursThreshold {
		return domain.WorkStatusCompleted
	}
	return domain.WorkStatusIncomplete
}

// StatusAfterDelete is DeriveStatus with an explicit zero check: a
// timesheet emptied by deletion goes back to MISSING.
func StatusAfterDelete(total float64) domain.WorkStatus {
	if total == 0 {
		return domain.WorkStatusMissing
	}
	return DeriveStatus(total)
}
