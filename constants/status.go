package constants

// JobStatus is the canonical status for rows in grading_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusDraft      JobStatus = "DRAFT"      // created, nothing enqueued yet
	JobStatusProcessing JobStatus = "PROCESSING" // grading started
	JobStatusCompleted  JobStatus = "COMPLETED"  // every owned submission terminal
)

// JobStatuses holds the allowed values for the grading_jobs.status field.
var JobStatuses = []string{
	string(JobStatusDraft),
	string(JobStatusProcessing),
	string(JobStatusCompleted),
}

// SubmissionStatus is the canonical status for rows in submissions.
type SubmissionStatus string

const (
	SubmissionStatusPending    SubmissionStatus = "PENDING"
	SubmissionStatusProcessing SubmissionStatus = "PROCESSING"
	SubmissionStatusGraded     SubmissionStatus = "GRADED"
	SubmissionStatusFailed     SubmissionStatus = "FAILED"
)

var SubmissionStatuses = []string{
	string(SubmissionStatusPending),
	string(SubmissionStatusProcessing),
	string(SubmissionStatusGraded),
	string(SubmissionStatusFailed),
}

// IsTerminal reports whether no further automatic transition occurs.
func (s SubmissionStatus) IsTerminal() bool {
	return s == SubmissionStatusGraded || s == SubmissionStatusFailed
}

// Eligible reports whether a start action may enqueue this submission.
func (s SubmissionStatus) Eligible() bool {
	return s == SubmissionStatusPending || s == SubmissionStatusFailed
}
