package constants

// JobStatus is the canonical status for rows in upload_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued      JobStatus = "queued"      // accepted, waiting for a worker
	JobStatusProcessing  JobStatus = "processing"  // extraction in progress
	JobStatusSuccess     JobStatus = "success"     // terminal: invoice created
	JobStatusDuplicate   JobStatus = "duplicate"   // terminal: content already ingested
	JobStatusError       JobStatus = "error"       // terminal: extraction or persistence failed
	JobStatusQuarantined JobStatus = "quarantined" // terminal: held for manual review
)

// JobStatuses holds every valid status string, for schema validation.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusProcessing),
	string(JobStatusSuccess),
	string(JobStatusDuplicate),
	string(JobStatusError),
	string(JobStatusQuarantined),
}

// IsTerminal reports whether a job in this status can never move again.
func (s JobStatus) IsTerminal() bool {
	switch s {
	case JobStatusSuccess, JobStatusDuplicate, JobStatusError, JobStatusQuarantined:
		return true
	}
	return false
}
