package constants

// DuplicateMode tells the commit engine what to do with a row whose unique
// key matches an already-persisted invoice.
type DuplicateMode string

const (
	DuplicateSkip      DuplicateMode = "skip"      // leave the existing record alone
	DuplicateUpdate    DuplicateMode = "update"    // overwrite the existing record
	DuplicateDuplicate DuplicateMode = "duplicate" // insert the row as an independent record
)

// ParseDuplicateMode validates a caller-supplied mode, defaulting to skip.
func ParseDuplicateMode(s string) (DuplicateMode, bool) {
	switch DuplicateMode(s) {
	case DuplicateSkip, DuplicateUpdate, DuplicateDuplicate:
		return DuplicateMode(s), true
	case "":
		return DuplicateSkip, true
	}
	return "", false
}

// BackupReason records why a snapshot was taken.
type BackupReason string

const (
	BackupScheduled BackupReason = "scheduled"
	BackupPreImport BackupReason = "pre-import"
	BackupManual    BackupReason = "manual"
)
