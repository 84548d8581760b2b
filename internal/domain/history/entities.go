package history

import "time"

type Status string

const (
	StatusApplied  Status = "Applied"
	StatusApproved Status = "Approved"
	StatusDenied   Status = "Denied"
	StatusRepaid   Status = "Repaid"
)

// Entry is an append-only audit record of a status transition. Rows are
// never updated or deleted; the repository deliberately exposes no way to.
type Entry struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	UserID        uint64 `gorm:"column:user_id;not null;index:idx_loan_history_user" json:"-"`
	ApplicationID uint64 `gorm:"column:application_id;not null;index:idx_loan_history_application" json:"-"`

	Status     Status    `gorm:"column:status;type:enum('Applied','Approved','Denied','Repaid')" json:"status"`
	Note       string    `gorm:"column:note;type:text" json:"note"`
	ActionDate time.Time `gorm:"column:action_date;autoCreateTime" json:"action_date"`
}

func (Entry) TableName() string { return "loan_history" }
