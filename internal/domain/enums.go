package domain

// RenewableStatus is the lifecycle state of a renewable item.
type RenewableStatus string

const (
	RenewableStatusActive    RenewableStatus = "active"
	RenewableStatusRenewed   RenewableStatus = "renewed"
	RenewableStatusExpired   RenewableStatus = "expired"
	RenewableStatusCancelled RenewableStatus = "cancelled"
)

func (s RenewableStatus) String() string { return string(s) }

func (s RenewableStatus) IsValid() bool {
	switch s {
	case RenewableStatusActive, RenewableStatusRenewed, RenewableStatusExpired, RenewableStatusCancelled:
		return true
	}
	return false
}

// UserRole determines what an office user may do.
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleStaff UserRole = "staff"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleStaff:
		return true
	}
	return false
}

// Urgency classifies how close a renewable is to expiry in reminder messages.
type Urgency string

const (
	UrgencyUrgent    Urgency = "urgent"
	UrgencyImportant Urgency = "important"
	UrgencyNotice    Urgency = "notice"
)

func (u Urgency) String() string { return string(u) }

// ClassifyUrgency maps the number of days left to an urgency level:
// up to 7 days is urgent, up to 14 is important, anything later is a notice.
func ClassifyUrgency(daysLeft int) Urgency {
	switch {
	case daysLeft <= 7:
		return UrgencyUrgent
	case daysLeft <= 14:
		return UrgencyImportant
	default:
		return UrgencyNotice
	}
}
