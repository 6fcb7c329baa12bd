package model

import "fmt"

// Enumerated domain states and their persisted codecs. Encoding is total;
// decoding of an unrecognized persisted value falls back to a designated
// default variant, except for StatisticPreset where no safe default exists
// and decoding fails instead. The fallback choices are deliberate and
// differ per entity; do not unify them.

// UserGroup is persisted as a narrow integer.
type UserGroup int

const (
	UserGroupCustomer UserGroup = iota
	UserGroupBarista
	UserGroupManager
	UserGroupBoard
)

func (g UserGroup) String() string {
	switch g {
	case UserGroupCustomer:
		return "Customer"
	case UserGroupBarista:
		return "Barista"
	case UserGroupManager:
		return "Manager"
	case UserGroupBoard:
		return "Board"
	default:
		return fmt.Sprintf("UserGroup(%d)", int(g))
	}
}

func (g UserGroup) Valid() bool {
	return g >= UserGroupCustomer && g <= UserGroupBoard
}

// UserGroupFromInt decodes the persisted integer; unknown values fall
// back to Customer.
func UserGroupFromInt(v int) UserGroup {
	g := UserGroup(v)
	if !g.Valid() {
		return UserGroupCustomer
	}
	return g
}

// UserState is persisted as its canonical string name.
type UserState string

const (
	UserStatePendingActivation UserState = "PendingActivation"
	UserStateActive            UserState = "Active"
	UserStateDeleted           UserState = "Deleted"
)

func (s UserState) String() string { return string(s) }

func (s UserState) Valid() bool {
	switch s {
	case UserStatePendingActivation, UserStateActive, UserStateDeleted:
		return true
	}
	return false
}

// UserStateFromString decodes the persisted name; unknown values fall
// back to PendingActivation.
func UserStateFromString(s string) UserState {
	switch s {
	case "Deleted":
		return UserStateDeleted
	case "Active":
		return UserStateActive
	default:
		return UserStatePendingActivation
	}
}

// TicketStatus is persisted as a narrow integer.
type TicketStatus int

const (
	TicketStatusUnused TicketStatus = iota
	TicketStatusUsed
	TicketStatusRefunded
)

func (s TicketStatus) String() string {
	switch s {
	case TicketStatusUnused:
		return "Unused"
	case TicketStatusUsed:
		return "Used"
	case TicketStatusRefunded:
		return "Refunded"
	default:
		return fmt.Sprintf("TicketStatus(%d)", int(s))
	}
}

func (s TicketStatus) Valid() bool {
	return s >= TicketStatusUnused && s <= TicketStatusRefunded
}

// TicketStatusFromInt decodes the persisted integer; unknown values fall
// back to Unused.
func TicketStatusFromInt(v int) TicketStatus {
	s := TicketStatus(v)
	if !s.Valid() {
		return TicketStatusUnused
	}
	return s
}

// PurchaseStatus is persisted as its canonical string name. It is the
// source of truth for whether a purchase's tickets are redeemable.
type PurchaseStatus string

const (
	PurchaseStatusPendingPayment PurchaseStatus = "PendingPayment"
	PurchaseStatusCompleted      PurchaseStatus = "Completed"
	PurchaseStatusCancelled      PurchaseStatus = "Cancelled"
	PurchaseStatusExpired        PurchaseStatus = "Expired"
	PurchaseStatusRefunded       PurchaseStatus = "Refunded"
)

func (s PurchaseStatus) String() string { return string(s) }

func (s PurchaseStatus) Valid() bool {
	switch s {
	case PurchaseStatusPendingPayment, PurchaseStatusCompleted,
		PurchaseStatusCancelled, PurchaseStatusExpired, PurchaseStatusRefunded:
		return true
	}
	return false
}

// PurchaseStatusFromString decodes the persisted name; unknown values fall
// back to Cancelled, the terminal state that keeps tickets unredeemable.
func PurchaseStatusFromString(s string) PurchaseStatus {
	ps := PurchaseStatus(s)
	if !ps.Valid() {
		return PurchaseStatusCancelled
	}
	return ps
}

// PurchaseType is persisted as its canonical string name.
type PurchaseType string

const (
	PurchaseTypeMobilePayV1 PurchaseType = "MobilePayV1"
	PurchaseTypeMobilePayV2 PurchaseType = "MobilePayV2"
	PurchaseTypeFree        PurchaseType = "Free"
	PurchaseTypePointOfSale PurchaseType = "PointOfSale"
	PurchaseTypeVoucher     PurchaseType = "Voucher"
)

func (t PurchaseType) String() string { return string(t) }

func (t PurchaseType) Valid() bool {
	switch t {
	case PurchaseTypeMobilePayV1, PurchaseTypeMobilePayV2, PurchaseTypeFree,
		PurchaseTypePointOfSale, PurchaseTypeVoucher:
		return true
	}
	return false
}

// PurchaseTypeFromString decodes the persisted name; unknown values fall
// back to Free.
func PurchaseTypeFromString(s string) PurchaseType {
	pt := PurchaseType(s)
	if !pt.Valid() {
		return PurchaseTypeFree
	}
	return pt
}

// TokenType is persisted as its canonical string name.
type TokenType string

const (
	TokenTypeRefresh   TokenType = "Refresh"
	TokenTypeMagicLink TokenType = "MagicLink"
)

func (t TokenType) String() string { return string(t) }

func (t TokenType) Valid() bool {
	switch t {
	case TokenTypeRefresh, TokenTypeMagicLink:
		return true
	}
	return false
}

// TokenTypeFromString decodes the persisted name; unknown values fall
// back to Refresh.
func TokenTypeFromString(s string) TokenType {
	tt := TokenType(s)
	if !tt.Valid() {
		return TokenTypeRefresh
	}
	return tt
}

// StatisticPreset is persisted as a narrow integer.
type StatisticPreset int

const (
	StatisticPresetMonthly StatisticPreset = iota
	StatisticPresetSemester
	StatisticPresetTotal
)

func (p StatisticPreset) String() string {
	switch p {
	case StatisticPresetMonthly:
		return "Monthly"
	case StatisticPresetSemester:
		return "Semester"
	case StatisticPresetTotal:
		return "Total"
	default:
		return fmt.Sprintf("StatisticPreset(%d)", int(p))
	}
}

func (p StatisticPreset) Valid() bool {
	return p >= StatisticPresetMonthly && p <= StatisticPresetTotal
}

// StatisticPresetFromInt decodes the persisted integer. The preset set is
// closed and has no safe default: an unknown value is an error, not a
// fallback.
func StatisticPresetFromInt(v int) (StatisticPreset, error) {
	p := StatisticPreset(v)
	if !p.Valid() {
		return 0, fmt.Errorf("unknown statistic preset %d", v)
	}
	return p, nil
}

// WebhookStatus is persisted as its canonical string name.
type WebhookStatus string

const (
	WebhookStatusActive   WebhookStatus = "Active"
	WebhookStatusDisabled WebhookStatus = "Disabled"
)

func (s WebhookStatus) String() string { return string(s) }

func (s WebhookStatus) Valid() bool {
	return s == WebhookStatusActive || s == WebhookStatusDisabled
}

// WebhookStatusFromString decodes the persisted name; unknown values fall
// back to Disabled so a corrupt row never receives deliveries.
func WebhookStatusFromString(s string) WebhookStatus {
	ws := WebhookStatus(s)
	if !ws.Valid() {
		return WebhookStatusDisabled
	}
	return ws
}
