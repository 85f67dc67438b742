package negotiation

type Status string

const (
	StatusPending   Status = "pending"
	StatusCountered Status = "countered"
	StatusAccepted  Status = "accepted"
	StatusDeclined  Status = "declined"
	StatusExpired   Status = "expired"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCountered, StatusAccepted, StatusDeclined, StatusExpired, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is defined from s.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusDeclined, StatusExpired, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsAwaitingReply reports whether the request still waits on a party and is
// therefore subject to expiry.
func (s Status) IsAwaitingReply() bool {
	return s == StatusPending || s == StatusCountered
}

type ActionKind string

const (
	ActionAccept  ActionKind = "accept"
	ActionDecline ActionKind = "decline"
	ActionCounter ActionKind = "counter"
	ActionExpire  ActionKind = "expire"
	ActionFulfill ActionKind = "fulfill"
)

func (k ActionKind) String() string {
	return string(k)
}

// IsSystem reports whether the action is driven by the platform rather than
// one of the two parties.
func (k ActionKind) IsSystem() bool {
	return k == ActionExpire || k == ActionFulfill
}
