package permission

type Role string
type Action string

const (
	RoleAdmin    Role = "admin"
	RoleSender   Role = "sender"
	RoleReviewer Role = "reviewer"
	RoleObserver Role = "observer"
)

const (
	ActionUpload       Action = "upload"
	ActionRefer        Action = "refer"
	ActionComment      Action = "comment"
	ActionChangeStatus Action = "change-status"
	ActionView         Action = "view"
)

// ParseRole maps a stored role string onto a known Role. Unknown values
// stay unknown so every check against them denies.
func ParseRole(role string) (Role, bool) {
	switch Role(role) {
	case RoleAdmin, RoleSender, RoleReviewer, RoleObserver:
		return Role(role), true
	default:
		return "", false
	}
}

// Can is the authoritative role/action policy. ownsDocument only matters
// for the sender role's change-status action; anything not explicitly
// allowed here is denied.
func Can(role Role, action Action, ownsDocument bool) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleSender:
		switch action {
		case ActionUpload, ActionRefer, ActionComment, ActionView:
			return true
		case ActionChangeStatus:
			return ownsDocument
		}
	case RoleReviewer:
		switch action {
		case ActionRefer, ActionComment, ActionChangeStatus, ActionView:
			return true
		}
	case RoleObserver:
		switch action {
		case ActionComment, ActionView:
			return true
		}
	}
	return false
}
