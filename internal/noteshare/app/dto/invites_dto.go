package dto

// SendInviteInput contains the data for issuing an invite. The service
// layer re-checks the email against the caller's own address.
type SendInviteInput struct {
	FriendEmail string `json:"friend_email" validate:"omitempty,email"`
}
