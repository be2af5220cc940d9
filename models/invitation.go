package models

import "time"

// InvitationRequest is sent by a nutritionist to invite a new client.
type InvitationRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Invitation is the result of creating (or re-issuing) an invitation.
type Invitation struct {
	User       User      `json:"user"`
	Token      string    `json:"token"`
	InviteLink string    `json:"invite_link"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// ActivationRequest carries the password chosen by an invited client.
type ActivationRequest struct {
	Password string `json:"password"`
}

// InvitationCheck is the response of the invitation verification endpoint.
type InvitationCheck struct {
	Valid bool             `json:"valid"`
	User  *InvitedUserInfo `json:"user,omitempty"`
}

// InvitedUserInfo is the public part of an invited user.
type InvitedUserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
