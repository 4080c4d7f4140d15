package models

import "time"

// SignupRequest is what the waitlist form sends to /api/subscribe.
// FirstName and LastName are optional and usually empty.
type SignupRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Contact is the record sent to the mailing-list provider.
type Contact struct {
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Unsubscribed bool   `json:"unsubscribed"`
}

// Contact converts the request into an active (subscribed) contact.
func (s SignupRequest) Contact() Contact {
	return Contact{
		Email:        s.Email,
		FirstName:    s.FirstName,
		LastName:     s.LastName,
		Unsubscribed: false,
	}
}

// SubscribeResponse is the success body of /api/subscribe.
type SubscribeResponse struct {
	Message string `json:"message"`
}

const SignupEventName = "waitlist_signup"

// SignupEvent is published after the provider accepted a contact.
type SignupEvent struct {
	Event   string    `json:"event"`
	Version int       `json:"version"`
	Email   string    `json:"email"`
	TS      time.Time `json:"ts"`
}
