// Package chat holds the wire and display types for a trip group chat.
package chat

import "fmt"

// Sender describes who wrote a message.
type Sender struct {
	UserID        string `json:"user_id"`
	Image         string `json:"image"`
	IsKYCVerified bool   `json:"is_kyc_verified"`
	Self          bool   `json:"self"`
}

// Message is a single chat entry. IDs are not unique across pages.
type Message struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Time    string `json:"time"`
	Sender  Sender `json:"sender"`
}

// Page is one response from the chat endpoint.
type Page struct {
	Chats   []Message `json:"chats"`
	From    string    `json:"from"`
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Status  string    `json:"status"`
	Message string    `json:"message,omitempty"`
}

// Trip is the page metadata shown above the message list.
type Trip struct {
	Name   string
	From   string
	To     string
	Status string
}

// Trip returns the trip metadata carried by the page.
func (p *Page) Trip() Trip {
	return Trip{Name: p.Name, From: p.From, To: p.To, Status: p.Status}
}

// Reversed returns a copy of the page's messages in reverse order.
func (p *Page) Reversed() []Message {
	out := make([]Message, len(p.Chats))
	for i, m := range p.Chats {
		out[len(p.Chats)-1-i] = m
	}
	return out
}

// RowKey derives a display key from the message id and its list position.
func RowKey(id string, position int) string {
	return fmt.Sprintf("%s-%d", id, position)
}
