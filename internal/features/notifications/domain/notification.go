package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Channel is the medium a notification goes out on.
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelSMS      Channel = "sms"
	ChannelInternal Channel = "internal"
)

// Audience is who a notification is addressed to.
type Audience string

const (
	AudienceCustomer Audience = "customer"
	AudienceOps      Audience = "ops"
)

// StatusSent is the only delivery status; nothing is actually sent.
const StatusSent = "sent"

var (
	ErrInvalidChannel  = errors.New("invalid notification channel")
	ErrInvalidAudience = errors.New("invalid notification audience")
	ErrEmptyMessage    = errors.New("notification message is empty")
)

// ChannelNames lists the accepted channel values.
func ChannelNames() []string {
	return []string{string(ChannelEmail), string(ChannelSMS), string(ChannelInternal)}
}

// AudienceNames lists the accepted audience values.
func AudienceNames() []string {
	return []string{string(AudienceCustomer), string(AudienceOps)}
}

// Notification is one entry of the notification log.
type Notification struct {
	ID         string   `json:"id"`
	ShipmentID string   `json:"shipment_id"`
	Channel    Channel  `json:"channel"`
	Audience   Audience `json:"audience"`
	Message    string   `json:"message"`
	Timestamp  string   `json:"timestamp"`
	Status     string   `json:"status"`
}

// NewNotification validates the inputs and returns an unsaved notification.
// The log assigns the ID.
func NewNotification(shipmentID string, channel Channel, audience Audience, message string, at time.Time) (Notification, error) {
	switch channel {
	case ChannelEmail, ChannelSMS, ChannelInternal:
	default:
		return Notification{}, fmt.Errorf("%w: %q", ErrInvalidChannel, channel)
	}
	switch audience {
	case AudienceCustomer, AudienceOps:
	default:
		return Notification{}, fmt.Errorf("%w: %q", ErrInvalidAudience, audience)
	}
	if strings.TrimSpace(message) == "" {
		return Notification{}, ErrEmptyMessage
	}

	return Notification{
		ShipmentID: shipmentID,
		Channel:    channel,
		Audience:   audience,
		Message:    message,
		Timestamp:  at.UTC().Format(time.RFC3339),
		Status:     StatusSent,
	}, nil
}

// FormatID renders the sequential log identifier.
func FormatID(seq int) string {
	return fmt.Sprintf("NOTIF-%04d", seq)
}

// Recipient is the resolved addressee. Customer fields and ops fields are exclusive.
type Recipient struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Team    string `json:"team,omitempty"`
	Channel string `json:"channel,omitempty"`
}

// OpsRecipient is where ops notifications land.
var OpsRecipient = Recipient{Team: "Operations", Channel: "ops-alerts"}
