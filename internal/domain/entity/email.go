package entity

import (
	"time"
)

// Email dispatch outcomes recorded in the dispatch log.
const (
	DispatchStatusSent   = "SENT"
	DispatchStatusFailed = "FAILED"
)

// OutboundEmail is a single transactional email handed to the mailer.
type OutboundEmail struct {
	To       string
	ToName   string
	Subject  string
	HTMLBody string
}

// EmailDispatch is the per-attempt record written to MongoDB. One row per
// passenger email attempt, sent or failed; this is the observability trail
// for the best-effort fan-out.
type EmailDispatch struct {
	PNR         string    `bson:"pnr"`
	FlightID    string    `bson:"flightId"`
	Recipient   string    `bson:"recipient"`
	EventType   string    `bson:"eventType"`
	Subject     string    `bson:"subject"`
	Status      string    `bson:"status"`
	ErrorDetail string    `bson:"errorDetail,omitempty"`
	SentAt      time.Time `bson:"sentAt"`
}
