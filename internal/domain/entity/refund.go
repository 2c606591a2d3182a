package entity

import (
	"time"
)

const RefundStatusPending = "pending"

// RefundRequest lives at refund_requests/{CODE}/{flight_id}/{passenger_id}.
// Created by passenger self-service, deleted by admin finalization.
type RefundRequest struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	PNR       string    `json:"pnr"`
	UpiID     string    `json:"upi_id"`
	Amount    float64   `json:"amount,omitempty"`
	Status    string    `json:"status"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
