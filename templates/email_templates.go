package templates

import (
	"fmt"

	"udaansathi-service/internal/domain/entity"
)

const cancellationBody = `<div style="font-family:Arial,sans-serif;max-width:560px">
<h2 style="color:#c0392b">Flight %s Cancelled</h2>
<p>Dear %s,</p>
<p>We regret to inform you that your flight <b>%s</b> (%s &rarr; %s) has been cancelled.</p>
<p><b>Reason:</b> %s</p>
<p>You can request a refund or view alternative flights from your Udaan Sathi dashboard.</p>
<p style="color:#888;font-size:12px">This is an automated message from Udaan Sathi flight assistance.</p>
</div>`

const delayBody = `<div style="font-family:Arial,sans-serif;max-width:560px">
<h2 style="color:#e67e22">Flight %s Delayed</h2>
<p>Dear %s,</p>
<p>Your flight <b>%s</b> (%s &rarr; %s) has been delayed.</p>
<p><b>Details:</b> %s</p>
<p>Please check the latest departure time before leaving for the airport.</p>
<p style="color:#888;font-size:12px">This is an automated message from Udaan Sathi flight assistance.</p>
</div>`

const updateBody = `<div style="font-family:Arial,sans-serif;max-width:560px">
<h2 style="color:#2980b9">Flight %s Update</h2>
<p>Dear %s,</p>
<p>There is an update for your flight <b>%s</b> (%s &rarr; %s).</p>
<p><b>Details:</b> %s</p>
<p style="color:#888;font-size:12px">This is an automated message from Udaan Sathi flight assistance.</p>
</div>`

// DisruptionEmail builds the outbound email for one passenger affected by a
// disruption event. The reason string is whatever the orchestrator
// assembled (cancel reason, delay details, update summary).
func DisruptionEmail(passengerName, passengerEmail, flightID, source, destination, reason, eventType string) *entity.OutboundEmail {
	var subject, body string

	switch eventType {
	case entity.EventCancelled:
		subject = fmt.Sprintf("Flight %s cancelled", flightID)
		body = fmt.Sprintf(cancellationBody, flightID, passengerName, flightID, source, destination, reason)
	case entity.EventDelayed:
		subject = fmt.Sprintf("Flight %s delayed", flightID)
		body = fmt.Sprintf(delayBody, flightID, passengerName, flightID, source, destination, reason)
	default:
		subject = fmt.Sprintf("Flight %s update", flightID)
		body = fmt.Sprintf(updateBody, flightID, passengerName, flightID, source, destination, reason)
	}

	return &entity.OutboundEmail{
		To:       passengerEmail,
		ToName:   passengerName,
		Subject:  subject,
		HTMLBody: body,
	}
}
