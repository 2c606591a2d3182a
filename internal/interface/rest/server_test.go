package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"udaansathi-service/internal/domain/entity"
	storeRepo "udaansathi-service/internal/interface/repository"
	"udaansathi-service/internal/usecase"
	"udaansathi-service/pkg/logger"
	"udaansathi-service/pkg/metrics"
)

type recordingMailer struct {
	sent    []*entity.OutboundEmail
	failAll bool
}

func (m *recordingMailer) Send(ctx context.Context, email *entity.OutboundEmail) error {
	if m.failAll {
		return errors.New("mail provider unavailable")
	}
	m.sent = append(m.sent, email)
	return nil
}

type testEnv struct {
	handler http.Handler
	store   *storeRepo.MemoryStore
	mail    *recordingMailer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := storeRepo.NewMemoryStore()
	log := logger.NewNop()
	mail := &recordingMailer{}

	flights := storeRepo.NewStoreFlightRepository(store, log)
	archive := storeRepo.NewStoreArchiveRepository(store)
	notifications := storeRepo.NewStoreNotificationRepository(store)
	refundRepo := storeRepo.NewStoreRefundRepository(store)
	airports := storeRepo.NewStaticAirportRepository()

	m := metrics.NewMetrics(prometheus.NewRegistry(), "test")
	notifier := usecase.NewNotifier(notifications, mail, nil, m, log)
	disruptions := usecase.NewDisruptionOrchestrator(flights, archive, notifier, m, log)
	refunds := usecase.NewRefundService(refundRepo, archive, log)

	server := NewServer(":0", []string{"*"}, log, flights, airports, notifications, disruptions, refunds, usecase.NewTicketRenderer())
	return &testEnv{handler: server.Handler(), store: store, mail: mail}
}

func (e *testEnv) seedFlight(t *testing.T, airport, flightID string, flight *entity.Flight) {
	t.Helper()
	repo := storeRepo.NewStoreFlightRepository(e.store, logger.NewNop())
	require.NoError(t, repo.SaveFlight(context.Background(), airport, flightID, flight))
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func sampleFlight() *entity.Flight {
	return &entity.Flight{
		Airline:       "IndiGo",
		Destination:   "BOM",
		DepartureTime: "2026-09-01T10:30:00",
		Status:        entity.FlightStatusScheduled,
		Passengers: map[string]entity.Passenger{
			"ABC123": {Name: "Asha Rao", Email: "asha@example.com", Seat: "12A"},
		},
	}
}

func TestStatusAndHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "backend running")

	rec = env.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetFlightsMissingOrUnsupportedCode(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/flights", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	env1 := decodeEnvelope(t, rec)
	assert.True(t, env1.OK)
	assert.Equal(t, "missing airport code", env1.Message)

	rec = env.do(http.MethodGet, "/flights?airport=XYZ", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	env2 := decodeEnvelope(t, rec)
	assert.Equal(t, "unsupported airport code", env2.Message)
}

func TestAddFlightValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/add-flight", `{"flight_id":"6E213","airline":"IndiGo"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.False(t, body.OK)
	assert.NotEmpty(t, body.Error)
}

func TestAddFlightAcceptsDepTimeAlias(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/add-flight",
		`{"flight_id":"6E213","airline":"IndiGo","source":"DEL","destination":"bom","dep_time":"2026-09-01T10:30:00"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodGet, "/flights/DEL/6E213", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Data entity.Flight `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "2026-09-01T10:30:00", got.Data.DepartureTime)
	assert.Equal(t, "BOM", got.Data.Destination)
	// City is backfilled from the airport reference set.
	assert.Equal(t, "Mumbai", got.Data.DestinationCity)
	assert.Equal(t, entity.FlightStatusScheduled, got.Data.Status)
}

func TestCancelFlightEndToEnd(t *testing.T) {
	env := newTestEnv(t)
	env.seedFlight(t, "DEL", "6E213", sampleFlight())

	rec := env.do(http.MethodPost, "/cancel-flight",
		`{"flight_id":"6E213","source":"DEL","reason":"Weather"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Flight cancelled", decodeEnvelope(t, rec).Message)

	// The live record is gone from the departure list.
	rec = env.do(http.MethodGet, "/flights?airport=DEL", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Data []entity.Flight `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Empty(t, list.Data)

	// The archive copy exists with reason and passenger list intact.
	var archived entity.CancelledFlight
	require.NoError(t, env.store.Get(context.Background(), "cancelled_flights/6E213", &archived))
	assert.Equal(t, "Weather", archived.CancelReason)
	assert.Equal(t, entity.FlightStatusCancelled, archived.Status)
	assert.Contains(t, archived.Passengers, "ABC123")

	// The passenger got exactly one cancellation notification.
	rec = env.do(http.MethodGet, "/notifications/ABC123", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var notifs struct {
		Data []entity.Notification `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notifs))
	require.Len(t, notifs.Data, 1)
	assert.Equal(t, entity.EventCancelled, notifs.Data[0].Type)
	assert.Contains(t, notifs.Data[0].Message, "Weather")

	require.Len(t, env.mail.sent, 1)
	assert.Equal(t, "asha@example.com", env.mail.sent[0].To)
}

func TestCancelFlightUnknown(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/cancel-flight",
		`{"flight_id":"XX000","source":"DEL","reason":"Weather"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.False(t, body.OK)
	assert.Equal(t, "Flight not found", body.Error)
}

func TestCancelFlightSucceedsWhenEmailProviderIsDown(t *testing.T) {
	env := newTestEnv(t)
	env.mail.failAll = true
	env.seedFlight(t, "DEL", "6E213", sampleFlight())

	rec := env.do(http.MethodPost, "/cancel-flight",
		`{"flight_id":"6E213","source":"DEL","reason":"Weather"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Notification was still written.
	rec = env.do(http.MethodGet, "/notifications/ABC123", "")
	var notifs struct {
		Data []entity.Notification `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notifs))
	assert.Len(t, notifs.Data, 1)
}

func TestDelayFlight(t *testing.T) {
	env := newTestEnv(t)
	env.seedFlight(t, "DEL", "6E213", sampleFlight())

	rec := env.do(http.MethodPost, "/delay-flight",
		`{"flight_id":"6E213","source":"DEL","new_time":"2026-09-01T14:00:00","delay":"3h30m"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodGet, "/flights/DEL/6E213", "")
	var got struct {
		Data entity.Flight `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, entity.FlightStatusDelayed, got.Data.Status)
	assert.Equal(t, "2026-09-01T14:00:00", got.Data.DepartureTime)
	assert.Equal(t, "3h30m", got.Data.Delay)

	rec = env.do(http.MethodGet, "/notifications/ABC123", "")
	var notifs struct {
		Data []entity.Notification `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notifs))
	require.Len(t, notifs.Data, 1)
	assert.Equal(t, entity.EventDelayed, notifs.Data[0].Type)
}

func TestPatchFlightWithoutNotify(t *testing.T) {
	env := newTestEnv(t)
	env.seedFlight(t, "DEL", "6E213", sampleFlight())

	rec := env.do(http.MethodPatch, "/flights/DEL/6E213", `{"status":"Boarding"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodGet, "/notifications/ABC123", "")
	var notifs struct {
		Data []entity.Notification `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notifs))
	assert.Empty(t, notifs.Data)
}

func TestDeleteFlight(t *testing.T) {
	env := newTestEnv(t)
	env.seedFlight(t, "DEL", "6E213", sampleFlight())

	rec := env.do(http.MethodDelete, "/flights/DEL/6E213", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(http.MethodDelete, "/flights/DEL/6E213", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchFlights(t *testing.T) {
	env := newTestEnv(t)
	env.seedFlight(t, "DEL", "6E213", sampleFlight())
	env.seedFlight(t, "DEL", "AI101", &entity.Flight{Airline: "Air India", Destination: "CCU"})

	rec := env.do(http.MethodGet, "/flights/search?source=DEL&destination=bom", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Data []entity.Flight `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, "6E213", list.Data[0].ID)

	rec = env.do(http.MethodGet, "/flights/search?source=DEL", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBookingAndTicket(t *testing.T) {
	env := newTestEnv(t)
	env.seedFlight(t, "DEL", "6E213", sampleFlight())

	rec := env.do(http.MethodGet, "/bookings/ABC123", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var booking entity.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &booking))
	assert.Equal(t, "6E213", booking.FlightID)
	assert.Equal(t, "Asha Rao", booking.Passenger.Name)

	rec = env.do(http.MethodGet, "/bookings/ZZZ999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(http.MethodGet, "/bookings/ABC123/ticket", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "ticket_ABC123.pdf")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))
}

func TestGetNotificationsUnknownPNRIsEmptyList(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/notifications/ZZZ999", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var notifs struct {
		OK   bool                  `json:"ok"`
		Data []entity.Notification `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notifs))
	assert.True(t, notifs.OK)
	assert.Empty(t, notifs.Data)
}

func TestRefundFlow(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/refunds/submit",
		`{"airport":"DEL","flight_id":"6E213","passenger_id":"p1","name":"Asha Rao"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodPost, "/api/refunds/submit",
		`{"airport":"DEL","flight_id":"6E213","passenger_id":"p1","name":"Asha Rao","pnr":"ABC123","upi_id":"asha@upi","amount":4200}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(http.MethodGet, "/api/refunds/DEL/6E213", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var requests []entity.RefundRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &requests))
	require.Len(t, requests, 1)
	assert.Equal(t, "ABC123", requests[0].PNR)
	assert.Equal(t, entity.RefundStatusPending, requests[0].Status)

	rec = env.do(http.MethodDelete, "/api/refunds/DEL/6E213/p1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Finalizing twice stays 200.
	rec = env.do(http.MethodDelete, "/api/refunds/DEL/6E213/p1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
