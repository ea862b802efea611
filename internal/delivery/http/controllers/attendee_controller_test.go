package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventmanager/internal/delivery/http/helpers"
	"eventmanager/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendeeController_ListAttendees(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantStatus  int
		wantEventID *int64
	}{
		{name: "all", query: "", wantStatus: http.StatusOK},
		{name: "filtered", query: "?event_id=2", wantStatus: http.StatusOK, wantEventID: func() *int64 { v := int64(2); return &v }()},
		{name: "non-integer filter", query: "?event_id=two", wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeAttendeeService{attendees: []*domain.Attendee{}}
			c := NewAttendeeController(testLogger, svc)
			rr := httptest.NewRecorder()

			c.ListAttendees(rr, httptest.NewRequest(http.MethodGet, "/attendees"+tt.query, nil))

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			assert.JSONEq(t, `[]`, rr.Body.String())
			assert.Equal(t, tt.wantEventID, svc.lastEventID)
		})
	}
}

func TestAttendeeController_CreateAttendee(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svc        *fakeAttendeeService
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "success",
			body:       `{"name":"Ana","email":"a@x.com","event_id":1}`,
			svc:        &fakeAttendeeService{attendee: &domain.Attendee{ID: 1, Name: "Ana", Email: "a@x.com", EventID: 1}},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing event_id",
			body:       `{"name":"Ana","email":"a@x.com"}`,
			svc:        &fakeAttendeeService{},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "event_id is required",
		},
		{
			name:       "unknown event",
			body:       `{"name":"Ana","email":"a@x.com","event_id":99}`,
			svc:        &fakeAttendeeService{err: domain.Invalid("event_id does not reference an existing event")},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "event_id does not reference an existing event",
		},
		{
			name:       "store error",
			body:       `{"name":"Ana","email":"a@x.com","event_id":1}`,
			svc:        &fakeAttendeeService{err: errStore},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "internal server error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewAttendeeController(testLogger, tt.svc)
			rr := httptest.NewRecorder()

			c.CreateAttendee(rr, httptest.NewRequest(http.MethodPost, "/attendees", bytes.NewBufferString(tt.body)))

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, decodeAPIError(t, rr).Error)
				return
			}
			assert.JSONEq(t, `{"id":1,"name":"Ana","email":"a@x.com","event_id":1}`, rr.Body.String())
			assert.Equal(t, domain.NewAttendee("Ana", "a@x.com", 1), tt.svc.lastCreate)
		})
	}
}

func TestAttendeeController_GetUpdateDelete(t *testing.T) {
	t.Run("get not found", func(t *testing.T) {
		c := NewAttendeeController(testLogger, &fakeAttendeeService{err: domain.ErrNotFound})
		req := httptest.NewRequest(http.MethodGet, "/attendees/5", nil)
		req.SetPathValue("id", "5")
		rr := httptest.NewRecorder()

		c.GetAttendee(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
		body := decodeAPIError(t, rr)
		assert.Equal(t, helpers.ErrCodeNotFound, body.Code)
		assert.Equal(t, "attendee not found", body.Error)
	})

	t.Run("update partial", func(t *testing.T) {
		svc := &fakeAttendeeService{attendee: &domain.Attendee{ID: 5, Name: "Ana", Email: "new@x.com", EventID: 1}}
		c := NewAttendeeController(testLogger, svc)
		req := httptest.NewRequest(http.MethodPut, "/attendees/5", bytes.NewBufferString(`{"email":"new@x.com"}`))
		req.SetPathValue("id", "5")
		rr := httptest.NewRecorder()

		c.UpdateAttendee(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, int64(5), svc.lastID)
		require.NotNil(t, svc.lastPatch.Email)
		assert.Equal(t, "new@x.com", *svc.lastPatch.Email)
		assert.Nil(t, svc.lastPatch.Name)
		assert.Nil(t, svc.lastPatch.EventID)
	})

	t.Run("delete", func(t *testing.T) {
		svc := &fakeAttendeeService{}
		c := NewAttendeeController(testLogger, svc)
		req := httptest.NewRequest(http.MethodDelete, "/attendees/5", nil)
		req.SetPathValue("id", "5")
		rr := httptest.NewRecorder()

		c.DeleteAttendee(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"Attendee removed"}`, rr.Body.String())
	})

	t.Run("delete bad id", func(t *testing.T) {
		c := NewAttendeeController(testLogger, &fakeAttendeeService{})
		req := httptest.NewRequest(http.MethodDelete, "/attendees/x", nil)
		req.SetPathValue("id", "x")
		rr := httptest.NewRecorder()

		c.DeleteAttendee(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "invalid attendee id", decodeAPIError(t, rr).Error)
	})
}
