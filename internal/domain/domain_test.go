package domain

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"iso date", "2025-03-01", "2025-03-01", false},
		{"surrounding spaces", " 2025-12-31 ", "2025-12-31", false},
		{"slashes", "2025/03/01", "", true},
		{"with time", "2025-03-01T10:00:00Z", "", true},
		{"impossible day", "2025-02-30", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDate_JSON(t *testing.T) {
	ev := Event{ID: 7, Name: "Launch", Location: "HQ", Date: NewDate(time.Date(2025, 3, 1, 15, 4, 5, 0, time.FixedZone("X", 3600)))}
	b, err := json.Marshal(ev)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"name":"Launch","location":"HQ","date":"2025-03-01"}`, string(b))

	var back Event
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, ev, back)

	var bad Event
	err = json.Unmarshal([]byte(`{"date":"03/01/2025"}`), &bad)
	assert.Error(t, err)
}

func TestValidationError(t *testing.T) {
	err := Invalid("name is required")
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, "name is required", err.Error())

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "name is required", ve.Reason)
}

func TestSessionContext(t *testing.T) {
	ctx := context.Background()
	_, ok := SessionFromContext(ctx)
	assert.False(t, ok)
	assert.Equal(t, "anonymous", Actor(ctx))

	ctx = WithSession(ctx, &Session{UserID: 1, Username: "ana", IsAdmin: true})
	s, ok := SessionFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "ana", s.Username)
	assert.Equal(t, "ana", Actor(ctx))

	_, ok = SessionFromContext(WithSession(context.Background(), nil))
	assert.False(t, ok)
}

func TestPatchIsEmpty(t *testing.T) {
	name := "x"
	assert.True(t, EventPatch{}.IsEmpty())
	assert.False(t, EventPatch{Name: &name}.IsEmpty())
	assert.True(t, AttendeePatch{}.IsEmpty())
	assert.False(t, AttendeePatch{Email: &name}.IsEmpty())
}
