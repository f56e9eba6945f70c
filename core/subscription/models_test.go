package subscription

import (
	"testing"
	"time"

	"github.com/volatiletech/null/v8"
)

func TestStatusAt(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		sub  Subscription
		want string
	}{
		{name: "active", sub: Subscription{EndDate: now.AddDate(0, 1, 0)}, want: StatusActive},
		{name: "ends this instant", sub: Subscription{EndDate: now}, want: StatusActive},
		{name: "expired", sub: Subscription{EndDate: now.AddDate(0, 0, -1)}, want: StatusExpired},
		// cancellation wins over the end date, even a future one
		{name: "canceled while active", sub: Subscription{EndDate: now.AddDate(0, 1, 0), CanceledAt: null.TimeFrom(now.AddDate(0, 0, -3))}, want: StatusCanceled},
		{name: "canceled and expired", sub: Subscription{EndDate: now.AddDate(0, -1, 0), CanceledAt: null.TimeFrom(now.AddDate(0, -2, 0))}, want: StatusCanceled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusAt(tt.sub, now); got != tt.want {
				t.Errorf("StatusAt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenewValidate(t *testing.T) {
	tests := []struct {
		name    string
		months  int
		wantErr bool
	}{
		{name: "one month", months: 1},
		{name: "a year", months: 12},
		{name: "max", months: 36},
		{name: "zero", months: 0, wantErr: true},
		{name: "negative", months: -1, wantErr: true},
		{name: "too long", months: 37, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := (Renew{Months: tt.months}).Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
