package mongo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/tablebook/reservation-system/internal/core/domain"
)

func dupKeyError(index, field, value string) error {
	return fmt.Errorf("write exception: write errors: [E11000 duplicate key error collection: reservations.users index: %s dup key: { %s: %q }]", index, field, value)
}

func TestDuplicateKeyConflict(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "username collision",
			err:  dupKeyError(usernameIndex, "username", "alice"),
			want: domain.ErrUsernameTaken,
		},
		{
			name: "email collision",
			err:  dupKeyError(emailIndex, "email", "alice@example.com"),
			want: domain.ErrEmailTaken,
		},
		{
			// The colliding value is echoed in the error text, so a
			// username like this must not be mistaken for an email
			// conflict.
			name: "username collision with email-like value",
			err:  dupKeyError(usernameIndex, "username", "my_email_handle"),
			want: domain.ErrUsernameTaken,
		},
		{
			name: "email collision with username-like value",
			err:  dupKeyError(emailIndex, "email", "username@example.com"),
			want: domain.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := duplicateKeyConflict(tt.err); !errors.Is(got, tt.want) {
				t.Fatalf("duplicateKeyConflict() = %v, want %v", got, tt.want)
			}
		})
	}
}
