package mongo_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	drv "go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/saasbase/pkg/mongo"
	"github.com/dmitrymomot/saasbase/pkg/validator"
)

func dupWriteException(msg string) error {
	return drv.WriteException{
		WriteErrors: drv.WriteErrors{{Code: 11000, Message: msg}},
	}
}

func TestFormatError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		fallback string
		want     string
	}{
		{
			name:     "nil uses fallback",
			err:      nil,
			fallback: "x",
			want:     "x",
		},
		{
			name: "nil uses default fallback",
			err:  nil,
			want: "Database error",
		},
		{
			name:     "duplicate key names the field",
			err:      dupWriteException(`E11000 duplicate key error collection: app.users index: email_1 dup key: { email: "a@b.c" }`),
			fallback: "x",
			want:     "A record with this email already exists",
		},
		{
			name: "duplicate key with compound index",
			err: drv.CommandError{
				Code:    11000,
				Message: `E11000 duplicate key error collection: app.members index: org_id_1_email_1 dup key: { org_id: ObjectId('665f1c2e8b3e4a1d2c3b4a59'), email: "x,y: z" }`,
			},
			want: "A record with this org_id, email already exists",
		},
		{
			name: "duplicate key from legacy message uses index name",
			err:  dupWriteException(`E11000 duplicate key error index: app.users.$email_1 dup key: { : "a@b.c" }`),
			want: "A record with this email already exists",
		},
		{
			name: "duplicate key without details",
			err:  drv.CommandError{Code: 11000, Message: "duplicate"},
			want: "A record with this field already exists",
		},
		{
			name: "wrapped duplicate key",
			err:  fmt.Errorf("insert user: %w", dupWriteException(`E11000 dup key: { "username": "bob" }`)),
			want: "A record with this username already exists",
		},
		{
			name: "other server error",
			err:  drv.CommandError{Code: 2, Name: "BadValue", Message: "unknown operator: $foo"},
			want: "Database error: unknown operator: $foo",
		},
		{
			name: "validation errors are listed",
			err: validator.ValidationErrors{
				{Field: "name", Message: "name is required"},
				{Field: "email", Message: ""},
			},
			want: "Validation error: name is required; Validation failed",
		},
		{
			name: "wrapped validation errors",
			err:  fmt.Errorf("save: %w", validator.ValidationErrors{{Field: "age", Message: "must be positive"}}),
			want: "Validation error: must be positive",
		},
		{
			name: "network label",
			err:  drv.CommandError{Message: "connection reset", Labels: []string{"NetworkError"}},
			want: "Unable to connect to database. Please try again later.",
		},
		{
			name: "failed connection",
			err:  errors.Join(mongo.ErrFailedToConnectToMongo, errors.New("dial tcp")),
			want: "Unable to connect to database. Please try again later.",
		},
		{
			name: "deadline",
			err:  fmt.Errorf("query: %w", context.DeadlineExceeded),
			want: "Unable to connect to database. Please try again later.",
		},
		{
			name:     "generic error uses its message",
			err:      errors.New("boom"),
			fallback: "x",
			want:     "boom",
		},
		{
			name:     "empty message uses fallback",
			err:      errors.New(""),
			fallback: "x",
			want:     "x",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, mongo.FormatError(tt.err, tt.fallback))
		})
	}
}

func TestFormatError_DuplicateKeyMentionsField(t *testing.T) {
	t.Parallel()

	err := drv.CommandError{
		Code:    11000,
		Name:    "DuplicateKey",
		Message: `E11000 duplicate key error collection: saas_db.users index: email_1 dup key: { email: 1 }`,
	}
	assert.Contains(t, mongo.FormatError(err, "x"), "email")
}

func TestDuplicateKeyFields(t *testing.T) {
	t.Parallel()

	err := drv.BulkWriteException{
		WriteErrors: []drv.BulkWriteError{
			{WriteError: drv.WriteError{Code: 11000, Message: `E11000 dup key: { slug: "a" }`}},
			{WriteError: drv.WriteError{Code: 11000, Message: `E11000 dup key: { slug: "b" }`}},
		},
	}
	assert.Equal(t, "slug", mongo.DuplicateKeyFields(err))
	assert.Equal(t, "field", mongo.DuplicateKeyFields(errors.New("other")))
}
