package mongo

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/saasbase/pkg/validator"
)

const (
	// DefaultErrorMessage is used by FormatError when no fallback is given.
	DefaultErrorMessage = "Database error"

	networkErrorMessage = "Unable to connect to database. Please try again later."
)

var dupIndexPattern = regexp.MustCompile(`index:\s+(\S+)\s+dup key`)

// FormatError turns err into a message that can be shown to a user.
//
//   - nil: fallback
//   - validator.ValidationErrors: "Validation error: " + messages joined by "; "
//   - duplicate key (code 11000): "A record with this <fields> already exists"
//   - network or timeout: a generic retry message
//   - other server errors: "Database error: " + server message
//   - anything else: err.Error(), or fallback when that is empty
//
// An empty fallback means DefaultErrorMessage.
func FormatError(err error, fallback string) string {
	if fallback == "" {
		fallback = DefaultErrorMessage
	}
	if err == nil {
		return fallback
	}

	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		messages := verrs.Messages()
		for i, m := range messages {
			if m == "" {
				messages[i] = "Validation failed"
			}
		}
		return "Validation error: " + strings.Join(messages, "; ")
	}

	if mongo.IsDuplicateKeyError(err) {
		return fmt.Sprintf("A record with this %s already exists", DuplicateKeyFields(err))
	}

	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) ||
		errors.Is(err, ErrFailedToConnectToMongo) || errors.Is(err, mongo.ErrClientDisconnected) {
		return networkErrorMessage
	}

	var se mongo.ServerError
	if errors.As(err, &se) {
		return "Database error: " + serverMessage(err)
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

// DuplicateKeyFields returns the comma separated field names that caused a
// duplicate key error, or "field" when they cannot be determined.
func DuplicateKeyFields(err error) string {
	var fields []string
	seen := make(map[string]bool)
	for _, msg := range duplicateKeyMessages(err) {
		for _, f := range fieldsFromDupMessage(msg) {
			if !seen[f] {
				seen[f] = true
				fields = append(fields, f)
			}
		}
	}
	if len(fields) == 0 {
		return "field"
	}
	return strings.Join(fields, ", ")
}

func duplicateKeyMessages(err error) []string {
	var msgs []string

	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 || e.Code == 11001 {
				msgs = append(msgs, e.Message)
			}
		}
	}

	var bwe mongo.BulkWriteException
	if errors.As(err, &bwe) {
		for _, e := range bwe.WriteErrors {
			if e.Code == 11000 || e.Code == 11001 {
				msgs = append(msgs, e.Message)
			}
		}
	}

	var ce mongo.CommandError
	if errors.As(err, &ce) {
		msgs = append(msgs, ce.Message)
	}

	return msgs
}

// fieldsFromDupMessage reads field names from a server message such as
//
//	E11000 duplicate key error collection: app.users index: email_1 dup key: { email: "a@b.c" }
//
// Older servers leave the key names empty ("{ : "a@b.c" }"); the index name is
// used in that case.
func fieldsFromDupMessage(msg string) []string {
	if _, doc, ok := strings.Cut(msg, "dup key:"); ok {
		if fields := keysOf(doc); len(fields) > 0 {
			return fields
		}
	}

	m := dupIndexPattern.FindStringSubmatch(msg)
	if m == nil {
		return nil
	}
	return fieldsFromIndexName(m[1])
}

// keysOf returns the top-level keys of a relaxed document literal like
// "{ email: "x", org: 1 }". Quoted values and nested documents are skipped.
func keysOf(doc string) []string {
	doc = strings.TrimSpace(doc)
	if !strings.HasPrefix(doc, "{") {
		return nil
	}
	doc = doc[1:]

	var (
		keys    []string
		key     strings.Builder
		inKey   = true
		depth   int
		inQuote byte
	)
	for i := 0; i < len(doc); i++ {
		c := doc[i]
		if inQuote != 0 {
			if c == '\\' {
				i++
			} else if c == inQuote {
				inQuote = 0
			}
			continue
		}
		switch {
		case c == '"' || c == '\'':
			if inKey {
				if j := strings.IndexByte(doc[i+1:], c); j >= 0 {
					key.WriteString(doc[i+1 : i+1+j])
					i += j + 1
					continue
				}
			}
			inQuote = c
		case c == '{' || c == '[' || c == '(':
			depth++
		case (c == '}' || c == ']' || c == ')') && depth > 0:
			depth--
		case c == '}':
			return keys
		case c == ':' && depth == 0 && inKey:
			if k := strings.TrimSpace(key.String()); k != "" {
				keys = append(keys, k)
			}
			key.Reset()
			inKey = false
		case c == ',' && depth == 0:
			inKey = true
		default:
			if inKey {
				key.WriteByte(c)
			}
		}
	}
	return keys
}

// fieldsFromIndexName turns "email_1_org_-1" (optionally prefixed with
// "db.coll.$") into [email org].
func fieldsFromIndexName(index string) []string {
	if i := strings.LastIndex(index, "$"); i >= 0 {
		index = index[i+1:]
	}
	parts := strings.Split(index, "_")
	var (
		fields  []string
		current []string
	)
	for _, p := range parts {
		switch p {
		case "1", "-1", "text", "2d", "2dsphere", "hashed":
			if len(current) > 0 {
				fields = append(fields, strings.Join(current, "_"))
				current = nil
			}
		default:
			current = append(current, p)
		}
	}
	if len(current) > 0 {
		fields = append(fields, strings.Join(current, "_"))
	}
	return fields
}

func serverMessage(err error) string {
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}

	var we mongo.WriteException
	if errors.As(err, &we) {
		if len(we.WriteErrors) > 0 {
			return we.WriteErrors[0].Message
		}
		if we.WriteConcernError != nil {
			return we.WriteConcernError.Message
		}
	}

	return err.Error()
}
