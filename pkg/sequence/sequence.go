// Package sequence issues human-readable identifiers (COMP000001, REP000042)
// from counter rows that the database increments atomically.
package sequence

import (
	"context"
	"errors"
	"fmt"

	"github.com/JaimeStill/sustainassess/pkg/repository"
)

// ErrExhausted is returned when every attempt collided with an existing identifier.
var ErrExhausted = errors.New("identifier assignment exhausted retries")

// DefaultAttempts bounds how many fresh identifiers Assign draws before giving up.
const DefaultAttempts = 3

const nextQuery = `
	INSERT INTO sequences(name, value) VALUES ($1, 1)
	ON CONFLICT (name) DO UPDATE SET value = sequences.value + 1
	RETURNING value`

// Source yields the next formatted identifier.
type Source interface {
	Next(ctx context.Context) (string, error)
}

// Sequence draws identifiers for one named counter.
type Sequence struct {
	q      repository.Querier
	name   string
	prefix string
}

// New creates a Sequence backed by the sequences table.
// Pass the connection pool rather than a transaction so a rolled-back insert
// does not hand the same value to the next attempt.
func New(q repository.Querier, name, prefix string) *Sequence {
	return &Sequence{q: q, name: name, prefix: prefix}
}

// Next increments the counter and returns the formatted identifier.
func (s *Sequence) Next(ctx context.Context) (string, error) {
	var n int64
	if err := s.q.QueryRowContext(ctx, nextQuery, s.name).Scan(&n); err != nil {
		return "", fmt.Errorf("next %s value: %w", s.name, err)
	}
	return Format(s.prefix, n), nil
}

// Format renders prefix followed by n zero-padded to six digits.
func Format(prefix string, n int64) string {
	return fmt.Sprintf("%s%06d", prefix, n)
}

// Assign draws an identifier from src and passes it to insert. When insert
// reports a collision on constraint, a fresh identifier is drawn, up to attempts
// times. Any other error is returned unchanged.
func Assign[T any](
	ctx context.Context,
	src Source,
	constraint string,
	attempts int,
	insert func(id string) (T, error),
) (T, error) {
	var zero T
	if attempts < 1 {
		attempts = 1
	}

	for range attempts {
		id, err := src.Next(ctx)
		if err != nil {
			return zero, err
		}

		result, err := insert(id)
		if err == nil {
			return result, nil
		}
		if !repository.IsUniqueViolation(err, constraint) {
			return zero, err
		}
	}

	return zero, fmt.Errorf("%w: %d attempts", ErrExhausted, attempts)
}
