// Package confirm decides whether destructive requests may proceed.
package confirm

import (
	"context"
	"crypto/subtle"
)

// Request describes an action that needs confirmation.
type Request struct {
	Action       string // What is about to happen, e.g. "delete all resources"
	Confirmation string // The confirmation supplied by the client
}

// Confirmer approves or rejects requests.
type Confirmer interface {
	Confirm(ctx context.Context, r Request) (bool, error)
}

// Func adapts a function to the Confirmer interface.
type Func func(ctx context.Context, r Request) (bool, error)

func (f Func) Confirm(ctx context.Context, r Request) (bool, error) {
	return f(ctx, r)
}

// Phrase approves requests whose confirmation equals the phrase.
type Phrase string

func (p Phrase) Confirm(_ context.Context, r Request) (bool, error) {
	if p == "" {
		return false, nil
	}

	return subtle.ConstantTimeCompare([]byte(p), []byte(r.Confirmation)) == 1, nil
}

// Deny rejects every request.
var Deny = Func(func(context.Context, Request) (bool, error) {
	return false, nil
})
