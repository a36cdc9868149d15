// Package guard decides whether a protected view may render. The decision is
// pure data; performing the redirect is the caller's job, which keeps the
// whole state machine testable without a UI.
package guard

import (
	"hradmin/internal/client/routes"
	"hradmin/internal/client/session"
	"hradmin/internal/domain/auth"
)

type State int

const (
	// StateLoading means the session store has not finished restoring;
	// no redirect may be issued yet.
	StateLoading State = iota
	StateUnauthenticated
	StateForbidden
	StateAuthorized
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "LOADING"
	case StateUnauthenticated:
		return "UNAUTHENTICATED"
	case StateForbidden:
		return "FORBIDDEN"
	case StateAuthorized:
		return "AUTHORIZED"
	}
	return "UNKNOWN"
}

type Decision struct {
	State    State
	Redirect string
}

// Evaluate maps (restore progress, session, required role) to a decision.
// It is a pure function: same inputs, same decision, every time. An empty
// requiredRole means the view only needs an authenticated session. A session
// whose role is outside the closed set fails every required-role check.
func Evaluate(restoreDone bool, sess *session.Session, requiredRole auth.Role) Decision {
	if !restoreDone {
		return Decision{State: StateLoading}
	}
	if sess == nil {
		return Decision{State: StateUnauthenticated, Redirect: routes.Login}
	}
	if requiredRole != "" && (sess.Role != requiredRole || !auth.KnownRole(sess.Role)) {
		return Decision{State: StateForbidden, Redirect: routes.Unauthorized}
	}
	return Decision{State: StateAuthorized}
}

// Check evaluates a store against a route path using the route table.
// Unprotected paths only require the store to have finished restoring.
func Check(store *session.Store, path string) Decision {
	var sess *session.Session
	if current, ok := store.Current(); ok {
		sess = &current
	}
	required, _ := routes.RequiredRole(path)
	return Evaluate(!store.Loading(), sess, required)
}
