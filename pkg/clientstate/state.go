// Package clientstate holds the session state a frontend keeps about the
// signed-in user, reduced from a stream of actions. Reduce is pure: it never
// mutates its input and always returns the next state, so replaying the same
// actions yields the same state.
package clientstate

import "sync"

// User is the profile snapshot kept on the client after sign-in.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

// State is the client session state.
type State struct {
	CurrentUser *User
	Loading     bool
	Err         string
}

// ActionType discriminates Action values.
type ActionType string

const (
	SignInStart       ActionType = "signin/start"
	SignInSuccess     ActionType = "signin/success"
	SignInFailure     ActionType = "signin/failure"
	UpdateUserStart   ActionType = "updateUser/start"
	UpdateUserSuccess ActionType = "updateUser/success"
	UpdateUserFailure ActionType = "updateUser/failure"
	DeleteUserStart   ActionType = "deleteUser/start"
	DeleteUserSuccess ActionType = "deleteUser/success"
	DeleteUserFailure ActionType = "deleteUser/failure"
	SignOut           ActionType = "signout"
)

// Action carries a state transition. User is read on the success variants,
// Err on the failure variants; both are ignored otherwise.
type Action struct {
	Type ActionType
	User *User
	Err  string
}

// Reduce applies an action to a state and returns the next state. Unknown
// action types leave the state unchanged.
func Reduce(s State, a Action) State {
	switch a.Type {
	case SignInStart, UpdateUserStart, DeleteUserStart:
		s.Loading = true
		s.Err = ""
	case SignInSuccess, UpdateUserSuccess:
		s.CurrentUser = cloneUser(a.User)
		s.Loading = false
		s.Err = ""
	case SignInFailure, UpdateUserFailure, DeleteUserFailure:
		s.Loading = false
		s.Err = a.Err
	case DeleteUserSuccess, SignOut:
		s.CurrentUser = nil
		s.Loading = false
		s.Err = ""
	}
	return s
}

func cloneUser(u *User) *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// Store serializes dispatches over a State for callers that share one
// session across goroutines.
type Store struct {
	mu    sync.Mutex
	state State
}

// NewStore returns a Store starting from the zero state.
func NewStore() *Store {
	return &Store{}
}

// Dispatch reduces the action into the store and returns the new state.
func (st *Store) Dispatch(a Action) State {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.state = Reduce(st.state, a)
	return st.state
}

// State returns the current state.
func (st *Store) State() State {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state
}
