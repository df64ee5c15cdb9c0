package main

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bjaus/respond"
	"github.com/bjaus/respond/outcome"
)

// User is the core domain entity.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type userStore struct {
	mu    sync.RWMutex
	users map[string]*User
}

func newUserStore() *userStore {
	return &userStore{users: map[string]*User{}}
}

func (s *userStore) get(id string) outcome.Option[User] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return outcome.None[User]()
	}
	return outcome.Some(*u)
}

func (s *userStore) create(name, email, role string) User {
	if role == "" {
		role = "member"
	}
	u := &User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
	return *u
}

func (s *userStore) delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return respond.Errorf(http.StatusNotFound, "user %s not found", id)
	}
	delete(s.users, id)
	return nil
}
