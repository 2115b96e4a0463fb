// Package session carries the logged-in state as an explicit object instead
// of ambient globals. Only the token survives between runs, in a small disk
// key-value store under a fixed key.
package session

import (
	"os"

	"github.com/peterbourgon/diskv/v3"

	"github.com/Abhinav6284/Planora/internal/model"
)

// Session is created at startup and destroyed at logout.
type Session struct {
	Token string
	User  model.User
}

func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

const tokenKey = "planora_token"

// Store persists the session token. Its presence alone decides whether a
// session restore is attempted on startup.
type Store struct {
	d *diskv.Diskv
}

func NewStore(dir string) *Store {
	return &Store{d: diskv.New(diskv.Options{
		BasePath:     dir,
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 64 * 1024,
	})}
}

func (s *Store) Token() (string, bool) {
	b, err := s.d.Read(tokenKey)
	if err != nil || len(b) == 0 {
		return "", false
	}
	return string(b), true
}

func (s *Store) SaveToken(token string) error {
	return s.d.Write(tokenKey, []byte(token))
}

func (s *Store) Clear() error {
	err := s.d.Erase(tokenKey)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
