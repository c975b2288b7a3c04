//go:build js
// +build js

package web

import (
	"errors"
	"fmt"

	"github.com/gopherjs/gopherjs/js"
)

var errNoStorage = errors.New("localStorage unavailable")

// LocalStorage is a game.Store over window.localStorage.
type LocalStorage struct {
	storage *js.Object
}

// NewLocalStorage binds to window.localStorage. Private browsing modes may
// leave it undefined; every call then fails with an error.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{storage: js.Global.Get("localStorage")}
}

func (s *LocalStorage) Get(key string) (value string, ok bool, err error) {
	if !defined(s.storage) {
		return "", false, errNoStorage
	}
	defer recoverJS(&err)
	v := s.storage.Call("getItem", key)
	if !defined(v) {
		return "", false, nil
	}
	return v.String(), true, nil
}

func (s *LocalStorage) Set(key, value string) (err error) {
	if !defined(s.storage) {
		return errNoStorage
	}
	defer recoverJS(&err)
	s.storage.Call("setItem", key, value)
	return nil
}

func (s *LocalStorage) Remove(key string) (err error) {
	if !defined(s.storage) {
		return errNoStorage
	}
	defer recoverJS(&err)
	s.storage.Call("removeItem", key)
	return nil
}

// recoverJS turns a thrown JS exception, such as QuotaExceededError, into
// an error.
func recoverJS(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if e, ok := r.(*js.Error); ok {
		*err = fmt.Errorf("localStorage: %w", e)
		return
	}
	panic(r)
}
