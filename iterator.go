package objects

import (
	"context"
	"errors"
)

// ListOption configures a single List or ListKeys call.
type ListOption func(*listOptions)

type listOptions struct {
	pageSize int32
}

// WithPageSize caps how many objects the backend returns per page fetch.
// Zero leaves the backend default (1000) in effect.
func WithPageSize(n int32) ListOption {
	return func(o *listOptions) {
		o.pageSize = n
	}
}

// ObjectIterator provides forward-only, pull-driven access to a listing.
// A page is fetched only when the buffered one is exhausted and the caller
// asks for more; abandoning the iterator early leaves no backend cursor
// behind. Next must return false after exhaustion, failure, or Close.
type ObjectIterator struct {
	ctx      context.Context
	sess     *session
	prefix   string
	pageSize int32

	buf     []ObjectInfo
	idx     int
	token   string
	done    bool
	closed  bool
	err     error
	current ObjectInfo
}

// Next advances to the next object, fetching the next page from the backend
// when needed. Returns false once the listing is exhausted, a page fetch
// fails, or the iterator is closed; check Err to distinguish.
func (it *ObjectIterator) Next() bool {
	if it.closed || it.err != nil {
		return false
	}

	for it.idx >= len(it.buf) {
		if it.done {
			return false
		}
		if !it.fetch() {
			return false
		}
	}

	it.current = it.buf[it.idx]
	it.idx++
	return true
}

func (it *ObjectIterator) fetch() bool {
	page, next, err := it.sess.listPage(it.ctx, it.prefix, it.token, it.pageSize)
	if err != nil {
		if errors.Is(err, ErrClientClosed) {
			it.err = closedError("list")
		} else {
			it.err = newError(KindList, err, "failed to list objects with prefix %q", it.prefix)
		}
		return false
	}

	it.buf = page
	it.idx = 0
	it.token = next
	it.done = next == ""
	return true
}

// Object returns the current object. Only valid after Next returned true.
func (it *ObjectIterator) Object() ObjectInfo {
	return it.current
}

// Err returns the error that terminated the iteration, if any. Items yielded
// before the failure remain valid.
func (it *ObjectIterator) Err() error {
	return it.err
}

// Close abandons the iteration early. Idempotent; there is no backend cursor
// to release, so this only drops the buffered page.
func (it *ObjectIterator) Close() error {
	it.closed = true
	it.buf = nil
	return nil
}

// KeyIterator is ObjectIterator projected onto object keys.
type KeyIterator struct {
	objects *ObjectIterator
}

// Next advances to the next key.
func (it *KeyIterator) Next() bool {
	return it.objects.Next()
}

// Key returns the current object key. Only valid after Next returned true.
func (it *KeyIterator) Key() string {
	return it.objects.Object().Key
}

// Err returns the error that terminated the iteration, if any.
func (it *KeyIterator) Err() error {
	return it.objects.Err()
}

// Close abandons the iteration early. Idempotent.
func (it *KeyIterator) Close() error {
	return it.objects.Close()
}
