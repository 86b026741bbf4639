package tree

import (
	"context"
	"sync"
)

/*
Store is an interface to manage a store
where grown trees can be kept under a key,
retrieved and deleted.

All it methods take a context that may allow
cancelling the operation (thus forcing the return
of an error) if the implementation allows it.
*/
type Store interface {
	// Put takes a key and a tree and stores the
	// tree under the key, replacing any tree
	// previously stored under it. It returns
	// an error if the tree cannot be stored.
	Put(ctx context.Context, key string, t *Tree) error
	// Get takes a key and returns the tree in the
	// store under that key (or nil if it cannot be
	// found) or an error if the store cannot be
	// queried
	Get(ctx context.Context, key string) (*Tree, error)
	// Delete takes a key and deletes the tree
	// under it. It returns an error if the tree
	// exists but the deletion cannot be performed.
	Delete(ctx context.Context, key string) error
	// Close closes the store, implementations should
	// free any resources in use as well as ensure
	// any pending changes are applied before returning
	// (unless the context expires).
	Close(ctx context.Context) error
}

type memoryStore struct {
	trees map[string]*Tree
	lock  *sync.RWMutex
}

// NewMemoryStore returns an implementation
// of Store with the process memory space
// as underlying backend
func NewMemoryStore() Store {
	return &memoryStore{
		trees: make(map[string]*Tree),
		lock:  &sync.RWMutex{},
	}
}

func (ms *memoryStore) Put(ctx context.Context, key string, t *Tree) error {
	return ms.withLock(ctx, func(ctx context.Context) error {
		ms.trees[key] = t
		return nil
	})
}

func (ms *memoryStore) Get(ctx context.Context, key string) (*Tree, error) {
	var t *Tree
	err := ms.withRLock(ctx, func(ctx context.Context) error {
		t = ms.trees[key]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (ms *memoryStore) Delete(ctx context.Context, key string) error {
	return ms.withLock(ctx, func(ctx context.Context) error {
		delete(ms.trees, key)
		return nil
	})
}

func (ms *memoryStore) Close(ctx context.Context) error {
	return nil
}

func (ms *memoryStore) withLock(ctx context.Context, f func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	gotLock := make(chan struct{})
	go func() {
		ms.lock.Lock()
		select {
		case <-ctx.Done():
			ms.lock.Unlock()
		case gotLock <- struct{}{}:
		}
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-gotLock:
		defer ms.lock.Unlock()
	}
	return f(ctx)
}

func (ms *memoryStore) withRLock(ctx context.Context, f func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	gotLock := make(chan struct{})
	go func() {
		ms.lock.RLock()
		select {
		case <-ctx.Done():
			ms.lock.RUnlock()
		case gotLock <- struct{}{}:
		}
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-gotLock:
		defer ms.lock.RUnlock()
	}
	return f(ctx)
}
