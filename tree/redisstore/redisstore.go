/*
Package redisstore provides an implementation of tree.Store that
keeps grown trees on a redis DB.
*/
package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathanhungc/id3/feature"
	"github.com/jonathanhungc/id3/tree"
	"github.com/jonathanhungc/id3/tree/json"
	redis "gopkg.in/redis.v5"
)

/*
EncodeDecoder is an interface for objects
that allow encoding trees into slices of
bytes and decoding them back to trees.
*/
type EncodeDecoder interface {

	//Encode receives a *tree.Tree
	//and returns a slice of bytes with the tree
	//encoded or an error if the encoding could not
	//be performed for some reason.
	Encode(*tree.Tree) ([]byte, error)

	//Decode receives a slice of bytes
	//and returns a *tree.Tree decoded from the
	//slice of bytes or an error if the decoding
	//could not be performed for some reason.
	Decode([]byte) (*tree.Tree, error)
}

type jsonEncodeDecoder struct {
	attributes *feature.Table
	label      string
}

type redisStore struct {
	rc     *redis.Client
	prefix string
	ttl    time.Duration
	encdec EncodeDecoder
}

/*
New builds a tree.Store backed by a redis DB. Trees are kept under the
key prefix:key encoded with the given EncodeDecoder, and expire after
the given ttl (a zero ttl keeps them until deleted).
*/
func New(rc *redis.Client, prefix string, ttl time.Duration, encdec EncodeDecoder) tree.Store {
	return &redisStore{rc, prefix, ttl, encdec}
}

/*
NewJSONEncodeDecoder returns an EncodeDecoder that represents trees with
the nested JSON of the tree/json package, resolving attributes on the given
table and setting the given label name on decoded trees.
*/
func NewJSONEncodeDecoder(attributes *feature.Table, label string) EncodeDecoder {
	return &jsonEncodeDecoder{attributes, label}
}

func (jed *jsonEncodeDecoder) Encode(t *tree.Tree) ([]byte, error) {
	return json.Marshal(t)
}

func (jed *jsonEncodeDecoder) Decode(data []byte) (*tree.Tree, error) {
	return json.Unmarshal(data, jed.attributes, jed.label)
}

func (rs *redisStore) Put(ctx context.Context, key string, t *tree.Tree) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	redisKey := rs.keyFor(key)
	data, err := rs.encdec.Encode(t)
	if err != nil {
		return fmt.Errorf("storing tree %q: encoding tree: %v", redisKey, err)
	}
	_, err = rs.rc.Set(redisKey, data, rs.ttl).Result()
	if err != nil {
		return fmt.Errorf("storing tree %q in redis: %v", redisKey, err)
	}
	return nil
}

func (rs *redisStore) Get(ctx context.Context, key string) (*tree.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	redisKey := rs.keyFor(key)
	data, err := rs.rc.Get(redisKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("retrieving tree %q: %v", redisKey, err)
	}
	t, err := rs.encdec.Decode([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("retrieving tree %q: decoding %q: %v", redisKey, data, err)
	}
	return t, nil
}

func (rs *redisStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	redisKey := rs.keyFor(key)
	_, err := rs.rc.Del(redisKey).Result()
	if err != nil {
		return fmt.Errorf("deleting tree %q from redis: %v", redisKey, err)
	}
	return nil
}

func (rs *redisStore) Close(ctx context.Context) error {
	return nil
}

func (rs *redisStore) keyFor(key string) string {
	return fmt.Sprintf("%s:%s", rs.prefix, key)
}
