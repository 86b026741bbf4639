package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jonathanhungc/id3/tree"
	"github.com/jonathanhungc/id3/tree/json"
	"github.com/jonathanhungc/id3/tree/redisstore"
	"github.com/spf13/cobra"
	redis "gopkg.in/redis.v5"
)

const redisKeyPrefix = "id3:tree"

// treeStoreConfig holds the flags of commands that keep trees on redis.
type treeStoreConfig struct {
	redisAddr string
	redisDB   int
	redisKey  string
	redisTTL  time.Duration
}

func (tsc *treeStoreConfig) addFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&(tsc.redisAddr), "redis-addr", "", "address (host:port) of a redis server keeping trees")
	cmd.PersistentFlags().IntVar(&(tsc.redisDB), "redis-db", 0, "redis DB keeping trees")
	cmd.PersistentFlags().StringVar(&(tsc.redisKey), "redis-key", "", "key of the tree on the redis DB")
	cmd.PersistentFlags().DurationVar(&(tsc.redisTTL), "redis-ttl", 0, "time after which a tree stored on redis expires (defaults to 0: never)")
}

func (tsc *treeStoreConfig) enabled() bool {
	return tsc.redisAddr != ""
}

func (tsc *treeStoreConfig) Validate() error {
	if tsc.enabled() && tsc.redisKey == "" {
		return fmt.Errorf("required redis-key flag was not set along with redis-addr")
	}
	return nil
}

func (tsc *treeStoreConfig) store(sch *schema) tree.Store {
	rc := redis.NewClient(&redis.Options{Addr: tsc.redisAddr, DB: tsc.redisDB})
	return &closingStore{redisstore.New(rc, redisKeyPrefix, tsc.redisTTL, redisstore.NewJSONEncodeDecoder(sch.attributes, sch.label)), rc}
}

// closingStore closes the redis client along with the store.
type closingStore struct {
	tree.Store
	rc *redis.Client
}

func (cs *closingStore) Close(ctx context.Context) error {
	err := cs.Store.Close(ctx)
	if cerr := cs.rc.Close(); err == nil {
		err = cerr
	}
	return err
}

/*
loadTree reads a tree from the JSON file at treeInput or, if that is empty,
from the redis DB in the store configuration.
*/
func loadTree(ctx context.Context, l logger, treeInput string, tsc *treeStoreConfig, sch *schema) (*tree.Tree, error) {
	if treeInput == "" {
		if !tsc.enabled() {
			return nil, fmt.Errorf("required tree flag was not set (nor a redis-addr to read the tree from)")
		}
		l.Logf("Reading tree %s from redis at %s...", tsc.redisKey, tsc.redisAddr)
		store := tsc.store(sch)
		defer store.Close(ctx)
		t, err := store.Get(ctx, tsc.redisKey)
		if err != nil {
			return nil, err
		}
		if t == nil {
			return nil, fmt.Errorf("no tree stored under key %s", tsc.redisKey)
		}
		return t, nil
	}
	l.Logf("Reading tree in JSON from %s...", treeInput)
	f, err := os.Open(treeInput)
	if err != nil {
		return nil, fmt.Errorf("reading tree in JSON from %s: %v", treeInput, err)
	}
	defer f.Close()
	t, err := json.ReadJSONTree(f, sch.attributes, sch.label)
	if err != nil {
		err = fmt.Errorf("parsing tree in JSON from %s: %v", treeInput, err)
	}
	return t, err
}
