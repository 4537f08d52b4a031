package store

import "github.com/diap-network/diap"

// Move references for all storage types into this package for shorter
// names everywhere.

type Model = diap.Model
type SetDeleter = diap.SetDeleter
type Batch = diap.Batch
type ReadOnlyKVStore = diap.ReadOnlyKVStore
type KVStore = diap.KVStore
type Iterator = diap.Iterator
type CacheableKVStore = diap.CacheableKVStore
type KVCacheWrap = diap.KVCacheWrap
