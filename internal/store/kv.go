// Package store persists the planner's durable state — saved weekly
// plans, per-day block orders, and manual time overrides — behind a small
// keyed string store so any backend can be substituted.
package store

import (
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// KV is the injected persistence boundary: namespaced string keys with
// string values. A missing key reads as absent, never as an error.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// DiskKV stores values as files under a base directory, one file per key,
// with slashes in keys mapping to subdirectories.
type DiskKV struct {
	d *diskv.Diskv
}

// NewDiskKV opens (creating if needed) a disk-backed store rooted at
// basePath.
func NewDiskKV(basePath string) *DiskKV {
	return &DiskKV{d: diskv.New(diskv.Options{
		BasePath: basePath,
		AdvancedTransform: func(key string) *diskv.PathKey {
			parts := strings.Split(key, "/")
			return &diskv.PathKey{
				Path:     parts[:len(parts)-1],
				FileName: parts[len(parts)-1],
			}
		},
		InverseTransform: func(pk *diskv.PathKey) string {
			if len(pk.Path) == 0 {
				return pk.FileName
			}
			return strings.Join(pk.Path, "/") + "/" + pk.FileName
		},
		CacheSizeMax: 1024 * 1024,
	})}
}

func (s *DiskKV) Get(key string) (string, bool) {
	val, err := s.d.Read(key)
	if err != nil {
		return "", false
	}
	return string(val), true
}

func (s *DiskKV) Set(key, value string) error {
	return s.d.Write(key, []byte(value))
}

// MemKV is an in-memory KV for tests.
type MemKV struct {
	m map[string]string
}

func NewMemKV() *MemKV {
	return &MemKV{m: make(map[string]string)}
}

func (s *MemKV) Get(key string) (string, bool) {
	v, ok := s.m[key]
	return v, ok
}

func (s *MemKV) Set(key, value string) error {
	s.m[key] = value
	return nil
}
