package cache

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/gordon/config"
)

// The cache holds large immutable objects that are expensive to build and
// safe to share, such as gaddags and letter distributions. Keys should be
// prefixed by the kind of object, e.g. "gaddag:NWL23".

type cache struct {
	sync.Mutex
	objects map[string]any
}

type loadFunc func(cfg *config.Config, key string) (any, error)

// GlobalObjectCache is our global object cache, of course.
var GlobalObjectCache *cache

var once sync.Once

func (c *cache) get(cfg *config.Config, key string, loadFunc loadFunc) (any, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	log.Debug().Str("key", key).Msg("loading into cache")
	obj, err := loadFunc(cfg, key)
	if err != nil {
		return nil, err
	}
	c.objects[key] = obj
	return obj, nil
}

func CreateGlobalObjectCache() {
	GlobalObjectCache = &cache{objects: make(map[string]any)}
}

// Load returns the object for key, calling loadFunc the first time the key
// is requested. Failed loads are not cached.
func Load(cfg *config.Config, key string, loadFunc loadFunc) (any, error) {
	once.Do(func() {
		if GlobalObjectCache == nil {
			CreateGlobalObjectCache()
		}
	})
	return GlobalObjectCache.get(cfg, key, loadFunc)
}

// Put stores an object under a key, replacing anything there.
func Put(key string, obj any) {
	once.Do(func() {
		if GlobalObjectCache == nil {
			CreateGlobalObjectCache()
		}
	})
	GlobalObjectCache.Lock()
	defer GlobalObjectCache.Unlock()
	GlobalObjectCache.objects[key] = obj
}
