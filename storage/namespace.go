package storage

// Namespace prefixes every key with prefix + ":" so several storefront
// sessions can share one underlying store.
func Namespace(s Store, prefix string) Store {
	return &namespaced{inner: s, prefix: prefix + ":"}
}

type namespaced struct {
	inner  Store
	prefix string
}

func (n *namespaced) Get(key string) ([]byte, error) { return n.inner.Get(n.prefix + key) }

func (n *namespaced) Set(key string, value []byte) error { return n.inner.Set(n.prefix+key, value) }

func (n *namespaced) Remove(key string) error { return n.inner.Remove(n.prefix + key) }
