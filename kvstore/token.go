package kvstore

// TokenStore adapts a Store into the token interface the API client expects.
// Read failures degrade to an unauthenticated session rather than erroring.
type TokenStore struct {
	store Store
	key   string
}

// NewTokenStore wraps store. An empty key defaults to "auth.token".
func NewTokenStore(store Store, key string) *TokenStore {
	if key == "" {
		key = "auth.token"
	}
	return &TokenStore{store: store, key: key}
}

func (t *TokenStore) Token() string {
	v, ok, err := t.store.Get(t.key)
	if err != nil || !ok {
		return ""
	}
	return v
}

func (t *TokenStore) Save(token string) error {
	return t.store.Set(t.key, token)
}

func (t *TokenStore) Clear() error {
	return t.store.Delete(t.key)
}
