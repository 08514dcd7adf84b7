package badger

// NewMemorySnapshotStore creates an in-memory snapshot store for tests.
// The returned backend must be closed after the store.
func NewMemorySnapshotStore() (*SnapshotStore, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, err
	}
	store, err := NewSnapshotStore(backend)
	if err != nil {
		backend.Close()
		return nil, nil, err
	}
	return store, backend, nil
}
