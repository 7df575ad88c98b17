package mocks

// MockBackend is a map-backed storage.Backend with programmable
// failures, used to exercise engine error paths.
type MockBackend struct {
	Data map[string]string

	GetErr    error
	SetErr    error
	DeleteErr error
	ScanErr   error

	// SetFailures fails Set for specific keys only, letting tests
	// interrupt a commit partway through.
	SetFailures map[string]error
}

func NewBackend() *MockBackend {
	return &MockBackend{
		Data:        make(map[string]string),
		SetFailures: make(map[string]error),
	}
}

func (m *MockBackend) Get(key string) (string, bool, error) {
	if m.GetErr != nil {
		return "", false, m.GetErr
	}

	value, ok := m.Data[key]
	return value, ok, nil
}

func (m *MockBackend) Set(key string, value string) error {
	if m.SetErr != nil {
		return m.SetErr
	}

	if err, ok := m.SetFailures[key]; ok {
		return err
	}

	m.Data[key] = value
	return nil
}

func (m *MockBackend) Delete(key string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}

	delete(m.Data, key)
	return nil
}

func (m *MockBackend) ScanByValue(value string) ([]string, error) {
	if m.ScanErr != nil {
		return nil, m.ScanErr
	}

	var keys []string

	for key, stored := range m.Data {
		if stored == value {
			keys = append(keys, key)
		}
	}

	return keys, nil
}
