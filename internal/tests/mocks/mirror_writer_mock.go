package mocks

type MirrorWriterMock struct {
	WriteKeyFunc func(key string) error

	// Keys records every WriteKey call in order.
	Keys []string
}

func (m *MirrorWriterMock) WriteKey(key string) error {
	m.Keys = append(m.Keys, key)
	if m.WriteKeyFunc != nil {
		return m.WriteKeyFunc(key)
	}
	return nil
}
