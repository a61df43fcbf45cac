// internal/service/mocks/FieldLabeler.go
package mocks

import "github.com/stretchr/testify/mock"

// FieldLabeler は service.FieldLabeler のモック
type FieldLabeler struct {
	mock.Mock
}

func (m *FieldLabeler) Label(name string) string {
	args := m.Called(name)
	return args.String(0)
}
