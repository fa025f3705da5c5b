// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=requestevent_test
//

// Package requestevent_test is a generated GoMock package.
package requestevent_test

import (
	requestevent "dispatch/internal/service/requestevent"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockHandlerFactory is a mock of HandlerFactory interface.
type MockHandlerFactory struct {
	ctrl     *gomock.Controller
	recorder *MockHandlerFactoryMockRecorder
	isgomock struct{}
}

// MockHandlerFactoryMockRecorder is the mock recorder for MockHandlerFactory.
type MockHandlerFactoryMockRecorder struct {
	mock *MockHandlerFactory
}

// NewMockHandlerFactory creates a new mock instance.
func NewMockHandlerFactory(ctrl *gomock.Controller) *MockHandlerFactory {
	mock := &MockHandlerFactory{ctrl: ctrl}
	mock.recorder = &MockHandlerFactoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHandlerFactory) EXPECT() *MockHandlerFactoryMockRecorder {
	return m.recorder
}

// GetHandler mocks base method.
func (m *MockHandlerFactory) GetHandler(status string) (requestevent.ExecuteFn, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetHandler", status)
	ret0, _ := ret[0].(requestevent.ExecuteFn)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetHandler indicates an expected call of GetHandler.
func (mr *MockHandlerFactoryMockRecorder) GetHandler(status any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetHandler", reflect.TypeOf((*MockHandlerFactory)(nil).GetHandler), status)
}
