// Code generated by MockGen. DO NOT EDIT.
// Source: ./service.go
//
// Generated by this command:
//
//	mockgen -source=./service.go -package=svcmocks -destination=./mocks/service.mock.go -typed Service
//

// Package svcmocks is a generated GoMock package.
package svcmocks

import (
	context "context"
	reflect "reflect"

	domain "github.com/ecodeclub/welcome/internal/welcome/internal/domain"
	gomock "go.uber.org/mock/gomock"
)

// MockService is a mock of Service interface.
type MockService struct {
	ctrl     *gomock.Controller
	recorder *MockServiceMockRecorder
	isgomock struct{}
}

// MockServiceMockRecorder is the mock recorder for MockService.
type MockServiceMockRecorder struct {
	mock *MockService
}

// NewMockService creates a new mock instance.
func NewMockService(ctrl *gomock.Controller) *MockService {
	mock := &MockService{ctrl: ctrl}
	mock.recorder = &MockServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockService) EXPECT() *MockServiceMockRecorder {
	return m.recorder
}

// Claim mocks base method.
func (m *MockService) Claim(ctx context.Context, email string) (domain.Issuance, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Claim", ctx, email)
	ret0, _ := ret[0].(domain.Issuance)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Claim indicates an expected call of Claim.
func (mr *MockServiceMockRecorder) Claim(ctx, email any) *MockServiceClaimCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Claim", reflect.TypeOf((*MockService)(nil).Claim), ctx, email)
	return &MockServiceClaimCall{Call: call}
}

// MockServiceClaimCall wrap *gomock.Call
type MockServiceClaimCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return
func (c *MockServiceClaimCall) Return(arg0 domain.Issuance, arg1 error) *MockServiceClaimCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do
func (c *MockServiceClaimCall) Do(f func(context.Context, string) (domain.Issuance, error)) *MockServiceClaimCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn
func (c *MockServiceClaimCall) DoAndReturn(f func(context.Context, string) (domain.Issuance, error)) *MockServiceClaimCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}
