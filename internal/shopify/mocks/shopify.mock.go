// Code generated by MockGen. DO NOT EDIT.
// Source: ./type.go
//
// Generated by this command:
//
//	mockgen -source=./type.go -package=shopifymocks -destination=./mocks/shopify.mock.go -typed Service
//

// Package shopifymocks is a generated GoMock package.
package shopifymocks

import (
	context "context"
	reflect "reflect"

	shopify "github.com/ecodeclub/welcome/internal/shopify"
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

// CreateDiscountCode mocks base method.
func (m *MockService) CreateDiscountCode(ctx context.Context, candidate string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateDiscountCode", ctx, candidate)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateDiscountCode indicates an expected call of CreateDiscountCode.
func (mr *MockServiceMockRecorder) CreateDiscountCode(ctx, candidate any) *MockServiceCreateDiscountCodeCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateDiscountCode", reflect.TypeOf((*MockService)(nil).CreateDiscountCode), ctx, candidate)
	return &MockServiceCreateDiscountCodeCall{Call: call}
}

// MockServiceCreateDiscountCodeCall wrap *gomock.Call
type MockServiceCreateDiscountCodeCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return
func (c *MockServiceCreateDiscountCodeCall) Return(arg0 string, arg1 error) *MockServiceCreateDiscountCodeCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do
func (c *MockServiceCreateDiscountCodeCall) Do(f func(context.Context, string) (string, error)) *MockServiceCreateDiscountCodeCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn
func (c *MockServiceCreateDiscountCodeCall) DoAndReturn(f func(context.Context, string) (string, error)) *MockServiceCreateDiscountCodeCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// FindOrCreateCustomer mocks base method.
func (m *MockService) FindOrCreateCustomer(ctx context.Context, email string) (shopify.Customer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindOrCreateCustomer", ctx, email)
	ret0, _ := ret[0].(shopify.Customer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindOrCreateCustomer indicates an expected call of FindOrCreateCustomer.
func (mr *MockServiceMockRecorder) FindOrCreateCustomer(ctx, email any) *MockServiceFindOrCreateCustomerCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindOrCreateCustomer", reflect.TypeOf((*MockService)(nil).FindOrCreateCustomer), ctx, email)
	return &MockServiceFindOrCreateCustomerCall{Call: call}
}

// MockServiceFindOrCreateCustomerCall wrap *gomock.Call
type MockServiceFindOrCreateCustomerCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return
func (c *MockServiceFindOrCreateCustomerCall) Return(arg0 shopify.Customer, arg1 error) *MockServiceFindOrCreateCustomerCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do
func (c *MockServiceFindOrCreateCustomerCall) Do(f func(context.Context, string) (shopify.Customer, error)) *MockServiceFindOrCreateCustomerCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn
func (c *MockServiceFindOrCreateCustomerCall) DoAndReturn(f func(context.Context, string) (shopify.Customer, error)) *MockServiceFindOrCreateCustomerCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// HasOrder mocks base method.
func (m *MockService) HasOrder(ctx context.Context, email string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasOrder", ctx, email)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HasOrder indicates an expected call of HasOrder.
func (mr *MockServiceMockRecorder) HasOrder(ctx, email any) *MockServiceHasOrderCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasOrder", reflect.TypeOf((*MockService)(nil).HasOrder), ctx, email)
	return &MockServiceHasOrderCall{Call: call}
}

// MockServiceHasOrderCall wrap *gomock.Call
type MockServiceHasOrderCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return
func (c *MockServiceHasOrderCall) Return(arg0 bool, arg1 error) *MockServiceHasOrderCall {
	c.Call = c.Call.Return(arg0, arg1)
	return c
}

// Do rewrite *gomock.Call.Do
func (c *MockServiceHasOrderCall) Do(f func(context.Context, string) (bool, error)) *MockServiceHasOrderCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn
func (c *MockServiceHasOrderCall) DoAndReturn(f func(context.Context, string) (bool, error)) *MockServiceHasOrderCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}

// SetWelcomeCode mocks base method.
func (m *MockService) SetWelcomeCode(ctx context.Context, customerID, code string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetWelcomeCode", ctx, customerID, code)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetWelcomeCode indicates an expected call of SetWelcomeCode.
func (mr *MockServiceMockRecorder) SetWelcomeCode(ctx, customerID, code any) *MockServiceSetWelcomeCodeCall {
	mr.mock.ctrl.T.Helper()
	call := mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetWelcomeCode", reflect.TypeOf((*MockService)(nil).SetWelcomeCode), ctx, customerID, code)
	return &MockServiceSetWelcomeCodeCall{Call: call}
}

// MockServiceSetWelcomeCodeCall wrap *gomock.Call
type MockServiceSetWelcomeCodeCall struct {
	*gomock.Call
}

// Return rewrite *gomock.Call.Return
func (c *MockServiceSetWelcomeCodeCall) Return(arg0 error) *MockServiceSetWelcomeCodeCall {
	c.Call = c.Call.Return(arg0)
	return c
}

// Do rewrite *gomock.Call.Do
func (c *MockServiceSetWelcomeCodeCall) Do(f func(context.Context, string, string) error) *MockServiceSetWelcomeCodeCall {
	c.Call = c.Call.Do(f)
	return c
}

// DoAndReturn rewrite *gomock.Call.DoAndReturn
func (c *MockServiceSetWelcomeCodeCall) DoAndReturn(f func(context.Context, string, string) error) *MockServiceSetWelcomeCodeCall {
	c.Call = c.Call.DoAndReturn(f)
	return c
}
