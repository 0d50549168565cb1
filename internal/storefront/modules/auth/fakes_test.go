package auth

import "context"

// fakeGateway implements AuthGateway for tests with configurable grants
// and error injection.
type fakeGateway struct {
	grant       AuthGrant
	loginErr    error
	registerErr error
	lastEmail   string
	lastSignup  SignupInput
}

var _ AuthGateway = (*fakeGateway)(nil)

func (f *fakeGateway) Login(_ context.Context, email, _ string) (AuthGrant, error) {
	f.lastEmail = email
	if f.loginErr != nil {
		return AuthGrant{}, f.loginErr
	}
	if f.grant.User.ID == "" {
		return AuthGrant{Token: "token-1", User: UserView{ID: "b1", Name: "Test Buyer", Email: email}}, nil
	}
	return f.grant, nil
}

func (f *fakeGateway) Register(_ context.Context, input SignupInput) (AuthGrant, error) {
	f.lastSignup = input
	if f.registerErr != nil {
		return AuthGrant{}, f.registerErr
	}
	if f.grant.User.ID == "" {
		return AuthGrant{Token: "token-1", User: UserView{ID: "b1", Name: input.Name, Email: input.Email}}, nil
	}
	return f.grant, nil
}
