package service

import "context"

// Stub profile values returned by [StubGoogleIdentity].
const (
	stubGoogleEmail    = "usuario@gmail.com"
	stubGoogleFullName = "Usuario Google"
	stubGooglePhotoURL = "https://ui-avatars.com/api/?name=Usuario+Google&background=random"
)

// StubGoogleIdentity is a test-only [GoogleIdentity] implementation that
// always succeeds with a fixed profile. No real OAuth flow exists in this
// build; the wiring injects this stub explicitly so the simulation is
// visible at the composition root instead of being buried in the auth
// service.
type StubGoogleIdentity struct{}

func NewStubGoogleIdentity() StubGoogleIdentity {
	return StubGoogleIdentity{}
}

// Identity returns the fixed stub profile.
func (StubGoogleIdentity) Identity(_ context.Context) (email, fullName, photoURL string, err error) {
	return stubGoogleEmail, stubGoogleFullName, stubGooglePhotoURL, nil
}
