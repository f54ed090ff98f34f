package domain

import "go.trai.ch/zerr"

// Credentials authenticate requests against the puzzle site.
type Credentials struct {
	SessionID string
	UserAgent string
}

// Validate reports a configuration error if either credential is missing.
func (c Credentials) Validate() error {
	if c.SessionID == "" {
		return zerr.With(zerr.Wrap(ErrMissingCredentials, ErrMissingSessionID.Error()), "env", SessionIDEnvVar)
	}
	if c.UserAgent == "" {
		return zerr.With(zerr.Wrap(ErrMissingCredentials, ErrMissingUserAgent.Error()), "env", UserAgentEnvVar)
	}
	return nil
}
