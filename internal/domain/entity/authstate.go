package entity

// AuthPhase is the explicit session state machine. The storefront never
// reasons about boolean flag combinations; every consumer switches on the
// phase instead.
type AuthPhase string

const (
	// AuthIdle means the session has not been initialized yet.
	AuthIdle AuthPhase = "idle"
	// AuthLoading means a persisted session was found and is being verified.
	AuthLoading AuthPhase = "loading"
	// AuthAuthenticated means the token was verified and a user is attached.
	AuthAuthenticated AuthPhase = "authenticated"
	// AuthAnonymous means there is no valid session.
	AuthAnonymous AuthPhase = "anonymous"
)

// AuthState is a snapshot of the session: the phase plus, when
// authenticated, the current user and bearer token.
type AuthState struct {
	Phase AuthPhase `json:"phase"`
	User  *User     `json:"user,omitempty"`
	Token string    `json:"-"`
}

// IsAuthenticated reports whether the state carries a verified user.
func (s AuthState) IsAuthenticated() bool {
	return s.Phase == AuthAuthenticated && s.User != nil
}
