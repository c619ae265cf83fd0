package domain

// UserSession tracks a user's current workout: the queued videos, which of them
// have been checked off, and lifetime counters.
type UserSession struct {
	UserName         string   `bson:"userName" json:"userName"`
	Videos           []string `bson:"videos" json:"videos"`
	Checks           []bool   `bson:"checks" json:"checks"`
	CompleteSessions int      `bson:"completesessions" json:"completesessions"`
	OpenedSessions   int      `bson:"openedsessions" json:"openedsessions"`
	Finished         bool     `bson:"finished" json:"finished"`
}

// NewUserSession returns the initial session created alongside a new user.
func NewUserSession(userName string) *UserSession {
	return &UserSession{
		UserName: userName,
		Videos:   []string{},
		Checks:   []bool{},
		Finished: true,
	}
}
