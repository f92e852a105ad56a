package entities

type Session struct {
	UserID string
	Token  string
}

func (s Session) Authenticated() bool {
	return s.UserID != "" && s.Token != ""
}
