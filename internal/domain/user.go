package domain

import "time"

// Language is a user's interface language
type Language string

const (
	LangFa Language = "fa"
	LangEn Language = "en"
)

// ParseLanguage validates a stored or user-supplied language code
func ParseLanguage(s string) (Language, bool) {
	switch Language(s) {
	case LangFa:
		return LangFa, true
	case LangEn:
		return LangEn, true
	}
	return "", false
}

// UserProfile represents a bot user
type UserProfile struct {
	UserID    int64
	Username  string
	FirstName string
	LastName  string
	Language  Language // empty until the user picks one
	CreatedAt time.Time
}

// HasLanguage reports whether the profile carries a recognized language,
// meaning onboarding can skip the language picker.
func (p *UserProfile) HasLanguage() bool {
	_, ok := ParseLanguage(string(p.Language))
	return ok
}
