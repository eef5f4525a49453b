package entities

// Language identifies one of the two languages a site is published in.
type Language int

const (
	Primary Language = iota
	Secondary
)

// Other returns the opposite language.
func (l Language) Other() Language {
	if l == Secondary {
		return Primary
	}
	return Secondary
}

func (l Language) String() string {
	if l == Secondary {
		return "secondary"
	}
	return "primary"
}

// ParseLanguage accepts the role names used in catalog files and the database.
func ParseLanguage(s string) (Language, bool) {
	switch s {
	case "primary":
		return Primary, true
	case "secondary":
		return Secondary, true
	}
	return Primary, false
}
