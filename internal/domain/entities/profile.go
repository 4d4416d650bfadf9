package entities

// Profile - свободная надстройка над учетной записью (userData_<userId>),
// хранится отдельно от записи User и не участвует в модерации.
type Profile struct {
	BirthDate string `json:"birthDate,omitempty"`
	Email     string `json:"email,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
}

// Значения профиля по умолчанию.
const (
	DefaultBirthDate = "1990-01-01"
	DefaultAvatar    = "images/default-avatar.png"
)

// WithDefaults возвращает профиль с подставленными значениями по умолчанию;
// email по умолчанию выводится из логина владельца.
func (p Profile) WithDefaults(username string) Profile {
	if p.BirthDate == "" {
		p.BirthDate = DefaultBirthDate
	}
	if p.Email == "" {
		p.Email = username + "@example.com"
	}
	if p.Avatar == "" {
		p.Avatar = DefaultAvatar
	}
	return p
}
