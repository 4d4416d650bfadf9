// Package entities определяет доменные сущности платформы вакансий.
package entities

import "time"

// Статусы учетной записи (административный уровень).
const (
	StatusUser      = "user"
	StatusModerator = "moderator"
	StatusAdmin     = "admin"
)

// Роли учетной записи (бизнес-уровень). У модераторов и администраторов
// роль отсутствует (пустая строка).
const (
	RoleJobseeker = "jobseeker"
	RoleEmployer  = "employer"
	RoleNone      = ""
)

// User представляет учетную запись платформы. Пароль хранится в открытом
// виде - унаследованная особенность исходных данных, сознательно сохранена.
type User struct {
	ID               int64     `json:"id"`
	FullName         string    `json:"fullName"`
	Username         string    `json:"username"`
	Password         string    `json:"password"`
	Phone            string    `json:"phone"`
	Status           string    `json:"status"`
	Role             string    `json:"role,omitempty"`
	RegistrationDate time.Time `json:"registrationDate"`
	IsActive         *bool     `json:"isActive,omitempty"`
	Company          string    `json:"company,omitempty"`
	Position         string    `json:"position,omitempty"`
}

// Active сообщает, активна ли учетная запись. Отсутствующее поле isActive
// в старых записях означает активную учетную запись.
func (u *User) Active() bool {
	return u.IsActive == nil || *u.IsActive
}

// Normalize подставляет документированные значения по умолчанию для
// записей, сохраненных до появления соответствующих полей.
func (u *User) Normalize() {
	if u.Status == "" {
		u.Status = StatusUser
	}
	if u.Role == "" && u.Status == StatusUser {
		u.Role = RoleJobseeker
	}
	if u.IsActive == nil {
		active := true
		u.IsActive = &active
	}
}

// Sanitized возвращает копию без пароля для выдачи наружу.
func (u *User) Sanitized() User {
	clean := *u
	clean.Password = ""
	return clean
}
