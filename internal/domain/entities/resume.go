package entities

import "time"

// PersonalInfo - личные данные соискателя в резюме.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address,omitempty"`
}

// EducationEntry - запись об образовании; резюме содержит минимум одну.
type EducationEntry struct {
	Institution string `json:"institution"`
	Specialty   string `json:"specialty"`
	Year        int    `json:"year"`
}

// ExperienceEntry - запись об опыте работы.
type ExperienceEntry struct {
	Company          string `json:"company"`
	Position         string `json:"position"`
	Period           string `json:"period"`
	Responsibilities string `json:"responsibilities,omitempty"`
}

// Experience - блок опыта работы резюме.
type Experience struct {
	HasExperience bool              `json:"hasExperience"`
	Items         []ExperienceEntry `json:"items"`
}

// Resume представляет резюме соискателя. Хранится в разделе владельца
// (resumes_<userId>); UserID и UserFullName заполняются при сборке сводного
// списка по всем владельцам.
type Resume struct {
	ID               int64            `json:"id"`
	Title            string           `json:"title"`
	CreatedAt        time.Time        `json:"createdAt"`
	Personal         PersonalInfo     `json:"personal"`
	Education        []EducationEntry `json:"education"`
	Experience       Experience       `json:"experience"`
	Skills           []string         `json:"skills"`
	DesiredSalary    *int64           `json:"desiredSalary"`
	ModerationStatus string           `json:"moderationStatus,omitempty"`
	ModerationDate   *time.Time       `json:"moderationDate"`
	ModeratorID      *int64           `json:"moderatorId"`
	RejectReason     *string          `json:"rejectReason"`
	UserID           int64            `json:"userId,omitempty"`
	UserFullName     string           `json:"userFullName,omitempty"`
}

// Normalize подставляет значения по умолчанию для старых записей.
// Резюме без статуса модерации считается ожидающим проверки - в отличие
// от вакансий; асимметрия унаследована и сохранена намеренно.
func (r *Resume) Normalize() {
	if r.ModerationStatus == "" {
		r.ModerationStatus = ModerationPending
	}
}
