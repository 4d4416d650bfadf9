package entities

import "time"

// Статусы модерации вакансий и резюме.
const (
	ModerationPending  = "pending"
	ModerationApproved = "approved"
	ModerationRejected = "rejected"
)

// Типы занятости.
const (
	EmploymentFull    = "full"
	EmploymentPart    = "part"
	EmploymentRemote  = "remote"
	EmploymentProject = "project"
)

// Vacancy представляет вакансию работодателя. EmployerID хранится строкой -
// так записывал исходный клиент, формат сохранен для совместимости данных.
type Vacancy struct {
	ID               int64      `json:"id"`
	Title            string     `json:"title"`
	Company          string     `json:"company"`
	Salary           *int64     `json:"salary"`
	City             string     `json:"city"`
	Region           string     `json:"region,omitempty"`
	Description      string     `json:"description"`
	Requirements     string     `json:"requirements,omitempty"`
	Responsibilities string     `json:"responsibilities,omitempty"`
	Conditions       string     `json:"conditions,omitempty"`
	Employment       []string   `json:"employment,omitempty"`
	Profession       string     `json:"profession,omitempty"`
	Experience       string     `json:"experience,omitempty"`
	EmployerID       string     `json:"employerId"`
	EmployerName     string     `json:"employerName,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	ModerationStatus string     `json:"moderationStatus,omitempty"`
	ModerationDate   *time.Time `json:"moderationDate"`
	ModeratorID      *int64     `json:"moderatorId"`
	RejectReason     *string    `json:"rejectReason"`
}

// Normalize подставляет значения по умолчанию для старых записей.
// Вакансии без статуса модерации считаются одобренными: до появления
// модерации все опубликованные вакансии были видны в поиске.
func (v *Vacancy) Normalize() {
	if v.ModerationStatus == "" {
		v.ModerationStatus = ModerationApproved
	}
}
