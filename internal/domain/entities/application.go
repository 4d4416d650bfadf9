package entities

import "time"

// Статусы отклика.
const (
	ApplicationSent     = "sent"
	ApplicationApproved = "approved"
	ApplicationRejected = "rejected"
)

// Application - отклик соискателя на вакансию. Хранится дважды: в разделе
// соискателя (applications_<applicantId>) и в разделе работодателя
// (applications_to_employer_<employerId>); обе копии синхронизируются при
// смене статуса. Названия вакансии и резюме - денормализованные снимки на
// момент отклика.
type Application struct {
	ID            int64      `json:"id"`
	VacancyID     int64      `json:"vacancyId"`
	VacancyTitle  string     `json:"vacancyTitle"`
	ResumeID      int64      `json:"resumeId"`
	ResumeTitle   string     `json:"resumeTitle"`
	AppliedAt     time.Time  `json:"appliedAt"`
	Status        string     `json:"status,omitempty"`
	ApplicantID   int64      `json:"applicantId"`
	ApplicantName string     `json:"applicantName"`
	EmployerID    string     `json:"employerId"`
	ReviewedAt    *time.Time `json:"reviewedAt,omitempty"`
}

// Normalize подставляет значения по умолчанию для старых записей.
func (a *Application) Normalize() {
	if a.Status == "" {
		a.Status = ApplicationSent
	}
}
