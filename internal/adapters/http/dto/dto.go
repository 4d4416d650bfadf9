// Package dto определяет формы запросов и ответов HTTP фасада.
package dto

import (
	"time"

	"jobdesk/internal/domain/entities"
)

// RegisterRequest - запрос регистрации учетной записи.
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest - запрос входа.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse - ответ на вход или регистрацию.
type AuthResponse struct {
	User      entities.User `json:"user"`
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
}

// VacancyRequest - содержимое вакансии при создании и редактировании.
type VacancyRequest struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Salary           *int64   `json:"salary"`
	City             string   `json:"city"`
	Region           string   `json:"region"`
	Description      string   `json:"description"`
	Requirements     string   `json:"requirements"`
	Responsibilities string   `json:"responsibilities"`
	Conditions       string   `json:"conditions"`
	Employment       []string `json:"employment"`
	Profession       string   `json:"profession"`
	Experience       string   `json:"experience"`
}

// Vacancy возвращает вакансию из формы запроса.
func (r *VacancyRequest) Vacancy(id int64) *entities.Vacancy {
	return &entities.Vacancy{
		ID:               id,
		Title:            r.Title,
		Company:          r.Company,
		Salary:           r.Salary,
		City:             r.City,
		Region:           r.Region,
		Description:      r.Description,
		Requirements:     r.Requirements,
		Responsibilities: r.Responsibilities,
		Conditions:       r.Conditions,
		Employment:       r.Employment,
		Profession:       r.Profession,
		Experience:       r.Experience,
	}
}

// ResumeRequest - содержимое резюме при создании.
type ResumeRequest struct {
	Title         string                    `json:"title"`
	Personal      entities.PersonalInfo     `json:"personal"`
	Education     []entities.EducationEntry `json:"education"`
	Experience    entities.Experience       `json:"experience"`
	Skills        []string                  `json:"skills"`
	DesiredSalary *int64                    `json:"desiredSalary"`
}

// Resume возвращает резюме из формы запроса.
func (r *ResumeRequest) Resume() *entities.Resume {
	return &entities.Resume{
		Title:         r.Title,
		Personal:      r.Personal,
		Education:     r.Education,
		Experience:    r.Experience,
		Skills:        r.Skills,
		DesiredSalary: r.DesiredSalary,
	}
}

// ApplyRequest - запрос отклика на вакансию.
type ApplyRequest struct {
	VacancyID int64 `json:"vacancyId"`
	ResumeID  int64 `json:"resumeId"`
}

// ReviewRequest - решение работодателя по отклику.
type ReviewRequest struct {
	Status string `json:"status"`
}

// RejectRequest - отклонение вакансии или резюме модератором.
type RejectRequest struct {
	Reason string `json:"reason"`
}

// ModeratorRequest - запрос создания модератора.
type ModeratorRequest struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// ProfileRequest - обновление профиля-надстройки.
type ProfileRequest struct {
	BirthDate string `json:"birthDate"`
	Email     string `json:"email"`
	Avatar    string `json:"avatar"`
}
