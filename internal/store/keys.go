// Package store реализует репозитории сущностей поверх хранилища
// ключ-значение. Раскладка ключей повторяет localStorage исходного
// клиента, поэтому накопленные данные читаются без преобразований.
package store

import "strconv"

// Ключи и префиксы разделов хранилища.
const (
	KeyUsers       = "users"
	KeyVacancies   = "vacancies"
	KeyCurrentUser = "currentUser"

	ResumesPrefix              = "resumes_"
	ApplicationsPrefix         = "applications_"
	EmployerApplicationsPrefix = "applications_to_employer_"
	UserDataPrefix             = "userData_"
)

// ResumesKey возвращает ключ раздела резюме владельца.
func ResumesKey(ownerID int64) string {
	return ResumesPrefix + strconv.FormatInt(ownerID, 10)
}

// ApplicationsKey возвращает ключ раздела откликов соискателя.
func ApplicationsKey(applicantID int64) string {
	return ApplicationsPrefix + strconv.FormatInt(applicantID, 10)
}

// EmployerApplicationsKey возвращает ключ раздела откликов работодателя.
// Идентификатор работодателя хранится строкой, как в записях вакансий.
func EmployerApplicationsKey(employerID string) string {
	return EmployerApplicationsPrefix + employerID
}

// UserDataKey возвращает ключ профиля-надстройки учетной записи.
func UserDataKey(userID int64) string {
	return UserDataPrefix + strconv.FormatInt(userID, 10)
}
