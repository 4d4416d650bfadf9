// Package identity выдает четырехзначные идентификаторы, уникальные
// сразу по всем видам сущностей платформы, и мигрирует унаследованные
// идентификаторы (например, миллисекундные отметки времени) к этому
// формату.
package identity

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
)

// Диапазон идентификаторов.
const (
	MinID = 1000
	MaxID = 9999
)

// Число случайных проб до перехода к линейному перебору; при плотности
// занятых значений, характерной для платформы, перебор недостижим.
const maxRandomProbes = 4 * (MaxID - MinID + 1)

// ErrSpaceExhausted возвращается, когда заняты все 9000 значений.
// Исходная реализация в этой ситуации зацикливалась.
var ErrSpaceExhausted = errors.New("identifier space exhausted")

var idPattern = regexp.MustCompile(`^\d{4}$`)

// Allocator выдает свободные идентификаторы методом отбраковки.
// Реестра занятых значений у него нет: объединение идентификаторов
// всех разделов собирает вызывающая сторона.
type Allocator struct {
	intn func(n int) int
}

// New создает аллокатор со стандартным источником случайности.
func New() *Allocator {
	return &Allocator{intn: rand.Intn}
}

// NewWithSource создает аллокатор с детерминированным источником для тестов.
func NewWithSource(rnd *rand.Rand) *Allocator {
	return &Allocator{intn: rnd.Intn}
}

// Valid сообщает, лежит ли идентификатор в четырехзначном диапазоне.
func Valid(id int64) bool {
	return idPattern.MatchString(strconv.FormatInt(id, 10)) && id >= MinID && id <= MaxID
}

// Key возвращает строковую форму идентификатора для множества занятых
// значений (исходные данные хранят идентификаторы и числами, и строками).
func Key(id int64) string {
	return strconv.FormatInt(id, 10)
}

// Allocate возвращает идентификатор, отсутствующий в existing.
// Равномерные случайные пробы; после maxRandomProbes - линейный перебор
// диапазона, что делает поведение около исчерпания детерминированным.
func (a *Allocator) Allocate(existing map[string]struct{}) (int64, error) {
	if len(existing) < MaxID-MinID+1 {
		for probe := 0; probe < maxRandomProbes; probe++ {
			id := int64(MinID + a.intn(MaxID-MinID+1))
			if _, taken := existing[Key(id)]; !taken {
				return id, nil
			}
		}
	}

	for id := int64(MinID); id <= MaxID; id++ {
		if _, taken := existing[Key(id)]; !taken {
			return id, nil
		}
	}
	return 0, ErrSpaceExhausted
}

// MigrateLegacyIDs заменяет каждый идентификатор вне четырехзначного
// диапазона на свежий. Обработка последовательная: выданное значение
// сразу попадает в existing и не может быть выдано следующей записи той
// же партии. Валидные идентификаторы не трогаются, но тоже добавляются
// в existing. Повторный запуск на мигрированных данных возвращает
// changed=false.
func (a *Allocator) MigrateLegacyIDs(ids []int64, existing map[string]struct{}) ([]int64, bool, error) {
	migrated := make([]int64, len(ids))
	changed := false

	for i, id := range ids {
		if Valid(id) {
			migrated[i] = id
			existing[Key(id)] = struct{}{}
			continue
		}

		fresh, err := a.Allocate(existing)
		if err != nil {
			return nil, false, fmt.Errorf("migrating legacy id %d: %w", id, err)
		}
		migrated[i] = fresh
		existing[Key(fresh)] = struct{}{}
		changed = true
	}

	return migrated, changed, nil
}
