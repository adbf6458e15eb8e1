package models

import (
	"encoding/json"
	"sort"
	"time"
)

// Schedule guarda as horas livres de um mecânico em um dia.
// Hours é um array JSON de strings "15:04"; mutação sempre via
// AddHour/RemoveHour para não duplicar horário.
type Schedule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MechanicID uint `gorm:"uniqueIndex:idx_mechanic_date" json:"mechanic_id"`
	Mechanic   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"mechanic"`

	Date  string `gorm:"size:10;uniqueIndex:idx_mechanic_date" json:"date"`
	Hours string `gorm:"type:text" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Schedule) HourList() []string {
	if s.Hours == "" {
		return []string{}
	}

	var hours []string
	if err := json.Unmarshal([]byte(s.Hours), &hours); err != nil {
		return []string{}
	}
	return hours
}

func (s *Schedule) SetHourList(hours []string) {
	seen := make(map[string]bool, len(hours))
	out := make([]string, 0, len(hours))
	for _, h := range hours {
		if seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, h)
	}
	sort.Strings(out)

	b, _ := json.Marshal(out)
	s.Hours = string(b)
}

func (s *Schedule) HasHour(hour string) bool {
	for _, h := range s.HourList() {
		if h == hour {
			return true
		}
	}
	return false
}

// RemoveHour retorna false se a hora não estava disponível.
func (s *Schedule) RemoveHour(hour string) bool {
	hours := s.HourList()
	for i, h := range hours {
		if h == hour {
			s.SetHourList(append(hours[:i], hours[i+1:]...))
			return true
		}
	}
	return false
}

func (s *Schedule) AddHour(hour string) {
	s.SetHourList(append(s.HourList(), hour))
}

// MarshalJSON expõe as horas como array em vez da coluna crua.
func (s Schedule) MarshalJSON() ([]byte, error) {
	type alias Schedule
	return json.Marshal(struct {
		alias
		HourList []string `json:"hours"`
	}{
		alias:    alias(s),
		HourList: s.HourList(),
	})
}
