package validators

import "time"

// IsValidDate aceita datas no formato 2006-01-02.
func IsValidDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// IsValidHour aceita horas no formato 15:04. O tamanho fixo garante que
// a ordenação lexicográfica das horas é a ordenação cronológica.
func IsValidHour(hour string) bool {
	if len(hour) != 5 {
		return false
	}
	_, err := time.Parse("15:04", hour)
	return err == nil
}
