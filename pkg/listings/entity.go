package listings

// Значения-заглушки для полей, отсутствующих в ответе внешнего API.
// Каждая нормализованная вакансия всегда полностью заполнена.
const (
	SentinelText        = "N/A"
	SentinelLink        = "#"
	SentinelDescription = "No description available."
)

// JobListing — нормализованная вакансия из внешнего API.
// Ключи JSON совместимы с клиентским приложением.
type JobListing struct {
	Role        string `json:"Role"`
	Company     string `json:"Company"`
	Location    string `json:"Location"`
	Link        string `json:"Link"`
	Description string `json:"Description"`
}

// Projection — сокращённое представление сохранённой вакансии.
type Projection struct {
	Role        string `json:"Role"`
	Company     string `json:"Company"`
	Description string `json:"Description"`
}

// Project возвращает сокращённое представление вакансии.
func (j JobListing) Project() Projection {
	return Projection{Role: j.Role, Company: j.Company, Description: j.Description}
}

func orSentinel(v, sentinel string) string {
	if v == "" {
		return sentinel
	}
	return v
}
