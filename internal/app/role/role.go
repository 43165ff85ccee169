package role

// Role определяет роль пользователя на площадке
type Role int

const (
	Company Role = iota // корпоративный клиент
	Dealer              // дилер (владелец складских площадей)
	Agency              // маркетинговое агентство
	Admin               // модератор платформы
)

func (r Role) String() string {
	switch r {
	case Company:
		return "company"
	case Dealer:
		return "dealer"
	case Agency:
		return "agency"
	case Admin:
		return "admin"
	}
	return "unknown"
}
