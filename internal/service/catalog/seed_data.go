package catalog

import "github.com/Berlkot/django-proj-kek-2025/internal/domain"

type roleSeed struct {
	name string
	caps domain.CapabilitySet
}

func defaultRoles(defaultRole string) []roleSeed {
	base := domain.DefaultUserCapabilities()
	editors := base.With(domain.CapArticleCreate, domain.CapArticleEditOwn, domain.CapArticleDeleteOwn)
	moderator := editors.With(
		domain.CapAdvertisementManageAny,
		domain.CapArticleEditAny,
		domain.CapArticleDeleteAny,
		domain.CapCommentDeleteAny,
	)
	return []roleSeed{
		{name: defaultRole, caps: base},
		{name: "Волонтер", caps: editors},
		{name: "Администратор приюта", caps: editors},
		{name: "Модератор", caps: moderator},
	}
}

var defaultRegions = []string{
	"Москва",
	"Санкт-Петербург",
	"Новосибирская область",
	"Краснодарский край",
	"Свердловская область",
	"Ростовская область",
}

// Breed lists start with the placeholder for an unknown breed.
var defaultSpecies = []struct {
	name   string
	breeds []string
}{
	{"Собака", []string{"Неизвестная порода", "Лабрадор ретривер", "Немецкая овчарка", "Дворняга", "Чихуахуа", "Йоркширский терьер"}},
	{"Кошка", []string{"Неизвестная порода", "Сиамская", "Мейн-кун", "Британская короткошерстная", "Сфинкс", "Домашняя короткошерстная"}},
	{"Птица", []string{"Неизвестный вид", "Попугай", "Канарейка"}},
	{"Грызун", []string{"Неизвестный вид", "Хомяк", "Морская свинка"}},
}

var defaultColors = []string{"Черный", "Белый", "Рыжий", "Серый", "Трехцветный", "Пятнистый"}

var defaultArticleCategories = []struct {
	name string
	slug string
}{
	{"Советы", "sovety"},
	{"Истории", "istorii"},
	{"Новости", "novosti"},
	{"Здоровье питомцев", "zdorove"},
}
