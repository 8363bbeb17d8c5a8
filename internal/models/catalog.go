package models

import "fmt"

// ScheduleID identifies one of the fixed working-hour options.
type ScheduleID string

const (
	ScheduleMorning ScheduleID = "morning"
	ScheduleEvening ScheduleID = "evening"
	ScheduleAny     ScheduleID = "any"
)

type Schedule struct {
	ID    ScheduleID `json:"id"`
	Emoji string     `json:"emoji"`
	Label string     `json:"label"`
	Time  string     `json:"time"`
	Sub   string     `json:"sub"`
	Hours []int      `json:"hours"`
}

// Display renders the schedule the way it is stored in an Application.
func (s Schedule) Display() string {
	return fmt.Sprintf("%s %s · %s", s.Emoji, s.Label, s.Time)
}

var Schedules = []Schedule{
	{
		ID:    ScheduleMorning,
		Emoji: "🌅",
		Label: "Эртең – Күндүз",
		Time:  "10:00 – 18:00",
		Sub:   "Дш–Шб · эс алуу: жекшемби + 1 жумуш күнү",
		Hours: []int{10, 11, 12, 13, 14, 15, 16, 17},
	},
	{
		ID:    ScheduleEvening,
		Emoji: "🌆",
		Label: "Күндүз – Кеч",
		Time:  "14:00 – 22:00",
		Sub:   "Дш–Шб · эс алуу: жекшемби + 1 жумуш күнү",
		Hours: []int{14, 15, 16, 17, 18, 19, 20, 21},
	},
	{
		ID:    ScheduleAny,
		Emoji: "✅",
		Label: "Каалаган",
		Time:  "Экөө тең",
		Sub:   "Каалаган убакытта иштөөгө даярмын",
		Hours: []int{},
	},
}

// AllHours is the hour ruler shown under each schedule card.
var AllHours = []int{8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22}

func FindSchedule(id ScheduleID) (Schedule, bool) {
	for _, s := range Schedules {
		if s.ID == id {
			return s, true
		}
	}
	return Schedule{}, false
}

type SalesTypeID string

const (
	SalesB2C    SalesTypeID = "b2c"
	SalesB2B    SalesTypeID = "b2b"
	SalesTele   SalesTypeID = "tele"
	SalesOnline SalesTypeID = "online"
)

type SalesType struct {
	ID    SalesTypeID `json:"id"`
	Label string      `json:"label"`
	Desc  string      `json:"desc"`
}

var SalesTypes = []SalesType{
	{ID: SalesB2C, Label: "B2C", Desc: "Жеке адамдарга сатуу"},
	{ID: SalesB2B, Label: "B2B", Desc: "Корпоративдик кардарлар"},
	{ID: SalesTele, Label: "Телемаркетинг", Desc: "Муздак чалуулар"},
	{ID: SalesOnline, Label: "Онлайн", Desc: "Мессенджерлер / соцтармактар"},
}

func FindSalesType(id SalesTypeID) (SalesType, bool) {
	for _, t := range SalesTypes {
		if t.ID == id {
			return t, true
		}
	}
	return SalesType{}, false
}

// Level is a language proficiency on the 1..5 scale.
type Level int

const (
	LevelBeginner Level = iota + 1
	LevelIntermediate
	LevelGood
	LevelVeryGood
	LevelFluent
)

// DefaultLevel is assigned to a language when it is added to a draft.
const DefaultLevel = LevelGood

var Levels = []Level{LevelBeginner, LevelIntermediate, LevelGood, LevelVeryGood, LevelFluent}

func (l Level) Valid() bool {
	return l >= LevelBeginner && l <= LevelFluent
}

func (l Level) Label() string {
	switch l {
	case LevelBeginner:
		return "Башталгыч"
	case LevelIntermediate:
		return "Орточо"
	case LevelGood:
		return "Жакшы"
	case LevelVeryGood:
		return "Өтө жакшы"
	case LevelFluent:
		return "Эркин"
	default:
		return fmt.Sprintf("%d", int(l))
	}
}

// Color is the badge colour used for the level in the review screen.
func (l Level) Color() string {
	switch l {
	case LevelBeginner:
		return "#ef4444"
	case LevelIntermediate:
		return "#f97316"
	case LevelGood:
		return "#eab308"
	case LevelVeryGood:
		return "#22c55e"
	case LevelFluent:
		return "#1a73e8"
	default:
		return ""
	}
}

type LanguageOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// LanguageCatalog is the only source of language entries; it is never mutated.
var LanguageCatalog = []LanguageOption{
	{ID: "ky", Label: "Кыргызча"},
	{ID: "ru", Label: "Орусча"},
	{ID: "en", Label: "Англисче"},
	{ID: "zh", Label: "Кытайча"},
	{ID: "tr", Label: "Түркчө"},
}

func FindLanguage(id string) (LanguageOption, bool) {
	for _, o := range LanguageCatalog {
		if o.ID == id {
			return o, true
		}
	}
	return LanguageOption{}, false
}

var ExperienceOptions = []string{
	"Тажрыйба жок (үйрөнүүгө даярмын)",
	"1 жылга чейин",
	"1–3 жыл",
	"3–5 жыл",
	"5 жылдан ашык",
}

var SalaryOptions = []string{
	"30 000 сомго чейин",
	"30 000–50 000 сом",
	"50 000–80 000 сом",
	"80 000 сомдон ашык",
	"Талкуулоодо",
}

var StartDateOptions = []string{
	"Дароо",
	"1 жумадан кийин",
	"2 жумадан кийин",
	"1 айдан кийин",
}

var SourceOptions = []string{
	"Hh.kg (HeadHunter)",
	"Нomework.kg",
	"Dostuk (Дос айтты)",
	"Социалдык тармактар",
	"Башка",
}

var Hints = map[Field]string{
	FieldName:       "Толук аты-жөңүздү жазыңыз: Фамилия Аты Атасынын аты",
	FieldPhone:      "Биз ушул номерге чалып, жолугушуга чакырабыз",
	FieldCity:       "Иштөөгө даяр шаарыңызды көрсөтүңүз",
	FieldSchedule:   "Ыңгайлуу иш убактыңызды тандаңыз — жолугушууда талкуулай алабыз",
	FieldExperience: "Тажрыйба болбосо да жарайт — биз нөлдөн үйрөтөбүз",
	FieldSalesType:  "Тажрыйбаңыз же кызыгуу бар бардык багытты белгилеңиз",
	FieldSalary:     "Каалаган айлыгыңызды айтыңыз — биз компромисс табабыз",
	FieldStartDate:  "Учурдагы иштен чыгуу убактыңыз болсо, айтыңыз",
	FieldLanguages:  "Сүйлөгөн тилдериңизди жана деңгээлиңизди белгилеңиз",
	FieldAbout:      "Эң жакшы натыйжаларыңыз, жетишкендиктериңиз жөнүндө айтып бериңиз",
	FieldSource:     "Биз жакшы кандидаттарды кайдан таба аларыбызды билгибиз келет",
}

// Vacancy is the static summary shown next to the form.
type Vacancy struct {
	Title string   `json:"title"`
	Org   string   `json:"org"`
	Tags  []string `json:"tags"`
}

var CurrentVacancy = Vacancy{
	Title: "Сатуу менеджери",
	Org:   "Кадрлар бөлүмү · Арыз берүү",
	Tags:  []string{"🇰🇬 Бишкек", "🏢 Офис · 6/1", "💰 Айлык + %", "🔥 Шашылыш набор"},
}
